package main

import (
	"context"
	"digitalmenu/internal/app/deps"
	"digitalmenu/internal/app/services"
	"digitalmenu/internal/core/domain/logging"
	cleanupexpired "digitalmenu/internal/core/services/cleanup_expired"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func init() {
	var once bool
	cleanupCmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired sessions and verification codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, shutdownDeps := deps.InitDeps()
			defer shutdownDeps()
			log := deps.Logger

			services := services.InitServices(deps)
			run := func() {
				_, err := services.CleanupExpired.Run(context.Background(), cleanupexpired.Input{})
				if err != nil {
					log.Error(context.Background(), "Cleanup service returned an error.", logging.Entry("err", err))
				}
			}

			if once {
				run()
				return nil
			}

			parser := cron.NewParser(
				cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
			)
			scheduler := cron.New(cron.WithParser(parser))
			if _, err := scheduler.AddFunc(deps.Config.CleanupSchedule, run); err != nil {
				return fmt.Errorf("invalid cleanup schedule %q: %w", deps.Config.CleanupSchedule, err)
			}

			stopCh, closeCh := createChannel()
			defer closeCh()

			log.Info(
				context.Background(),
				"Starting periodic cleanup.",
				logging.Entry("schedule", deps.Config.CleanupSchedule),
			)
			scheduler.Start()

			<-stopCh
			log.Info(context.Background(), "Stopping periodic cleanup.")
			<-scheduler.Stop().Done()
			return nil
		},
	}
	cleanupCmd.Flags().BoolVar(&once, "once", false, "Run the cleanup once and exit")
	rootCmd.AddCommand(cleanupCmd)
}
