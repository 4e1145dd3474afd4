package main

import (
	"digitalmenu/internal/config"
	"digitalmenu/internal/db"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	var migrationsPath string
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if migrationsPath == "" {
				migrationsPath = cfg.MigrationsPath
			}
			if err := db.Migrate(cfg.PostgresqlURL, migrationsPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrations from %s applied.\n", migrationsPath)
			return nil
		},
	}
	migrateCmd.Flags().StringVar(&migrationsPath, "path", "", "Migrations directory (defaults to MIGRATIONS_PATH)")
	rootCmd.AddCommand(migrateCmd)
}
