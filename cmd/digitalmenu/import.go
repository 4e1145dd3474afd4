package main

import (
	"digitalmenu/internal/app/deps"
	"digitalmenu/internal/app/services"
	importmenu "digitalmenu/internal/core/services/import_menu"
	menufile "digitalmenu/internal/implementations/menu_file"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	importCmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import a restaurant menu from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menu, err := menufile.ParseFile(args[0])
			if err != nil {
				return err
			}

			deps, shutdownDeps := deps.InitDeps()
			defer shutdownDeps()

			services := services.InitServices(deps)
			result, err := services.ImportMenu.Run(cmd.Context(), importmenu.Input{Menu: menu})
			if err != nil {
				return fmt.Errorf("could not import menu: %w", err)
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"Imported %q: slug=%s public_id=%s categories=%d dishes=%d\n",
				result.Restaurant.Name,
				result.Restaurant.Slug,
				result.Restaurant.PublicID,
				result.Categories,
				result.Dishes,
			)
			return nil
		},
	}
	rootCmd.AddCommand(importCmd)
}
