package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/classpick/internal/load"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List loaded classes and their student counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		classes, err := load.RosterFile(cfg.RosterPath)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		if len(classes) == 0 {
			fmt.Println("No classes found in", cfg.RosterPath)
			return nil
		}
		for _, c := range classes {
			fmt.Printf("%-20s %d students\n", c.Name, len(c.Students))
		}
		return nil
	},
}
