package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/classpick/internal/load"
	"github.com/abhisek/classpick/internal/rating"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the roster and messages files",
	Long:  "Loads both data files and reports the first problem with its source and row, so a broken file is caught before class starts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		classes, err := load.RosterFile(cfg.RosterPath)
		if err != nil {
			return fmt.Errorf("roster: %w", err)
		}
		total := 0
		for _, c := range classes {
			total += len(c.Students)
		}
		fmt.Printf("roster ok: %d classes, %d students (%s)\n",
			len(classes), total, cfg.RosterPath)

		catalog, err := load.MessagesFile(cfg.MessagesPath)
		if err != nil {
			return fmt.Errorf("messages: %w", err)
		}
		for _, r := range rating.All() {
			if _, err := catalog.Message(r); err != nil {
				return fmt.Errorf("messages: %w", err)
			}
		}
		fmt.Printf("messages ok: all %d ratings covered (%s)\n",
			len(rating.All()), cfg.MessagesPath)
		return nil
	},
}
