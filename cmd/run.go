package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/classpick/internal/app"
	"github.com/abhisek/classpick/internal/engine"
	"github.com/abhisek/classpick/internal/ledger"
	"github.com/abhisek/classpick/internal/load"
	"github.com/abhisek/classpick/internal/roster"
)

// runApp loads the data files, builds the engine, and launches the TUI.
// A broken messages file stops the app here, before any session begins.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	classes, err := load.RosterFile(cfg.RosterPath)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	catalog, err := load.MessagesFile(cfg.MessagesPath)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	eng := engine.New(roster.NewStore(classes, nil), catalog, ledger.New())

	return app.Run(app.Options{
		Engine:       eng,
		SpinSeconds:  cfg.SpinSeconds,
		SoundEnabled: cfg.SoundEnabled,
	})
}
