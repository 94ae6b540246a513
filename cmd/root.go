package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/classpick/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "classpick",
	Short: "Random student selector for the classroom",
	Long:  "ClassPick — terminal tool that picks a random un-picked student from a class, collects a rating, and tallies the session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides CLASSPICK_CONFIG env var)")
	rootCmd.PersistentFlags().String("roster", "", "Path to class,student CSV (overrides config)")
	rootCmd.PersistentFlags().String("messages", "", "Path to rating,message CSV (overrides config)")

	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads settings using --config (highest priority), then the
// CLASSPICK_CONFIG env var, then the default XDG path, and applies any
// per-file flag overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if p, _ := cmd.Flags().GetString("roster"); p != "" {
		cfg.RosterPath = p
	}
	if p, _ := cmd.Flags().GetString("messages"); p != "" {
		cfg.MessagesPath = p
	}
	return cfg, nil
}
