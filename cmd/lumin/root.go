package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/lumin/pkg/config"
	"github.com/tacogips/lumin/pkg/telemetry"
)

var (
	verbose    bool
	quiet      bool
	configPath string

	// cfg supplies defaults for flags the user did not set, loaded from
	// an optional config file before any command runs.
	cfg = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "lumin",
	Short: "Lumin - search, list, and view local files",
	Long: `Lumin is a utility for searching and traversing files.

It searches file contents with regex patterns, lists files with their
content types, maps directory structure, and views single files, all
while respecting gitignore rules.`,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, args []string) error {
	if err := telemetry.Init(verbose, quiet); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	return loadConfig()
}

func loadConfig() error {
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	c, err := config.Discover(wd)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .lumin.yml in the working directory)")

	// Add subcommands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(traverseCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
