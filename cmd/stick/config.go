package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stick-bridge/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
file search and the difficulty preset are applied. The output is a
valid config file.

Search order:
  --config <path>
  ~/.stick/configs/stick.yaml, ~/.stick/configs/stick.toml
  ./configs/stick.yaml
  built-in defaults

Examples:
  stick config
  stick config --difficulty hard --format toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	cfg, err = applyDifficulty(cfg, flagDifficulty)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
	return config.Encode(cmd.OutOrStdout(), cfg, flagFormat)
}
