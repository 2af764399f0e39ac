package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/musou/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.musou/configs/musou.yaml or ./configs/musou.yaml and edit it to
tune the game, or pass any file with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
