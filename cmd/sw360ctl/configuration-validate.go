package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toshiba/sw360/pkg/config"
)

// configurationValidateCmd represents the configuration validate command
var configurationValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the current configuration",
	Long: `Load the configuration from its sources and validate it.

Example:
  sw360ctl configuration validate`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration is invalid: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Configuration is valid.")
	},
}

func init() {
	configurationCmd.AddCommand(configurationValidateCmd)
}

func validateConfiguration() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	return cfg.Validate()
}
