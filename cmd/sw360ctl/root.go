package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sw360ctl",
	Short: "SW360 compliance-core control tool",
	Long: `sw360ctl manages the SW360 compliance-core document store: database
migrations, catalogue imports and license administration.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
