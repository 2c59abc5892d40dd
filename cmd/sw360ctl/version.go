package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sw360ctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sw360ctl %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
