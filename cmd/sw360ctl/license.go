package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// licenseCmd represents the license command
var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Manage stored licenses",
	Long:  `Manage licenses in the document store.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'license' requires a subcommand (delete)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(licenseCmd)
	licenseCmd.PersistentFlags().StringP("user", "u", "", "Email of the acting user")
}
