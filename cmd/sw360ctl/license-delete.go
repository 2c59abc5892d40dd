package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toshiba/sw360/pkg/model"
)

// licenseDeleteCmd represents the license delete command
var licenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a license",
	Long: `Delete a license from the document store.

A license still referenced by a release cannot be deleted. Deletion by a
user without delete permission files nothing and reports ACCESS_DENIED.

Example:
  sw360ctl license delete Apache-2.0 --user admin@example.org`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		env, err := setupImportEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Delete failed: %v\n", err)
			os.Exit(1)
		}

		user, err := resolveImportUser(env, cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Delete failed: %v\n", err)
			os.Exit(1)
		}

		status := env.handler.DeleteLicense(id, user)
		fmt.Printf("Status: %s\n", status)
		if status != model.RequestStatusSuccess {
			os.Exit(1)
		}
	},
}

func init() {
	licenseCmd.AddCommand(licenseDeleteCmd)
}
