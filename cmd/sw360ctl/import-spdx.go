package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toshiba/sw360/pkg/importer"
	"github.com/toshiba/sw360/pkg/model"
)

// importSpdxCmd represents the import spdx command
var importSpdxCmd = &cobra.Command{
	Use:   "spdx",
	Short: "Import the SPDX license catalogue",
	Long: `Import every license of the SPDX license list that is not yet stored.

Licenses already in the store are left untouched. A stored license whose
text disagrees with the catalogue is reported in the summary.

Example:
  sw360ctl import spdx --user admin@example.org`,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := setupImportEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}

		user, err := resolveImportUser(env, cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}

		catalog := &importer.HTTPSpdxCatalog{BaseURL: env.cfg.SpdxLicenseListURL}
		summary := env.importer.ImportAllSpdxLicenses(catalog, user)
		printSummary(summary)
		if summary.Status != model.RequestStatusSuccess {
			os.Exit(1)
		}
	},
}

func init() {
	importCmd.AddCommand(importSpdxCmd)
}
