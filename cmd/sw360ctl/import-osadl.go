package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toshiba/sw360/pkg/importer"
	"github.com/toshiba/sw360/pkg/model"
)

// importOsadlCmd represents the import osadl command
var importOsadlCmd = &cobra.Command{
	Use:   "osadl",
	Short: "Import OSADL obligation checklists",
	Long: `Refresh the obligations of every stored license from the OSADL
checklist catalogue. The checklist is rebuilt into an obligation node
tree and the obligation text is rendered from it.

Only one OSADL import runs at a time; a concurrent run reports PROCESSING.

Example:
  sw360ctl import osadl --user admin@example.org`,
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

		catalog := &importer.HTTPOsadlCatalog{BaseURL: env.cfg.OsadlChecklistURL}
		summary := env.importer.ImportAllOsadlObligations(catalog, user)
		printSummary(summary)
		if summary.Status != model.RequestStatusSuccess {
			os.Exit(1)
		}
	},
}

func init() {
	importCmd.AddCommand(importOsadlCmd)
}
