package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toshiba/sw360/pkg/config"
	"github.com/toshiba/sw360/pkg/datahandler"
	"github.com/toshiba/sw360/pkg/db"
	"github.com/toshiba/sw360/pkg/importer"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/moderation"
	gormstore "github.com/toshiba/sw360/pkg/store/gorm"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import license catalogues",
	Long:  `Import license and obligation catalogues into the document store.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'import' requires a subcommand (spdx, osadl, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.PersistentFlags().StringP("user", "u", "", "Email of the importing user")
}

// importEnv is the wired handler stack behind the import commands.
type importEnv struct {
	cfg      *config.SW360Config
	handler  *datahandler.LicenseHandler
	users    *datahandler.UserHandler
	importer *importer.Importer
}

func setupImportEnv() (*importEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
	if err != nil {
		return nil, err
	}

	licenses := gormstore.NewLicenses(database)
	obligations := gormstore.NewObligations(database)
	requests := moderation.NewRequests(gormstore.NewModerationRequests(database))
	handler := datahandler.NewLicenseHandler(
		licenses,
		gormstore.NewLicenseTypes(database),
		obligations,
		gormstore.NewObligationNodes(database),
		gormstore.NewObligationElements(database),
		gormstore.NewReleases(database),
		requests,
		cfg.ModeratorsOf,
	)

	return &importEnv{
		cfg:      cfg,
		handler:  handler,
		users:    datahandler.NewUserHandler(gormstore.NewUsers(database)),
		importer: importer.NewImporter(licenses, obligations, handler),
	}, nil
}

// resolveImportUser looks up the acting user from the --user flag.
func resolveImportUser(env *importEnv, cmd *cobra.Command) (*model.User, error) {
	email, _ := cmd.Flags().GetString("user")
	if email == "" {
		return nil, errors.New("--user is required")
	}

	user, err := env.users.ByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("unknown user %s: %w", email, err)
	}
	return user, nil
}

func printSummary(summary model.RequestSummary) {
	fmt.Printf("Status: %s\n", summary.Status)
	fmt.Printf("Total: %d, affected: %d\n", summary.TotalElements, summary.TotalAffectedElements)
	if summary.Message != "" {
		fmt.Println(summary.Message)
	}
}
