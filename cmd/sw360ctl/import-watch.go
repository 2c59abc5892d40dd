package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/toshiba/sw360/pkg/model"
)

// importWatchCmd represents the import watch command
var importWatchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and import dropped SPDX license files",
	Long: `Watch a directory and import SPDX license JSON files dropped into it.

Each *.json file written to the directory is parsed as a per-license SPDX
document and imported. Licenses already in the store are left alone.

Example:
  sw360ctl import watch /run/sw360/licenses --user admin@example.org`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]

		env, err := setupImportEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch %s: %v\n", dir, err)
			os.Exit(1)
		}

		user, err := resolveImportUser(env, cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch %s: %v\n", dir, err)
			os.Exit(1)
		}

		if err := watchLicenseDir(env, user, dir); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch %s: %v\n", dir, err)
			os.Exit(1)
		}
	},
}

func init() {
	importCmd.AddCommand(importWatchCmd)
}

func watchLicenseDir(env *importEnv, user *model.User, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	fmt.Printf("Watching %s for SPDX license files (user: %s)\n", dir, user.Email)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}

			fmt.Printf("[%s] Importing %s...\n", time.Now().Format(time.RFC3339), event.Name)

			content, err := os.ReadFile(event.Name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				continue
			}

			status := env.importer.ImportSpdxLicenseJSON(content, user)
			if status == model.RequestStatusSuccess {
				fmt.Printf("Imported %s\n", event.Name)
			} else {
				fmt.Fprintf(os.Stderr, "Import of %s failed: %s\n", event.Name, status)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
