// filepath: internal/cli/bridge.go
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopfront/internal/logging"
	"shopfront/internal/notify"
	"shopfront/internal/services"
	"shopfront/internal/shared"
)

var (
	exportOutput string
	backupOutput string
)

// configCmd groups the offline import/export tooling. These commands work on
// the same stores the server uses, so they must not run while the server is
// writing.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Import/export tools for the website config",
	Long:  `Export the stored config as a static config.js snippet, re-import an edited snippet, or take and restore JSON backups.`,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored config as a config.js snippet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBridge(func(svc services.BridgeService) error {
			snippet, err := svc.Export()
			if err != nil {
				return err
			}
			if err := os.WriteFile(exportOutput, []byte(snippet), 0o644); err != nil {
				return fmt.Errorf("trying to export the config: %w", shared.ErrorCreateFile)
			}
			logging.Log.Infof("Config exported to %s", exportOutput)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <config.js>",
	Short: "Import a config.js snippet into the stores",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return withBridge(func(svc services.BridgeService) error {
			if _, err := svc.Import(string(raw)); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			logging.Log.Infof("Config imported from %s", args[0])
			return nil
		})
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a timestamped JSON backup of the stored config",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBridge(func(svc services.BridgeService) error {
			payload, err := svc.Backup()
			if err != nil {
				return err
			}
			f, err := os.Create(backupOutput)
			if err != nil {
				return fmt.Errorf("trying to write the backup: %w", shared.ErrorCreateFile)
			}
			defer f.Close()
			encoder := json.NewEncoder(f)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(payload); err != nil {
				return fmt.Errorf("trying to write the backup: %w", shared.ErrorEncodeFile)
			}
			logging.Log.Infof("Backup written to %s", backupOutput)
			return nil
		})
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Restore the stored config from a JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return withBridge(func(svc services.BridgeService) error {
			if _, err := svc.Restore(raw); err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}
			logging.Log.Infof("Config restored from %s", args[0])
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(exportCmd)
	configCmd.AddCommand(importCmd)
	configCmd.AddCommand(backupCmd)
	configCmd.AddCommand(restoreCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "config.js", "Destination file for the exported snippet")
	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "backup.json", "Destination file for the backup")
}

// withBridge opens the stores, runs fn against a bridge service, and closes
// everything again.
func withBridge(fn func(svc services.BridgeService) error) error {
	st, err := openStore(notify.NewBus())
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(services.NewBridgeService(st))
}
