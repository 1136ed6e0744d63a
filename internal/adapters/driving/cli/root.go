// Package cli wires the sitemapper commands. Each command builds the
// adapters it needs from the loaded settings; the core services never see
// cobra or the filesystem layout.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/config/file"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

var version = "dev"

var (
	verbose   bool
	configDir string

	configStore *configfile.Store
	settings    configfile.Settings
)

var rootCmd = &cobra.Command{
	Use:   "sitemapper",
	Short: "Map shared drive documents onto static site structures",
	Long: `sitemapper audits a shared document folder, builds a renaming
inventory, and regenerates per-site data.json structures from the file
listing and the sites configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		store, err := configfile.NewStore(configDir)
		if err != nil {
			return err
		}
		configStore = store

		settings, err = configStore.Load()
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.sitemapper)")
}

// dataDir is where local caches live, next to the config file.
func dataDir() string {
	return filepath.Join(filepath.Dir(configStore.Path()), "data")
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
