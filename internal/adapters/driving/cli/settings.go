package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage sitemapper settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting and save the config file",
	Long: `Set one setting by key and write the config file.

Available keys:
  sites_dir           - directory containing per-site subdirectories
  default_site        - site slug used when --site is omitted
  public_folder_id    - Drive folder ID of the shared public folder
  public_folder_path  - local mirror of the public folder
  credentials_path    - OAuth client credentials JSON
  token_path          - cached OAuth token JSON
  include_images      - true/false, list image files too`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	cmd.Printf("Config file: %s\n\n", configStore.Path())
	cmd.Printf("  sites_dir:          %s\n", settings.SitesDir)
	cmd.Printf("  default_site:       %s\n", settings.DefaultSite)
	cmd.Printf("  public_folder_id:   %s\n", settings.PublicFolderID)
	cmd.Printf("  public_folder_path: %s\n", settings.PublicFolderPath)
	cmd.Printf("  credentials_path:   %s\n", settings.CredentialsPath)
	cmd.Printf("  token_path:         %s\n", settings.TokenPath)
	cmd.Printf("  include_images:     %t\n", settings.IncludeImages)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "sites_dir":
		settings.SitesDir = value
	case "default_site":
		settings.DefaultSite = value
	case "public_folder_id":
		settings.PublicFolderID = value
	case "public_folder_path":
		settings.PublicFolderPath = value
	case "credentials_path":
		settings.CredentialsPath = value
	case "token_path":
		settings.TokenPath = value
	case "include_images":
		settings.IncludeImages = value == "true" || value == "1"
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := configStore.Save(settings); err != nil {
		return err
	}
	cmd.Printf("Saved %s\n", configStore.Path())
	return nil
}
