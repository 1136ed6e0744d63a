// Package file persists operator settings as a TOML file under the
// sitemapper config directory, with environment variable overrides for
// scripted use.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	configDirName  = ".sitemapper"
	configFileName = "config.toml"
)

// Settings holds everything sitemapper needs to find site data and reach
// the shared Drive folder.
type Settings struct {
	// SitesDir is the directory containing one subdirectory per site.
	SitesDir string `toml:"sites_dir"`
	// DefaultSite is used when a command is run without --site.
	DefaultSite string `toml:"default_site"`
	// PublicFolderID is the Drive folder shared with buyers.
	PublicFolderID string `toml:"public_folder_id"`
	// PublicFolderPath is a local mirror of the public folder, used when
	// no Drive credentials are available.
	PublicFolderPath string `toml:"public_folder_path"`
	// CredentialsPath points at the OAuth client credentials JSON.
	CredentialsPath string `toml:"credentials_path"`
	// TokenPath points at the cached OAuth token JSON.
	TokenPath string `toml:"token_path"`
	// IncludeImages keeps image files in listings alongside documents.
	IncludeImages bool `toml:"include_images"`
}

type Store struct {
	path string
}

// NewStore creates a store rooted at dir, or at ~/.sitemapper when dir is
// empty.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, configDirName)
	}
	return &Store{path: filepath.Join(dir, configFileName)}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load reads settings from disk, fills in defaults, and applies
// SITEMAPPER_* environment overrides. A missing config file is not an
// error; defaults are returned.
func (s *Store) Load() (Settings, error) {
	settings := defaultSettings(filepath.Dir(s.path))

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&settings)
	return settings, nil
}

// Save writes settings to disk, creating the config directory if needed.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultSettings(configDir string) Settings {
	return Settings{
		SitesDir:        "sites",
		CredentialsPath: filepath.Join(configDir, "credentials.json"),
		TokenPath:       filepath.Join(configDir, "token.json"),
	}
}

func applyEnvOverrides(settings *Settings) {
	overrides := map[string]*string{
		"SITEMAPPER_SITES_DIR":          &settings.SitesDir,
		"SITEMAPPER_DEFAULT_SITE":       &settings.DefaultSite,
		"SITEMAPPER_PUBLIC_FOLDER_ID":   &settings.PublicFolderID,
		"SITEMAPPER_PUBLIC_FOLDER_PATH": &settings.PublicFolderPath,
		"SITEMAPPER_CREDENTIALS_PATH":   &settings.CredentialsPath,
		"SITEMAPPER_TOKEN_PATH":         &settings.TokenPath,
	}
	for name, target := range overrides {
		if value := os.Getenv(name); value != "" {
			*target = value
		}
	}
	if value := os.Getenv("SITEMAPPER_INCLUDE_IMAGES"); value == "1" || value == "true" {
		settings.IncludeImages = true
	}
}
