package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenConfigMissing(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "sites", settings.SitesDir)
	assert.Equal(t, filepath.Join(dir, "credentials.json"), settings.CredentialsPath)
	assert.Equal(t, filepath.Join(dir, "token.json"), settings.TokenPath)
	assert.Empty(t, settings.DefaultSite)
	assert.False(t, settings.IncludeImages)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	in := Settings{
		SitesDir:         "/srv/sites",
		DefaultSite:      "verella-court",
		PublicFolderID:   "folder-abc",
		PublicFolderPath: "/mnt/public",
		CredentialsPath:  "/etc/creds.json",
		TokenPath:        "/etc/token.json",
		IncludeImages:    true,
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	raw := "default_site = \"verella-court\"\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o644))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "verella-court", settings.DefaultSite)
	assert.Equal(t, "sites", settings.SitesDir)
}

func TestEnvOverrides(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	t.Setenv("SITEMAPPER_SITES_DIR", "/env/sites")
	t.Setenv("SITEMAPPER_DEFAULT_SITE", "env-site")
	t.Setenv("SITEMAPPER_INCLUDE_IMAGES", "true")

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/env/sites", settings.SitesDir)
	assert.Equal(t, "env-site", settings.DefaultSite)
	assert.True(t, settings.IncludeImages)
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("sites_dir = ["), 0o644))

	_, err = store.Load()
	assert.Error(t, err)
}
