package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

func testSite(name string) *domain.SiteStructure {
	return &domain.SiteStructure{
		SiteName:    name,
		Plans:       []domain.PlanSlot{},
		Lots:        []domain.LotSlot{},
		ProjectDocs: []domain.DocSlot{},
		Photos:      []domain.PhotoSlot{},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save("verella-court", testSite("Verella Court")))

	loaded, err := store.Load("verella-court")
	require.NoError(t, err)
	assert.Equal(t, "Verella Court", loaded.SiteName)
}

func TestLoadMissingSite(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load("nope")
	assert.ErrorIs(t, err, domain.ErrSiteDataNotFound)
}

func TestSaveBacksUpPreviousData(t *testing.T) {
	sitesDir := t.TempDir()
	store := NewStore(sitesDir)

	require.NoError(t, store.Save("s", testSite("First")))
	require.NoError(t, store.Save("s", testSite("Second")))

	backups, err := filepath.Glob(filepath.Join(sitesDir, "s", "data.bak.*.json"))
	require.NoError(t, err)
	require.Len(t, backups, 1)

	// The backup holds the pre-overwrite content.
	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "First")

	loaded, err := store.Load("s")
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.SiteName)
}

func TestSeedFromTemplate(t *testing.T) {
	sitesDir := t.TempDir()
	store := NewStore(sitesDir)
	require.NoError(t, store.Save("_template", testSite("Template")))

	require.NoError(t, store.Seed("fresh"))

	loaded, err := store.Load("fresh")
	require.NoError(t, err)
	assert.Equal(t, "Template", loaded.SiteName)
}

func TestSeedDoesNotOverwriteExistingData(t *testing.T) {
	sitesDir := t.TempDir()
	store := NewStore(sitesDir)
	require.NoError(t, store.Save("_template", testSite("Template")))
	require.NoError(t, store.Save("s", testSite("Existing")))

	require.NoError(t, store.Seed("s"))

	loaded, err := store.Load("s")
	require.NoError(t, err)
	assert.Equal(t, "Existing", loaded.SiteName)
}

func TestSeedWithoutTemplate(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.ErrorIs(t, store.Seed("s"), domain.ErrSiteDataNotFound)
}
