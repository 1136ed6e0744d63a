package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

// mockSiteStore implements driven.SiteStore for testing.
type mockSiteStore struct {
	saved   map[string]*domain.SiteStructure
	saveErr error
}

func newMockSiteStore() *mockSiteStore {
	return &mockSiteStore{saved: make(map[string]*domain.SiteStructure)}
}

func (m *mockSiteStore) Load(slug string) (*domain.SiteStructure, error) {
	site, ok := m.saved[slug]
	if !ok {
		return nil, domain.ErrSiteDataNotFound
	}
	return site, nil
}

func (m *mockSiteStore) Save(slug string, site *domain.SiteStructure) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[slug] = site
	return nil
}

func (m *mockSiteStore) Seed(string) error {
	return nil
}

func TestGenerateSite(t *testing.T) {
	store := newMockSiteStore()
	gen := NewGenerator(store)

	schema := domain.SiteSchema{
		Slug:          "verella-court",
		Name:          "Verella Court",
		DriveFolderID: "folder-1",
	}
	inventory := []domain.RawFileEntry{
		{ID: "p1", Name: "Plan 1.pdf"},
		{ID: "pm", Name: "Platmap.pdf"},
		{Name: "no-id.pdf"},
	}

	res, err := gen.GenerateSite(context.Background(), domain.GlobalDefaults{}, schema, inventory, false)
	require.NoError(t, err)

	assert.Equal(t, "verella-court", res.Slug)
	assert.Equal(t, 1, res.Skipped)
	assert.True(t, res.Written)

	saved := store.saved["verella-court"]
	require.NotNil(t, saved)
	assert.Equal(t, "Verella Court", saved.SiteName)
	assert.Len(t, saved.Plans, 1)
	require.NotNil(t, saved.Drive)
	assert.Equal(t, "folder-1", saved.Drive.FolderID)
	assert.True(t, saved.Flags["hideEmptySections"])
}

func TestGenerateSiteDryRun(t *testing.T) {
	store := newMockSiteStore()
	gen := NewGenerator(store)

	schema := domain.SiteSchema{Slug: "s", Name: "S"}
	res, err := gen.GenerateSite(context.Background(), domain.GlobalDefaults{}, schema, nil, true)
	require.NoError(t, err)

	assert.False(t, res.Written)
	assert.NotNil(t, res.Structure)
	assert.Empty(t, store.saved)
}

func TestGenerateSiteMissingRequiredFields(t *testing.T) {
	gen := NewGenerator(newMockSiteStore())

	_, err := gen.GenerateSite(context.Background(), domain.GlobalDefaults{}, domain.SiteSchema{Name: "S"}, nil, false)
	assert.ErrorIs(t, err, domain.ErrMissingSchemaField)

	_, err = gen.GenerateSite(context.Background(), domain.GlobalDefaults{}, domain.SiteSchema{Slug: "s"}, nil, false)
	assert.ErrorIs(t, err, domain.ErrMissingSchemaField)
}

func TestGenerateAllFiltersByLocation(t *testing.T) {
	store := newMockSiteStore()
	gen := NewGenerator(store)

	cfg := domain.SitesConfig{
		Sites: []domain.SiteSchema{
			{Slug: "north", Name: "North"},
			{Slug: "south", Name: "South"},
		},
	}
	inventory := []domain.RawFileEntry{
		{ID: "n1", Name: "Plan 1.pdf", Location: "north"},
		{ID: "n2", Name: "Plan 2.pdf", Location: "north"},
		{ID: "s1", Name: "Plan 3.pdf", Location: "south"},
	}

	results, err := gen.GenerateAll(context.Background(), cfg, inventory, false)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Len(t, store.saved["north"].Plans, 2)
	assert.Len(t, store.saved["south"].Plans, 1)
}

func TestGenerateAllUsesWholeInventoryWhenNoLocationMatches(t *testing.T) {
	store := newMockSiteStore()
	gen := NewGenerator(store)

	cfg := domain.SitesConfig{
		Sites: []domain.SiteSchema{{Slug: "solo", Name: "Solo"}},
	}
	inventory := []domain.RawFileEntry{
		{ID: "a", Name: "Plan 1.pdf"},
		{ID: "b", Name: "Plan 2.pdf"},
	}

	_, err := gen.GenerateAll(context.Background(), cfg, inventory, false)
	require.NoError(t, err)
	assert.Len(t, store.saved["solo"].Plans, 2)
}
