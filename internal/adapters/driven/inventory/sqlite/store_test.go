package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func runDoc(runID, generatedAt string, files ...domain.InventoryEntry) domain.InventoryDocument {
	return domain.InventoryDocument{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Files:       files,
	}
}

func TestLatestRunEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LatestRun()
	assert.ErrorIs(t, err, domain.ErrNoInventory)
}

func TestSaveAndLatestRun(t *testing.T) {
	store := newTestStore(t)

	doc := runDoc("run-1", "2026-03-14T00:00:00Z",
		domain.InventoryEntry{ID: "b", CurrentName: "Zeta.pdf", NewName: "Zeta.pdf", SizeMB: 2.5, Location: "Verella", Modified: "2026-03-01", MIMEType: "application/pdf", MD5: "01234567"},
		domain.InventoryEntry{ID: "a", CurrentName: "Alpha.pdf", NewName: "Alpha.pdf", SizeMB: 0.5, Location: "Verella", MIMEType: "application/pdf"},
	)
	require.NoError(t, store.SaveRun(doc))

	loaded, err := store.LatestRun()
	require.NoError(t, err)

	assert.Equal(t, "run-1", loaded.RunID)
	assert.Equal(t, "2026-03-14T00:00:00Z", loaded.GeneratedAt)
	assert.Equal(t, domain.InventoryDescription, loaded.Description)

	require.Len(t, loaded.Files, 2)
	// Rows come back ordered by location then name.
	assert.Equal(t, "Alpha.pdf", loaded.Files[0].CurrentName)
	assert.Equal(t, "Zeta.pdf", loaded.Files[1].CurrentName)
	assert.Equal(t, 2.5, loaded.Files[1].SizeMB)
	assert.Equal(t, "01234567", loaded.Files[1].MD5)
}

func TestLatestRunPicksNewest(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRun(runDoc("run-1", "2026-03-14T00:00:00Z",
		domain.InventoryEntry{ID: "a", CurrentName: "Old.pdf", NewName: "Old.pdf"})))
	require.NoError(t, store.SaveRun(runDoc("run-2", "2026-03-15T00:00:00Z",
		domain.InventoryEntry{ID: "a", CurrentName: "New.pdf", NewName: "New.pdf"})))

	loaded, err := store.LatestRun()
	require.NoError(t, err)
	assert.Equal(t, "run-2", loaded.RunID)
	require.Len(t, loaded.Files, 1)
	assert.Equal(t, "New.pdf", loaded.Files[0].CurrentName)
}

func TestSaveRunDuplicateRunID(t *testing.T) {
	store := newTestStore(t)

	doc := runDoc("run-1", "2026-03-14T00:00:00Z")
	require.NoError(t, store.SaveRun(doc))
	assert.Error(t, store.SaveRun(doc))
}
