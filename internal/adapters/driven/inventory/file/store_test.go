package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

func TestWriteAndReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file-mapping.json")
	store := NewStore(path)

	doc := &domain.InventoryDocument{
		Description:  domain.InventoryDescription,
		Instructions: domain.InventoryInstructions,
		RunID:        "run-1",
		Files: []domain.InventoryEntry{
			{ID: "a", CurrentName: "Plan 1.pdf", NewName: "Plan 1.pdf", SizeMB: 1.5, Location: "Verella"},
		},
	}
	require.NoError(t, store.WriteJSON(doc))

	entries, err := store.ReadEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "Plan 1.pdf", entries[0].CurrentName)
}

func TestReadEntriesBareList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	raw := `[{"id": "x", "name": "Lot 7.pdf", "location": "Verella"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	entries, err := NewStore(path).ReadEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].ID)
	assert.Equal(t, "Lot 7.pdf", entries[0].Name)
}

func TestReadEntriesRejectsOtherShapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an inventory"}`), 0o644))

	_, err := NewStore(path).ReadEntries()
	assert.ErrorIs(t, err, domain.ErrInvalidInventory)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")
	entries := []domain.InventoryEntry{
		{ID: "a", CurrentName: "Plan 1.pdf", NewName: "plan-1.pdf", SizeMB: 1.25, Location: "Verella", Modified: "2026-03-14", MIMEType: "application/pdf", MD5: "01234567"},
	}

	require.NoError(t, WriteCSV(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "id,current_name,new_name,size_mb,location,modified,mime_type,md5")
	assert.Contains(t, content, "a,Plan 1.pdf,plan-1.pdf,1.25,Verella,2026-03-14,application/pdf,01234567")
}

func TestLoadURLRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	raw := `[
		{"filename": "Plat Map.pdf", "id": "id-1"},
		{"name": "Plan 3.pdf", "shareUrl": "https://drive.google.com/file/d/1a2B3c4D5e6F/view"},
		{"path": "Lot 7.pdf", "file_id": "id-3", "preview_url": "https://drive.google.com/uc?id=id-3"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	rows, err := LoadURLRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Plat Map.pdf", rows[0].Filename)
	assert.Equal(t, "id-1", rows[0].FileID)
	assert.Equal(t, "Plan 3.pdf", rows[1].Filename)
	assert.Equal(t, "https://drive.google.com/file/d/1a2B3c4D5e6F/view", rows[1].ViewURL)
	assert.Equal(t, "Lot 7.pdf", rows[2].Filename)
	assert.Equal(t, "id-3", rows[2].FileID)
}

func TestLoadURLRowsWrappedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	raw := `{"files": [{"filename": "A.pdf", "id": "id-a"}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	rows, err := LoadURLRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "id-a", rows[0].FileID)
}
