package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

func TestAudit(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "a", Name: "Shared.pdf", Checksum: "s1", ParentPath: "Verella"},
		{ID: "b", Name: "RootOnly.pdf", Checksum: "r1", ParentPath: "Verella"},
		{ID: "c", Name: "Shared.pdf", Checksum: "s1", ParentPath: "Verella/Public"},
		{ID: "d", Name: "ChildOnly.pdf", Checksum: "c1", ParentPath: "Verella/Public/Maps"},
	}

	report, err := NewAuditor().Audit(context.Background(), records, "Public")
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "Verella", report.RootName)
	assert.Equal(t, 4, report.TotalFiles)
	assert.True(t, report.ChildFound)

	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, "s1", report.Duplicates[0].Key)
	assert.True(t, report.Duplicates[0].ByChecksum)
	assert.Len(t, report.Duplicates[0].Records, 2)

	require.Len(t, report.RootOnly, 1)
	assert.Equal(t, "b", report.RootOnly[0].ID)
	require.Len(t, report.ChildOnly, 1)
	assert.Equal(t, "d", report.ChildOnly[0].ID)

	assert.Len(t, report.Inventory.Files, 4)
	assert.Equal(t, report.RunID, report.Inventory.RunID)
}

func TestAuditChildMissing(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "a", Name: "A.pdf", Checksum: "x", ParentPath: "Verella"},
	}

	report, err := NewAuditor().Audit(context.Background(), records, "Public")
	require.NoError(t, err)

	assert.False(t, report.ChildFound)
	assert.Len(t, report.RootOnly, 1)
	assert.Empty(t, report.ChildOnly)
}

func TestAuditChildNameCaseInsensitive(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "a", Name: "A.pdf", Checksum: "x", ParentPath: "Verella/PUBLIC"},
	}

	report, err := NewAuditor().Audit(context.Background(), records, "public")
	require.NoError(t, err)
	assert.True(t, report.ChildFound)
}

func TestBuildInventory(t *testing.T) {
	modified := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	records := []domain.FileRecord{
		{ID: "b", Name: "Zeta.pdf", Checksum: "0123456789abcdef", SizeBytes: 2_621_440, ParentPath: "Verella", Modified: modified},
		{ID: "a", Name: "Alpha.pdf", Checksum: "ff", SizeBytes: 1024, ParentPath: "Verella"},
		{ID: "c", Name: "Beta.pdf", ParentPath: "Verella/Public"},
	}

	at := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	doc := BuildInventory(records, "run-1", at)

	assert.Equal(t, domain.InventoryDescription, doc.Description)
	assert.Equal(t, domain.InventoryInstructions, doc.Instructions)
	assert.Equal(t, "run-1", doc.RunID)
	assert.Equal(t, "2026-03-15T00:00:00Z", doc.GeneratedAt)

	require.Len(t, doc.Files, 3)
	// Sorted by location, then name.
	assert.Equal(t, "Alpha.pdf", doc.Files[0].CurrentName)
	assert.Equal(t, "Zeta.pdf", doc.Files[1].CurrentName)
	assert.Equal(t, "Beta.pdf", doc.Files[2].CurrentName)

	zeta := doc.Files[1]
	assert.Equal(t, "Zeta.pdf", zeta.NewName, "new_name starts as the current name")
	assert.Equal(t, 2.5, zeta.SizeMB)
	assert.Equal(t, "01234567", zeta.MD5, "checksum is truncated for readability")
	assert.Equal(t, "2026-03-14", zeta.Modified)
	assert.Empty(t, doc.Files[0].Modified, "zero time renders empty")
}
