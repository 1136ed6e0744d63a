package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

func TestFindDuplicates(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "a", Name: "Platmap.pdf", Checksum: "abc", ParentPath: "Root"},
		{ID: "b", Name: "Platmap (1).pdf", Checksum: "abc", ParentPath: "Root/Public"},
		{ID: "c", Name: "Unique.pdf", Checksum: "def", ParentPath: "Root"},
		// No checksum: grouped by the name|size fallback.
		{ID: "d", Name: "Scan.pdf", SizeBytes: 100, ParentPath: "Root"},
		{ID: "e", Name: "Scan.pdf", SizeBytes: 100, ParentPath: "Root/Public"},
		{ID: "f", Name: "Scan.pdf", SizeBytes: 999, ParentPath: "Root"},
	}

	groups := FindDuplicates(records)

	require.Len(t, groups, 2)
	assert.Len(t, groups["abc"], 2)
	assert.Len(t, groups["Scan.pdf|100"], 2)
}

func TestFindUniqueInLocation(t *testing.T) {
	root := []domain.FileRecord{
		{ID: "a", Name: "Shared.pdf", Checksum: "s1"},
		{ID: "b", Name: "RootOnly.pdf", Checksum: "r1"},
	}
	child := []domain.FileRecord{
		{ID: "c", Name: "Shared.pdf", Checksum: "s1"},
		{ID: "d", Name: "ChildOnly.pdf", Checksum: "c1"},
	}

	onlyRoot, onlyChild := FindUniqueInLocation(root, child)

	require.Len(t, onlyRoot, 1)
	assert.Equal(t, "b", onlyRoot[0].ID)
	require.Len(t, onlyChild, 1)
	assert.Equal(t, "d", onlyChild[0].ID)
}

func TestFindUniqueInLocationEmptySides(t *testing.T) {
	records := []domain.FileRecord{{ID: "a", Name: "A.pdf", Checksum: "x"}}

	onlyRoot, onlyChild := FindUniqueInLocation(records, nil)
	assert.Len(t, onlyRoot, 1)
	assert.Empty(t, onlyChild)

	onlyRoot, onlyChild = FindUniqueInLocation(nil, records)
	assert.Empty(t, onlyRoot)
	assert.Len(t, onlyChild, 1)
}

func TestDedupeByName(t *testing.T) {
	records := []domain.FileRecord{
		{ID: "a", Name: "plan 3.pdf"},
		{ID: "b", Name: "Plan 3 (copy).pdf"},
		{ID: "c", Name: "PLAN 3.pdf"},
		{ID: "d", Name: "Alpha.pdf"},
	}

	out := DedupeByName(records)

	require.Len(t, out, 3)
	assert.Equal(t, "Alpha.pdf", out[0].Name)
	// "Plan 3 (copy).pdf" is its own name; the two "plan 3.pdf" variants
	// collapse to one record.
	assert.Equal(t, "Plan 3 (copy).pdf", out[1].Name)
	assert.Equal(t, "plan 3.pdf", out[2].Name)
}
