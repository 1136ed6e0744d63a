package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentKey(t *testing.T) {
	tests := []struct {
		name     string
		record   FileRecord
		expected string
	}{
		{"checksum wins", FileRecord{Name: "a.pdf", SizeBytes: 100, Checksum: "abc"}, "abc"},
		{"fallback to name and size", FileRecord{Name: "a.pdf", SizeBytes: 100}, "a.pdf|100"},
		{"fallback with zero size", FileRecord{Name: "a.pdf"}, "a.pdf|0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.ContentKey())
		})
	}
}

func TestSizeMB(t *testing.T) {
	assert.Equal(t, 2.5, FileRecord{SizeBytes: 2_621_440}.SizeMB())
	assert.Zero(t, FileRecord{}.SizeMB())
}

func TestNormalize(t *testing.T) {
	entry := RawFileEntry{
		ID:        "f1",
		Name:      "Plan 3.pdf",
		MIMEType:  "application/pdf",
		SizeBytes: 1024,
		Checksum:  "abc",
		Location:  "Verella/Public",
		Modified:  "2026-03-14T10:30:00Z",
	}

	rec, err := entry.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "f1", rec.ID)
	assert.Equal(t, "Plan 3.pdf", rec.Name)
	assert.Equal(t, "Verella/Public", rec.ParentPath)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC), rec.Modified)
}

func TestNormalizeMissingID(t *testing.T) {
	_, err := RawFileEntry{Name: "orphan.pdf"}.Normalize()
	assert.ErrorIs(t, err, ErrMissingFileID)
}

func TestNormalizeDateOnlyModified(t *testing.T) {
	rec, err := RawFileEntry{ID: "f1", Name: "a.pdf", Modified: "2026-03-14"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), rec.Modified)
}

func TestNormalizeUnparseableModified(t *testing.T) {
	rec, err := RawFileEntry{ID: "f1", Name: "a.pdf", Modified: "last tuesday"}.Normalize()
	require.NoError(t, err)
	assert.True(t, rec.Modified.IsZero())
}

func TestNormalizeSizeMBFallback(t *testing.T) {
	rec, err := RawFileEntry{ID: "f1", Name: "a.pdf", SizeMB: 2.5}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, int64(2_621_440), rec.SizeBytes)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "new.pdf", RawFileEntry{Name: "new.pdf", CurrentName: "old.pdf"}.DisplayName())
	assert.Equal(t, "old.pdf", RawFileEntry{CurrentName: "old.pdf"}.DisplayName())
	assert.Empty(t, RawFileEntry{}.DisplayName())
}

func TestSchemaDefaults(t *testing.T) {
	var g GlobalDefaults
	assert.True(t, g.Strict())
	assert.Equal(t, 3, g.Bedrooms())
	assert.Equal(t, 2.0, g.Bathrooms())
	assert.Equal(t, 2000, g.Sqft())

	strictOff := false
	g = GlobalDefaults{StrictMode: &strictOff, DefaultBedrooms: 5}
	assert.False(t, g.Strict())
	assert.Equal(t, 5, g.Bedrooms())

	var s SiteSchema
	assert.True(t, s.HideEmpty())
	assert.Equal(t, 12, s.ExpectedLots())
	assert.Equal(t, LotRequirements{ShowMissing: true}, s.Requirements())

	hide := false
	s = SiteSchema{HideEmptySections: &hide, LotCount: 4, LotRequirements: &LotRequirements{}}
	assert.False(t, s.HideEmpty())
	assert.Equal(t, 4, s.ExpectedLots())
	assert.Equal(t, LotRequirements{}, s.Requirements())
}
