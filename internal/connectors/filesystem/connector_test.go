package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func recordByName(records []domain.FileRecord, name string) *domain.FileRecord {
	for i := range records {
		if records[i].Name == name {
			return &records[i]
		}
	}
	return nil
}

func TestConnectorList(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Verella")
	writeFile(t, root, "Platmap.pdf", "platmap content")
	writeFile(t, root, "Public/Plan 3.pdf", "plan content")
	writeFile(t, root, "Public/photo.png", "png bytes")
	writeFile(t, root, "notes.txt", "ignored")

	conn := New(root, nil)
	assert.Equal(t, "filesystem", conn.Type())

	records, err := conn.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2, "default patterns keep documents only")

	plat := recordByName(records, "Platmap.pdf")
	require.NotNil(t, plat)
	assert.Equal(t, "Platmap.pdf", plat.ID)
	assert.Equal(t, "application/pdf", plat.MIMEType)
	assert.Equal(t, "Verella", plat.ParentPath)
	assert.Equal(t, int64(len("platmap content")), plat.SizeBytes)
	assert.Len(t, plat.Checksum, 32)
	assert.False(t, plat.Modified.IsZero())

	plan := recordByName(records, "Plan 3.pdf")
	require.NotNil(t, plan)
	assert.Equal(t, "Public/Plan 3.pdf", plan.ID)
	assert.Equal(t, "Verella/Public", plan.ParentPath)
}

func TestConnectorListWithImagePatterns(t *testing.T) {
	root := filepath.Join(t.TempDir(), "site")
	writeFile(t, root, "doc.pdf", "doc")
	writeFile(t, root, "render.png", "png")

	patterns := append(append([]string{}, DocumentPatterns...), ImagePatterns...)
	records, err := New(root, patterns).List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	img := recordByName(records, "render.png")
	require.NotNil(t, img)
	assert.Equal(t, "image/png", img.MIMEType)
}

func TestConnectorListCaseInsensitiveExtensions(t *testing.T) {
	root := filepath.Join(t.TempDir(), "site")
	writeFile(t, root, "UPPER.PDF", "doc")

	records, err := New(root, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "application/pdf", records[0].MIMEType)
}
