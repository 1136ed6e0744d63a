package driven

import (
	"context"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

// FileSource lists files from a storage location (cloud drive folder tree,
// local public folder). Listings are a single blocking pass: the source
// handles pagination internally and performs no retries of its own.
type FileSource interface {
	// Type returns the source type identifier (e.g. "gdrive", "filesystem").
	Type() string

	// List returns every file under the source root as normalised records,
	// with ParentPath set to the slash-joined folder path from the root.
	List(ctx context.Context) ([]domain.FileRecord, error)
}
