package driving

import (
	"context"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

// Auditor analyses a drive listing for duplicates and location-exclusive
// files, and produces the inventory document.
type Auditor interface {
	// Audit runs the full analysis over a listing. childName is the
	// subfolder compared against the root (conventionally "Public"); a
	// missing child folder is reported, not an error.
	Audit(ctx context.Context, records []domain.FileRecord, childName string) (*AuditReport, error)
}

// AuditReport is the outcome of one audit run.
type AuditReport struct {
	// RunID uniquely identifies this audit run.
	RunID string

	// RootName is the name of the scanned root folder.
	RootName string

	// TotalFiles counts the records analysed.
	TotalFiles int

	// Duplicates holds every duplicate set (two or more records sharing a
	// content key).
	Duplicates []DuplicateSet

	// RootOnly are files present at the root but not under the child.
	RootOnly []domain.FileRecord

	// ChildOnly are files present under the child but not at the root.
	ChildOnly []domain.FileRecord

	// ChildFound is false when the child folder was absent from the
	// listing; the child set is then treated as empty.
	ChildFound bool

	// Inventory is the generated inventory document for persistence.
	Inventory domain.InventoryDocument
}

// DuplicateSet is a group of records sharing one content key.
type DuplicateSet struct {
	// Key is the content key the set shares.
	Key string

	// ByChecksum is true when the key is a checksum rather than the
	// name|size fallback.
	ByChecksum bool

	// Records are the members, always two or more.
	Records []domain.FileRecord
}
