package driving

import "github.com/oakfield-labs/sitemapper-cli/internal/core/domain"

// Patcher fills real file IDs into an existing site structure by fuzzy
// matching slot titles against a candidate file pool.
type Patcher interface {
	// Apply updates file references in place and reports what changed.
	// Slots with no candidate scoring above zero are left untouched.
	Apply(site *domain.SiteStructure, pool []domain.FileRecord) PatchResult
}

// PatchResult summarises an Apply pass.
type PatchResult struct {
	// Updated counts slots whose file reference changed.
	Updated int

	// Total counts slots considered.
	Total int

	// Matched lists the slot-to-file pairings made.
	Matched []PatchMatch
}

// PatchMatch records one slot-to-file pairing.
type PatchMatch struct {
	SlotTitle string
	FileName  string
	FileID    string
}
