package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driving"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

// Ensure Auditor implements the interface.
var _ driving.Auditor = (*Auditor)(nil)

// Auditor analyses drive listings for duplicates and location-exclusive
// files and produces the reorganisation inventory. Read-only: it never
// mutates the drive.
type Auditor struct {
	now func() time.Time
}

// NewAuditor creates an auditor.
func NewAuditor() *Auditor {
	return &Auditor{now: time.Now}
}

// Audit runs duplicate and uniqueness analysis over a listing and builds
// the inventory document. The root set is the immediate files of the
// listing root; the child set is everything under childName, recursively.
func (a *Auditor) Audit(_ context.Context, records []domain.FileRecord, childName string) (*driving.AuditReport, error) {
	report := &driving.AuditReport{
		RunID:      uuid.NewString(),
		RootName:   rootFolderName(records),
		TotalFiles: len(records),
	}

	rootRecords := make([]domain.FileRecord, 0)
	childRecords := make([]domain.FileRecord, 0)
	for _, rec := range records {
		segments := strings.Split(rec.ParentPath, "/")
		if len(segments) == 1 {
			rootRecords = append(rootRecords, rec)
		}
		if underFolder(segments, childName) {
			childRecords = append(childRecords, rec)
			report.ChildFound = true
		}
	}
	if !report.ChildFound {
		logger.Warn("Subfolder %q not found under %q. Treating child as empty.", childName, report.RootName)
	}

	report.Duplicates = orderedDuplicateSets(FindDuplicates(records))
	report.RootOnly, report.ChildOnly = FindUniqueInLocation(rootRecords, childRecords)
	report.Inventory = BuildInventory(records, report.RunID, a.now())

	return report, nil
}

// rootFolderName returns the first path segment shared by the listing.
func rootFolderName(records []domain.FileRecord) string {
	for _, rec := range records {
		if rec.ParentPath != "" {
			root, _, _ := strings.Cut(rec.ParentPath, "/")
			return root
		}
	}
	return "Root"
}

// underFolder reports whether a path contains the named folder as a
// non-root segment, case-insensitively.
func underFolder(segments []string, name string) bool {
	for i, seg := range segments {
		if i > 0 && strings.EqualFold(seg, name) {
			return true
		}
	}
	return false
}

// orderedDuplicateSets converts the duplicate grouping to a deterministic
// sequence ordered by each set's first member (location, then name).
func orderedDuplicateSets(groups map[string][]domain.FileRecord) []driving.DuplicateSet {
	sets := make([]driving.DuplicateSet, 0, len(groups))
	for key, members := range groups {
		sets = append(sets, driving.DuplicateSet{
			Key:        key,
			ByChecksum: members[0].Checksum != "",
			Records:    members,
		})
	}
	sort.Slice(sets, func(i, j int) bool {
		a, b := sets[i].Records[0], sets[j].Records[0]
		if a.ParentPath != b.ParentPath {
			return a.ParentPath < b.ParentPath
		}
		return a.Name < b.Name
	})
	return sets
}

// BuildInventory creates the inventory document from a listing: one row per
// file, new_name seeded from the current name as a renaming checklist,
// checksum truncated for readability, sorted by location then name.
func BuildInventory(records []domain.FileRecord, runID string, at time.Time) domain.InventoryDocument {
	doc := domain.InventoryDocument{
		Description:  domain.InventoryDescription,
		Instructions: domain.InventoryInstructions,
		RunID:        runID,
		GeneratedAt: at.UTC().Format(time.RFC3339),
		Files:       make([]domain.InventoryEntry, 0, len(records)),
	}

	for _, rec := range records {
		modified := ""
		if !rec.Modified.IsZero() {
			modified = rec.Modified.Format("2006-01-02")
		}
		md5 := rec.Checksum
		if len(md5) > 8 {
			md5 = md5[:8]
		}
		doc.Files = append(doc.Files, domain.InventoryEntry{
			ID:          rec.ID,
			CurrentName: rec.Name,
			NewName:     rec.Name,
			SizeMB:      roundMB(rec.SizeMB()),
			Location:    rec.ParentPath,
			Modified:    modified,
			MIMEType:    rec.MIMEType,
			MD5:         md5,
		})
	}

	sort.Slice(doc.Files, func(i, j int) bool {
		if doc.Files[i].Location != doc.Files[j].Location {
			return doc.Files[i].Location < doc.Files[j].Location
		}
		return doc.Files[i].CurrentName < doc.Files[j].CurrentName
	})
	return doc
}

// roundMB rounds a size to two decimals for display.
func roundMB(mb float64) float64 {
	return float64(int(mb*100+0.5)) / 100
}
