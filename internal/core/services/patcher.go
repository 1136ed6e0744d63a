package services

import (
	"fmt"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driving"
)

// Ensure Patcher implements the interface.
var _ driving.Patcher = (*Patcher)(nil)

// Patcher fills real drive file IDs into an existing site structure by
// fuzzy matching each slot's title against a candidate file pool.
type Patcher struct{}

// NewPatcher creates a patcher.
func NewPatcher() *Patcher {
	return &Patcher{}
}

// Apply walks the presentation, project documents, plans, and lots of the
// site, fuzzy-matching each slot title against the pool. A zero best score
// leaves the slot untouched; that is a matching miss, not an error.
func (p *Patcher) Apply(site *domain.SiteStructure, pool []domain.FileRecord) driving.PatchResult {
	var res driving.PatchResult

	trySet := func(title string, file *string, name *string) {
		res.Total++
		match := BestMatch(title, pool)
		if match == nil {
			return
		}
		if *file != match.ID {
			*file = match.ID
			res.Updated++
			res.Matched = append(res.Matched, driving.PatchMatch{
				SlotTitle: title,
				FileName:  match.Name,
				FileID:    match.ID,
			})
		}
		if name != nil && *name == "" {
			*name = match.Name
		}
	}

	if site.Presentation != nil {
		title := site.Presentation.Title
		if title == "" {
			title = "presentation"
		}
		trySet(title, &site.Presentation.File, &site.Presentation.Name)
	}

	for i := range site.ProjectDocs {
		doc := &site.ProjectDocs[i]
		trySet(doc.Title, &doc.File, &doc.Name)
	}

	for i := range site.Plans {
		plan := &site.Plans[i]
		trySet(plan.Title, &plan.File, nil)
	}

	for i := range site.Lots {
		lot := &site.Lots[i]
		title := lot.Number
		if title == "" {
			title = lot.Title
		}
		trySet(title, &lot.File, nil)
	}

	return res
}

// PoolFromURLRows converts urls.json rows into a candidate pool. Rows
// without a usable filename are dropped; rows without an id are counted so
// the caller can warn. extractID resolves ids from raw ids or share URLs.
func PoolFromURLRows(rows []domain.URLRow, extractID func(string) string) (pool []domain.FileRecord, missingID int) {
	for _, row := range rows {
		if row.Filename == "" {
			continue
		}
		id := extractID(row.FileID)
		if id == "" {
			id = extractID(row.ViewURL)
		}
		if id == "" {
			id = extractID(row.PreviewURL)
		}
		if id == "" {
			missingID++
			continue
		}
		pool = append(pool, domain.FileRecord{ID: id, Name: row.Filename})
	}
	return pool, missingID
}

// CountPlaceholders reports how many slots still reference the given
// placeholder value after a patch pass.
func CountPlaceholders(site *domain.SiteStructure, placeholder string) int {
	count := 0
	if site.Presentation != nil && site.Presentation.File == placeholder {
		count++
	}
	for _, d := range site.ProjectDocs {
		if d.File == placeholder {
			count++
		}
	}
	for _, p := range site.Plans {
		if p.File == placeholder {
			count++
		}
	}
	for _, l := range site.Lots {
		if l.File == placeholder {
			count++
		}
	}
	return count
}

// Summary renders the end-of-run matched/updated summary line.
func (p *Patcher) Summary(res driving.PatchResult) string {
	return fmt.Sprintf("Updated %d/%d entries", res.Updated, res.Total)
}
