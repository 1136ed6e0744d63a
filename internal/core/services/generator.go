package services

import (
	"context"
	"fmt"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driven"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driving"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

// Ensure Generator implements the interface.
var _ driving.SiteGenerator = (*Generator)(nil)

// Generator orchestrates site regeneration: it filters the inventory per
// site, runs classification and slot building, and persists the result.
type Generator struct {
	siteStore driven.SiteStore
}

// NewGenerator creates a site generator backed by the given site store.
func NewGenerator(siteStore driven.SiteStore) *Generator {
	return &Generator{siteStore: siteStore}
}

// GenerateAll regenerates every configured site from the inventory rows.
func (g *Generator) GenerateAll(ctx context.Context, cfg domain.SitesConfig, inventory []domain.RawFileEntry, dryRun bool) ([]driving.GenerateResult, error) {
	results := make([]driving.GenerateResult, 0, len(cfg.Sites))
	for _, site := range cfg.Sites {
		siteFiles := filterByLocation(inventory, site.Slug)
		res, err := g.GenerateSite(ctx, cfg.Global, site, siteFiles, dryRun)
		if err != nil {
			return results, fmt.Errorf("site %q: %w", site.Slug, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// GenerateSite regenerates a single site. Configuration errors (missing
// required schema fields, failed writes) abort; per-record anomalies only
// warn.
func (g *Generator) GenerateSite(_ context.Context, defaults domain.GlobalDefaults, schema domain.SiteSchema, inventory []domain.RawFileEntry, dryRun bool) (driving.GenerateResult, error) {
	if schema.Slug == "" {
		return driving.GenerateResult{}, fmt.Errorf("%w: slug", domain.ErrMissingSchemaField)
	}
	if schema.Name == "" {
		return driving.GenerateResult{}, fmt.Errorf("%w: name (site %q)", domain.ErrMissingSchemaField, schema.Slug)
	}

	if schema.RequirePublicSubfolder {
		// Inventory rows carry no subfolder structure; warn and use what we have.
		logger.Warn("Public subfolder not found in inventory; using root files (warn only).")
	}

	classifier := NewClassifier(schema.Aliases)
	buckets, skipped := classifier.ClassifyAll(inventory)

	builder := NewBuilder(defaults, defaults.Strict())
	structure := builder.Build(buckets, schema)

	if schema.DriveFolderID != "" {
		structure.Drive = &domain.DriveInfo{FolderID: schema.DriveFolderID}
	}
	if schema.HideEmpty() {
		if structure.Flags == nil {
			structure.Flags = make(map[string]bool)
		}
		structure.Flags["hideEmptySections"] = true
	}

	result := driving.GenerateResult{
		Slug:      schema.Slug,
		Structure: structure,
		Skipped:   skipped,
	}

	if dryRun {
		logger.Info("[DRY RUN] Would write %s with %d plans, %d lots, %d docs, %d photos.",
			schema.Slug, len(structure.Plans), len(structure.Lots), len(structure.ProjectDocs), len(structure.Photos))
		return result, nil
	}

	if err := g.siteStore.Save(schema.Slug, structure); err != nil {
		return result, fmt.Errorf("save site data: %w", err)
	}
	result.Written = true
	return result, nil
}

// filterByLocation keeps rows whose location matches the slug; when none
// match the whole inventory is used, mirroring single-site inventories that
// carry no location field.
func filterByLocation(inventory []domain.RawFileEntry, slug string) []domain.RawFileEntry {
	var matched []domain.RawFileEntry
	for _, entry := range inventory {
		if entry.Location == slug {
			matched = append(matched, entry)
		}
	}
	if len(matched) == 0 {
		return inventory
	}
	return matched
}
