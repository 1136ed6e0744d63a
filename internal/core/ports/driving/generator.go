package driving

import (
	"context"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

// SiteGenerator maps classified inventories onto site structures and
// persists them.
type SiteGenerator interface {
	// GenerateAll regenerates every site in the configuration from the
	// given inventory rows. Rows are filtered per site by location; when
	// no row matches a site's slug the whole inventory is used.
	GenerateAll(ctx context.Context, cfg domain.SitesConfig, inventory []domain.RawFileEntry, dryRun bool) ([]GenerateResult, error)

	// GenerateSite regenerates a single site.
	GenerateSite(ctx context.Context, defaults domain.GlobalDefaults, schema domain.SiteSchema, inventory []domain.RawFileEntry, dryRun bool) (GenerateResult, error)
}

// GenerateResult summarises one site's regeneration.
type GenerateResult struct {
	// Slug is the site the result belongs to.
	Slug string

	// Structure is the freshly built site record.
	Structure *domain.SiteStructure

	// Skipped counts listing rows dropped for missing identity.
	Skipped int

	// Written is false on dry runs.
	Written bool
}
