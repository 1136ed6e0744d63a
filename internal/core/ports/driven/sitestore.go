package driven

import "github.com/oakfield-labs/sitemapper-cli/internal/core/domain"

// SiteStore persists generated site content records.
// Save must back up the previous version before overwriting; a failed
// backup or write is fatal to the run.
type SiteStore interface {
	// Load reads the site data for a slug.
	// Returns domain.ErrSiteDataNotFound when the file does not exist.
	Load(slug string) (*domain.SiteStructure, error)

	// Save writes the site data for a slug, backing up any previous
	// version first.
	Save(slug string, site *domain.SiteStructure) error

	// Seed creates the site data for a slug from the shared template when
	// it does not exist yet. Returns domain.ErrSiteDataNotFound when no
	// template is available either.
	Seed(slug string) error
}
