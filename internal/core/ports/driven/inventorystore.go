package driven

import "github.com/oakfield-labs/sitemapper-cli/internal/core/domain"

// InventoryStore caches audit inventories so later generation runs can work
// from the most recent listing without hitting the drive again.
type InventoryStore interface {
	// SaveRun stores an inventory run.
	SaveRun(doc domain.InventoryDocument) error

	// LatestRun returns the most recently stored inventory.
	// Returns domain.ErrNoInventory when the cache is empty.
	LatestRun() (*domain.InventoryDocument, error)

	// Close releases resources.
	Close() error
}
