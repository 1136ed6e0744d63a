package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingFileID indicates a listing row has no file identity.
	// Such rows are skipped individually; they never abort a batch.
	ErrMissingFileID = errors.New("file record missing id")

	// ErrMissingSchemaField indicates a required sites-config field is
	// absent. Configuration errors are fatal; no partial write occurs.
	ErrMissingSchemaField = errors.New("missing required schema field")

	// ErrSiteDataNotFound indicates the target site data file does not
	// exist and no template fallback is available.
	ErrSiteDataNotFound = errors.New("site data not found")

	// ErrInvalidInventory indicates the inventory document could not be
	// parsed into file listing rows.
	ErrInvalidInventory = errors.New("invalid inventory format")

	// ErrNoInventory indicates no inventory is available from any source.
	ErrNoInventory = errors.New("no inventory available")

	// ErrConfigInvalid indicates the sites configuration failed schema
	// validation.
	ErrConfigInvalid = errors.New("sites configuration invalid")
)
