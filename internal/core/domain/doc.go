// Package domain defines the core business entities for sitemapper.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FileRecord: A normalised cloud-drive file listing entry
//   - MappedFile: A file after category classification
//   - SiteSchema: The structural configuration for one site
//   - SiteStructure: The generated site content record
//
// Services in internal/core/services operate on these types; adapters and
// connectors translate them to and from the outside world.
package domain
