// Package services implements the core mapping pipeline: filename
// classification, slot building, fuzzy title matching, duplicate
// resolution, and the orchestration that ties them to stores and listings.
//
// Everything here is deterministic and single-threaded: buckets are built
// fresh per invocation and re-running the pipeline on unchanged input
// produces identical output, which is what allows the always-write,
// always-back-up persistence policy.
package services
