// Package connectors provides implementations of the FileSource port for
// the locations site documents live in: a Google Drive folder tree and a
// local public folder. Connectors are read-only; they list files, they
// never rename or move them.
package connectors
