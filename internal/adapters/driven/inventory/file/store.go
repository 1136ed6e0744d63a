// Package file reads and writes inventory documents as JSON and CSV.
// Readers accept both the wrapped {"files": [...]} document shape and a
// bare list of entries, since hand-maintained mappings come in both.
package file

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

var csvHeader = []string{"id", "current_name", "new_name", "size_mb", "location", "modified", "mime_type", "md5"}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// WriteJSON writes a full inventory document with its operator
// instructions header.
func (s *Store) WriteJSON(doc *domain.InventoryDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write inventory: %w", err)
	}
	return nil
}

// ReadEntries loads the file mapping as raw entries ready for
// normalization.
func (s *Store) ReadEntries() ([]domain.RawFileEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	return decodeEntries(data)
}

func decodeEntries(data []byte) ([]domain.RawFileEntry, error) {
	var wrapped struct {
		Files []domain.RawFileEntry `json:"files"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Files != nil {
		return wrapped.Files, nil
	}

	var bare []domain.RawFileEntry
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("inventory is neither a document nor a list: %w", domain.ErrInvalidInventory)
}

// WriteCSV exports inventory entries as a spreadsheet-friendly CSV.
func WriteCSV(path string, entries []domain.InventoryEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		row := []string{
			entry.ID,
			entry.CurrentName,
			entry.NewName,
			strconv.FormatFloat(entry.SizeMB, 'f', 2, 64),
			entry.Location,
			entry.Modified,
			entry.MIMEType,
			entry.MD5,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// LoadURLRows reads a urls.json file. Rows are keyed loosely because the
// file is assembled by hand; several field spellings are accepted for the
// name and the ID source.
func LoadURLRows(path string) ([]domain.URLRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read urls: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		var wrapped struct {
			Files []map[string]any `json:"files"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil || wrapped.Files == nil {
			return nil, fmt.Errorf("urls file is neither a list nor a document: %w", domain.ErrInvalidInventory)
		}
		raw = wrapped.Files
	}

	rows := make([]domain.URLRow, 0, len(raw))
	for _, entry := range raw {
		rows = append(rows, domain.URLRow{
			Filename:   firstString(entry, "filename", "name", "path"),
			FileID:     firstString(entry, "id", "file_id"),
			ViewURL:    firstString(entry, "url", "view_url", "shareUrl", "share_url"),
			PreviewURL: firstString(entry, "preview_url"),
		})
	}
	return rows, nil
}

func firstString(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := entry[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
