package domain

import (
	"fmt"
	"strconv"
	"time"
)

// FileRecord is the canonical representation of a cloud-drive file after
// normalisation. It is immutable once classified.
type FileRecord struct {
	// ID is the opaque, drive-assigned identity. Always present.
	ID string

	// Name is the display name of the file.
	Name string

	// MIMEType is the reported MIME type.
	MIMEType string

	// SizeBytes is the file size. Zero when the drive does not report one.
	SizeBytes int64

	// Checksum is the content checksum (MD5 for Drive). Empty when unknown.
	Checksum string

	// ParentPath is the slash-joined folder path from the listing root.
	// Informational only; it never participates in identity.
	ParentPath string

	// Modified is the last modification time, zero when unknown.
	Modified time.Time
}

// ContentKey derives the equality key used for duplicate detection:
// the checksum when present, otherwise "name|size". The key is only ever
// used for grouping, never persisted as identity.
func (f FileRecord) ContentKey() string {
	if f.Checksum != "" {
		return f.Checksum
	}
	return f.Name + "|" + strconv.FormatInt(f.SizeBytes, 10)
}

// SizeMB returns the file size in megabytes for display.
func (f FileRecord) SizeMB() float64 {
	return float64(f.SizeBytes) / (1024 * 1024)
}

// RawFileEntry is a file listing row before normalisation, as found in
// inventory documents or produced by listing collaborators. Inventory rows
// historically carried the name under either "name" or "current_name".
type RawFileEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	CurrentName string  `json:"current_name,omitempty"`
	MIMEType    string  `json:"mime_type,omitempty"`
	SizeBytes   int64   `json:"size,omitempty"`
	SizeMB      float64 `json:"size_mb,omitempty"`
	Checksum    string  `json:"md5,omitempty"`
	Location    string  `json:"location,omitempty"`
	Modified    string  `json:"modified,omitempty"`
}

// Normalize canonicalises a raw listing entry into a FileRecord.
// Returns ErrMissingFileID when the entry has no identity; callers skip
// such rows with a warning rather than aborting the batch.
func (r RawFileEntry) Normalize() (FileRecord, error) {
	if r.ID == "" {
		return FileRecord{}, fmt.Errorf("%w: %q", ErrMissingFileID, r.DisplayName())
	}

	size := r.SizeBytes
	if size == 0 && r.SizeMB > 0 {
		size = int64(r.SizeMB * 1024 * 1024)
	}

	rec := FileRecord{
		ID:         r.ID,
		Name:       r.DisplayName(),
		MIMEType:   r.MIMEType,
		SizeBytes:  size,
		Checksum:   r.Checksum,
		ParentPath: r.Location,
	}

	if r.Modified != "" {
		// Inventory rows store dates as YYYY-MM-DD, live listings as RFC 3339.
		if t, err := time.Parse(time.RFC3339, r.Modified); err == nil {
			rec.Modified = t
		} else if t, err := time.Parse("2006-01-02", r.Modified); err == nil {
			rec.Modified = t
		}
	}

	return rec, nil
}

// DisplayName returns the entry name, preferring "name" over "current_name".
func (r RawFileEntry) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.CurrentName
}
