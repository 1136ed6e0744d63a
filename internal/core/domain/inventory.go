package domain

// InventoryDescription and InventoryInstructions head every inventory
// document so an operator opening the JSON knows what it is for.
var (
	InventoryDescription = "File inventory for reorganization. Use as a checklist for renaming in Drive UI."

	InventoryInstructions = []string{
		"1. Review this inventory to plan your file organization",
		"2. Rename/move files directly in Google Drive",
		"3. Run 'sitemapper generate' to update the site with new IDs",
		"4. This is READ-ONLY - no automated renaming",
	}
)

// InventoryDocument is the persisted file inventory: a reorganisation
// checklist for the operator and the slot builder's file source when no
// live listing is available.
type InventoryDocument struct {
	Description  string           `json:"_description"`
	Instructions []string         `json:"_instructions"`
	RunID        string           `json:"_run_id,omitempty"`
	GeneratedAt  string           `json:"_generated_at,omitempty"`
	Files        []InventoryEntry `json:"files"`
}

// InventoryEntry is one row of the inventory document. NewName starts equal
// to CurrentName; the operator edits it as a renaming checklist.
type InventoryEntry struct {
	ID          string  `json:"id"`
	CurrentName string  `json:"current_name"`
	NewName     string  `json:"new_name"`
	SizeMB      float64 `json:"size_mb"`
	Location    string  `json:"location"`
	Modified    string  `json:"modified"`
	MIMEType    string  `json:"mime_type"`
	MD5         string  `json:"md5"`
}

// RawEntry converts an inventory row back into a raw listing entry for
// normalisation.
func (e InventoryEntry) RawEntry() RawFileEntry {
	return RawFileEntry{
		ID:          e.ID,
		CurrentName: e.CurrentName,
		MIMEType:    e.MIMEType,
		SizeMB:      e.SizeMB,
		Checksum:    e.MD5,
		Location:    e.Location,
		Modified:    e.Modified,
	}
}

// URLRow is one row of a urls.json document: a filename paired with a file
// id or a share URL the id can be extracted from.
type URLRow struct {
	Filename   string `json:"filename"`
	FileID     string `json:"file_id,omitempty"`
	ViewURL    string `json:"view_url,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
}
