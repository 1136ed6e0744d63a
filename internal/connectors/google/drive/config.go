package drive

// Config controls which part of Drive a Connector walks and what it keeps.
type Config struct {
	// FolderID is the Drive folder the walk starts from.
	FolderID string
	// IncludeImages keeps image files in listings alongside documents.
	IncludeImages bool
	// PageSize is the Files.List page size.
	PageSize int64
}

func NewConfig(folderID string) *Config {
	return &Config{
		FolderID: folderID,
		PageSize: 1000,
	}
}

const folderMimeType = "application/vnd.google-apps.folder"

var documentMimeTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/msword": true,
}

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
	"image/tiff": true,
}

// keeps reports whether a file with the given MIME type belongs in listings.
func (c *Config) keeps(mimeType string) bool {
	if documentMimeTypes[mimeType] {
		return true
	}
	return c.IncludeImages && imageMimeTypes[mimeType]
}
