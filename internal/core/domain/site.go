package domain

// SiteStructure is the generated site content record. It is built fresh on
// every run and written whole; the previous version is always backed up
// before overwrite.
type SiteStructure struct {
	SiteName     string          `json:"siteName"`
	Plans        []PlanSlot      `json:"plans"`
	Lots         []LotSlot       `json:"lots"`
	ProjectDocs  []DocSlot       `json:"projectDocs"`
	Photos       []PhotoSlot     `json:"photos"`
	Presentation *DocSlot        `json:"presentation,omitempty"`
	Flags        map[string]bool `json:"flags,omitempty"`
	Drive        *DriveInfo      `json:"drive,omitempty"`
}

// DriveInfo carries the Drive folder references the site frontend links to.
type DriveInfo struct {
	FolderID       string `json:"folderId"`
	PublicFolderID string `json:"publicFolderId,omitempty"`
}

// PlanSlot is a floor plan entry in the generated site.
type PlanSlot struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	Sqft        int      `json:"sqft"`
	Features    []string `json:"features"`
	File        string   `json:"file"`
	FileName    string   `json:"fileName"`
	Photos      []string `json:"photos"`
}

// LotSlot is a lot entry in the generated site. File points either at the
// lot's own document or at the shared platmap, depending on strategy.
type LotSlot struct {
	ID           string             `json:"id"`
	Number       string             `json:"number"`
	Title        string             `json:"title,omitempty"`
	Description  string             `json:"description,omitempty"`
	Size         string             `json:"size"`
	Features     []string           `json:"features"`
	File         string             `json:"file"`
	Name         string             `json:"name"`
	Page         *int               `json:"page"`
	Photos       []string           `json:"photos"`
	Status       string             `json:"status,omitempty"`
	APN          string             `json:"apn,omitempty"`
	Address      string             `json:"address,omitempty"`
	Missing      []DocKind          `json:"missing,omitempty"`
	DocRefs      map[DocKind]string `json:"docRefs,omitempty"`
	Completeness *int               `json:"completeness,omitempty"`
}

// DocSlot is a project document entry in the generated site.
type DocSlot struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	File        string `json:"file"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
}

// PhotoSlot is a photo entry in the generated site.
type PhotoSlot struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}
