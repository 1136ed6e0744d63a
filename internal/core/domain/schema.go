package domain

// DocKind identifies a required document kind for a lot.
type DocKind string

// Document kinds a lot requirement list may reference.
const (
	DocTitleReport    DocKind = "title_report"
	DocGrading        DocKind = "grading"
	DocPlanAssignment DocKind = "plan_assignment"
	DocPlatmap        DocKind = "platmap"
	DocEntitlements   DocKind = "entitlements"
)

// GlobalDefaults supplies fallback plan details and run-wide behaviour
// shared by every site.
type GlobalDefaults struct {
	DefaultBedrooms  int     `json:"default_bedrooms,omitempty"`
	DefaultBathrooms float64 `json:"default_bathrooms,omitempty"`
	DefaultSqft      int     `json:"default_sqft,omitempty"`
	StrictMode       *bool   `json:"strict_mode,omitempty"`
	MaxMiscDocs      *int    `json:"max_misc_docs,omitempty"`
}

// Strict reports whether strict mode is enabled. Defaults to true when the
// configuration leaves it unset.
func (g GlobalDefaults) Strict() bool {
	if g.StrictMode == nil {
		return true
	}
	return *g.StrictMode
}

// Bedrooms returns the default bedroom count, falling back to 3.
func (g GlobalDefaults) Bedrooms() int {
	if g.DefaultBedrooms > 0 {
		return g.DefaultBedrooms
	}
	return 3
}

// Bathrooms returns the default bathroom count, falling back to 2.
func (g GlobalDefaults) Bathrooms() float64 {
	if g.DefaultBathrooms > 0 {
		return g.DefaultBathrooms
	}
	return 2
}

// Sqft returns the default square footage, falling back to 2000.
func (g GlobalDefaults) Sqft() int {
	if g.DefaultSqft > 0 {
		return g.DefaultSqft
	}
	return 2000
}

// PlanDetails describes a single floor plan. Zero fields fall back to the
// global defaults when the slot is built.
type PlanDetails struct {
	Bedrooms  int     `json:"bedrooms,omitempty"`
	Bathrooms float64 `json:"bathrooms,omitempty"`
	Sqft      int     `json:"sqft,omitempty"`
	Stories   int     `json:"stories,omitempty"`
	GarageSF  int     `json:"garage_sf,omitempty"`
	PorchSF   int     `json:"porch_sf,omitempty"`
	PatioSF   int     `json:"patio_sf,omitempty"`
}

// LotDetails describes a single lot: parcel facts plus document availability.
type LotDetails struct {
	APN               string             `json:"apn,omitempty"`
	Address           string             `json:"address,omitempty"`
	Status            string             `json:"status,omitempty"`
	Size              string             `json:"size,omitempty"`
	HasTitleReport    bool               `json:"has_title_report,omitempty"`
	HasGrading        bool               `json:"has_grading,omitempty"`
	HasPlanAssignment bool               `json:"has_plan_assignment,omitempty"`
	DocRefs           map[DocKind]string `json:"doc_refs,omitempty"`
}

// LotRequirements configures which documents every lot must carry and how
// incomplete lots are presented.
type LotRequirements struct {
	ShowMissing      bool      `json:"show_missing,omitempty"`
	HideIncomplete   bool      `json:"hide_incomplete,omitempty"`
	ShowStatusInSize bool      `json:"show_status_in_size,omitempty"`
	RequiredDocs     []DocKind `json:"required_docs,omitempty"`
}

// DocOverride renames or hides a generated project document.
type DocOverride struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Hide        bool   `json:"hide,omitempty"`
}

// SiteSchema is the structural configuration for one site. It is external
// input and never mutated by the mapping pipeline.
type SiteSchema struct {
	// Slug is the site directory name under the sites root. Required.
	Slug string `json:"slug"`

	// Name is the display name written as siteName. Required.
	Name string `json:"name"`

	// Aliases are filename tokens identifying files belonging to this site.
	// Empty means every file passes the alias gate.
	Aliases []string `json:"aliases,omitempty"`

	// DriveFolderID is the Drive folder backing this site's documents.
	DriveFolderID string `json:"drive_folder_id,omitempty"`

	// RequirePublicSubfolder warns when a listing lacks a Public subfolder.
	RequirePublicSubfolder bool `json:"require_public_subfolder,omitempty"`

	// LotCount is the expected number of lots for the platmap strategy.
	LotCount int `json:"lot_count,omitempty"`

	// LotPages maps lot number to the page of the platmap showing it.
	LotPages map[string]int `json:"lot_pages,omitempty"`

	// PlanDetails maps plan number to its details.
	PlanDetails map[string]PlanDetails `json:"plan_details,omitempty"`

	// DocumentOverrides maps a match key (category name, or "misc-<substring>")
	// to a rename/hide override.
	DocumentOverrides map[string]DocOverride `json:"document_overrides,omitempty"`

	// LotDetails maps lot number to its details.
	LotDetails map[string]LotDetails `json:"lot_details,omitempty"`

	// LotRequirements configures per-lot required documents.
	// Nil means "show missing documents, hide nothing, require nothing".
	LotRequirements *LotRequirements `json:"lot_requirements,omitempty"`

	// Overrides forces a file id into any document slot whose id contains
	// the key (substring match on raw and hyphen-normalised key).
	Overrides map[string]string `json:"overrides,omitempty"`

	// HideEmptySections sets the hideEmptySections output flag.
	HideEmptySections *bool `json:"hide_empty_sections,omitempty"`
}

// Requirements returns the lot requirements, defaulting to showing missing
// documents when the schema configures none.
func (s SiteSchema) Requirements() LotRequirements {
	if s.LotRequirements == nil {
		return LotRequirements{ShowMissing: true}
	}
	return *s.LotRequirements
}

// HideEmpty reports whether empty sections should be flagged hidden.
// Defaults to true when the schema leaves it unset.
func (s SiteSchema) HideEmpty() bool {
	if s.HideEmptySections == nil {
		return true
	}
	return *s.HideEmptySections
}

// ExpectedLots returns the lot count, defaulting to 12.
func (s SiteSchema) ExpectedLots() int {
	if s.LotCount > 0 {
		return s.LotCount
	}
	return 12
}

// SitesConfig is the top-level sites configuration document.
type SitesConfig struct {
	Global GlobalDefaults `json:"global"`
	Sites  []SiteSchema   `json:"sites"`
}
