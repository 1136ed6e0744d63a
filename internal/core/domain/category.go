package domain

import "fmt"

// Category is the semantic category assigned to a file by the classifier.
// The enumeration is closed: every file receives exactly one category, and
// files matching no pattern fall through to CategoryMisc.
type Category string

// File categories, in no particular order. Classification priority lives in
// the classifier's pattern table, not here.
const (
	CategoryPlan         Category = "plan"
	CategoryLot          Category = "lot"
	CategoryPlatmap      Category = "platmap"
	CategoryEntitlements Category = "entitlements"
	CategoryGrading      Category = "grading"
	CategoryCompanyInfo  Category = "company_info"
	CategoryPresentation Category = "presentation"
	CategoryPhoto        Category = "photo"
	CategoryMisc         Category = "misc"
)

// Categories lists every category. Used for bucket initialisation and
// exhaustiveness checks in tests.
var Categories = []Category{
	CategoryPlan,
	CategoryLot,
	CategoryPlatmap,
	CategoryEntitlements,
	CategoryGrading,
	CategoryCompanyInfo,
	CategoryPresentation,
	CategoryPhoto,
	CategoryMisc,
}

// MappedFile is a file after classification. Created once by the classifier
// and consumed read-only by the slot builder.
type MappedFile struct {
	// FileID is the drive-assigned file identity.
	FileID string

	// Name is the display name of the file.
	Name string

	// Category is the assigned semantic category.
	Category Category

	// Ordinal is the plan or lot number extracted from the name.
	// Nil when the winning pattern captured no number.
	Ordinal *int

	// Description is the derived human-readable description.
	Description string
}

// DescribeCategory derives the human description for a category and an
// optional ordinal, matching the wording shown on generated sites.
func DescribeCategory(cat Category, ordinal *int) string {
	switch cat {
	case CategoryPlan:
		if ordinal != nil {
			return fmt.Sprintf("Floor plan %d", *ordinal)
		}
		return "Floor plan details"
	case CategoryLot:
		if ordinal != nil {
			return fmt.Sprintf("Lot %d information", *ordinal)
		}
		return "Lot information"
	case CategoryPlatmap:
		return "Official lot layout and dimensions"
	case CategoryEntitlements:
		return "Development permissions and approvals"
	case CategoryGrading:
		return "Site grading and elevation plans"
	case CategoryCompanyInfo:
		return "Company details and structure"
	case CategoryPresentation:
		return "Project overview presentation"
	case CategoryPhoto:
		if ordinal != nil {
			return fmt.Sprintf("Site photo %d", *ordinal)
		}
		return "Site photography"
	default:
		return "Project documentation"
	}
}
