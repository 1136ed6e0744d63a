package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

var (
	knownExtRe  = regexp.MustCompile(`\.(pdf|docx?)$`)
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9]+`)
	multiSpaces = regexp.MustCompile(`\s+`)
)

// NormalizeFilename lower-cases a name, strips known document extensions,
// and collapses non-alphanumeric runs to single spaces. Classification and
// fuzzy matching both operate on this normalised form.
func NormalizeFilename(name string) string {
	s := strings.ToLower(name)
	s = knownExtRe.ReplaceAllString(s, "")
	s = nonAlnumRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(multiSpaces.ReplaceAllString(s, " "))
}

// categoryGroup pairs a category with its ordered pattern list.
type categoryGroup struct {
	category domain.Category
	patterns []*regexp.Regexp
}

// classificationOrder is the fixed priority order of pattern groups.
// Grading is checked before plan so "grading plan" never classifies as a
// plan; the guarantee comes from this ordering alone, so keep grading first.
var classificationOrder = []categoryGroup{
	{domain.CategoryGrading, compileAll(
		`grading\s?plan`,
		`grading`,
		`grade`,
		`elevation`,
		`topograph`,
	)},
	{domain.CategoryPlatmap, compileAll(
		`plat\s?map`,
		`tentative\s?map`,
		`lot\s?map`,
		`site\s?map`,
	)},
	{domain.CategoryEntitlements, compileAll(
		`entitlement`,
		`permit`,
		`approval`,
		`zoning`,
	)},
	{domain.CategoryCompanyInfo, compileAll(
		`llc`,
		`company`,
		`corporate`,
		`business`,
	)},
	{domain.CategoryPresentation, compileAll(
		`presentation`,
		`slide`,
		`deck`,
		`overview`,
	)},
	{domain.CategoryLot, compileAll(
		// lots/parcels 1-999 with optional leading zeros
		`\b(?:lot|parcel)[\s_-]?0*([1-9]\d{0,2})\b`,
	)},
	{domain.CategoryPlan, compileAll(
		// plans 1-12 with optional leading zeros
		`\bplan[\s_-]?0*(1[0-2]|[1-9])\b`,
		// models/units/types 1-99 with optional leading zeros
		`\bmodel[\s_-]?0*([1-9]\d?)\b`,
		`\bunit[\s_-]?0*([1-9]\d?)\b`,
		`\btype[\s_-]?0*([1-9]\d?)\b`,
	)},
	{domain.CategoryPhoto, compileAll(
		`photo`,
		`image`,
		`picture`,
		`render`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// Classifier assigns a semantic category to each file record based on its
// filename. Classification is a pure function of the name: no side effects,
// no state beyond the configured alias gate.
type Classifier struct {
	aliases []string
}

// NewClassifier creates a classifier. With no aliases every file passes the
// gate; with aliases configured a filename must contain one of them.
func NewClassifier(aliases []string) *Classifier {
	lowered := make([]string, len(aliases))
	for i, a := range aliases {
		lowered[i] = strings.ToLower(a)
	}
	return &Classifier{aliases: lowered}
}

// aliasAllows reports whether a filename passes the alias gate.
func (c *Classifier) aliasAllows(name string) bool {
	if len(c.aliases) == 0 {
		return true
	}
	low := strings.ToLower(name)
	for _, a := range c.aliases {
		if strings.Contains(low, a) {
			return true
		}
	}
	return false
}

// Classify assigns a category to a file record. Returns nil when the record
// is excluded by the alias gate. Files matching no pattern classify as misc
// with no ordinal; a classification miss is never an error.
func (c *Classifier) Classify(rec domain.FileRecord) *domain.MappedFile {
	if !c.aliasAllows(rec.Name) {
		return nil
	}

	name := NormalizeFilename(rec.Name)
	for _, group := range classificationOrder {
		for _, pat := range group.patterns {
			m := pat.FindStringSubmatch(name)
			if m == nil {
				continue
			}
			var ordinal *int
			if len(m) > 1 && m[1] != "" {
				// Parse failures silently yield no ordinal.
				if n, err := strconv.Atoi(m[1]); err == nil {
					ordinal = &n
				}
			}
			return &domain.MappedFile{
				FileID:      rec.ID,
				Name:        rec.Name,
				Category:    group.category,
				Ordinal:     ordinal,
				Description: domain.DescribeCategory(group.category, ordinal),
			}
		}
	}

	return &domain.MappedFile{
		FileID:      rec.ID,
		Name:        rec.Name,
		Category:    domain.CategoryMisc,
		Description: domain.DescribeCategory(domain.CategoryMisc, nil),
	}
}

// Buckets groups classified files by category.
type Buckets map[domain.Category][]domain.MappedFile

// NewBuckets creates an empty bucket per category.
func NewBuckets() Buckets {
	b := make(Buckets, len(domain.Categories))
	for _, cat := range domain.Categories {
		b[cat] = nil
	}
	return b
}

// Add appends a classified file to its category bucket.
func (b Buckets) Add(mf domain.MappedFile) {
	b[mf.Category] = append(b[mf.Category], mf)
}

// Sort orders every bucket deterministically: plans and lots by extracted
// ordinal ascending with missing ordinals last, every other category by
// lower-cased name. After sorting, input order no longer matters.
func (b Buckets) Sort() {
	for cat, files := range b {
		switch cat {
		case domain.CategoryPlan, domain.CategoryLot:
			sort.SliceStable(files, func(i, j int) bool {
				return ordinalOrLast(files[i]) < ordinalOrLast(files[j])
			})
		default:
			sort.SliceStable(files, func(i, j int) bool {
				return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
			})
		}
	}
}

func ordinalOrLast(mf domain.MappedFile) int {
	if mf.Ordinal == nil {
		return 999
	}
	return *mf.Ordinal
}

// ClassifyAll normalises and classifies a batch of raw listing rows into
// sorted buckets. Rows without an identity are skipped with a warning and
// counted; alias-gated rows are dropped silently.
func (c *Classifier) ClassifyAll(entries []domain.RawFileEntry) (Buckets, int) {
	buckets := NewBuckets()
	skipped := 0

	for _, entry := range entries {
		rec, err := entry.Normalize()
		if err != nil {
			logger.Warn("Skipping file without id: %q", entry.DisplayName())
			skipped++
			continue
		}
		mf := c.Classify(rec)
		if mf == nil {
			continue
		}
		buckets.Add(*mf)
		if mf.Ordinal != nil {
			logger.Info("Mapped: %s -> %s #%d", mf.Name, mf.Category, *mf.Ordinal)
		} else {
			logger.Info("Mapped: %s -> %s", mf.Name, mf.Category)
		}
	}

	buckets.Sort()
	return buckets, skipped
}
