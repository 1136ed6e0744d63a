package services

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

// categoryIcons maps document categories to their display icons.
// The taxonomy is fixed, not a plugin point.
var categoryIcons = map[domain.Category]string{
	domain.CategoryPlatmap:      "🗺️",
	domain.CategoryEntitlements: "📋",
	domain.CategoryGrading:      "📐",
	domain.CategoryCompanyInfo:  "🏢",
	domain.CategoryPresentation: "📊",
	domain.CategoryMisc:         "📄",
}

const defaultIcon = "📄"

// docWhitelist is the fixed set of categories promoted to project documents,
// in output order. Misc files follow, capped by max_misc_docs.
var docWhitelist = []domain.Category{
	domain.CategoryPlatmap,
	domain.CategoryEntitlements,
	domain.CategoryGrading,
	domain.CategoryCompanyInfo,
	domain.CategoryPresentation,
}

// overridableCategories are the doc-override keys that match by category.
var overridableCategories = map[string]bool{
	string(domain.CategoryPlatmap):      true,
	string(domain.CategoryEntitlements): true,
	string(domain.CategoryGrading):      true,
	string(domain.CategoryCompanyInfo):  true,
	string(domain.CategoryPresentation): true,
	string(domain.CategoryMisc):         true,
}

// Builder turns classified buckets plus a site schema into a site structure.
// Deterministic given identical inputs: bucket order is fixed by
// Buckets.Sort and every schema map is walked in sorted key order.
type Builder struct {
	defaults domain.GlobalDefaults
	strict   bool
	printer  *message.Printer
	titler   cases.Caser
}

// NewBuilder creates a slot builder with the given run-wide defaults.
// In strict mode a site with neither lot files nor a platmap logs a warning.
func NewBuilder(defaults domain.GlobalDefaults, strict bool) *Builder {
	return &Builder{
		defaults: defaults,
		strict:   strict,
		printer:  message.NewPrinter(language.English),
		titler:   cases.Title(language.English),
	}
}

// Build assembles the site structure from sorted buckets and the schema.
func (b *Builder) Build(buckets Buckets, schema domain.SiteSchema) *domain.SiteStructure {
	structure := &domain.SiteStructure{
		SiteName:    schema.Name,
		Plans:       []domain.PlanSlot{},
		Lots:        []domain.LotSlot{},
		ProjectDocs: []domain.DocSlot{},
		Photos:      []domain.PhotoSlot{},
	}

	b.buildPlans(structure, buckets, schema)
	b.buildLots(structure, buckets, schema)
	b.buildDocs(structure, buckets, schema)
	b.applySlotOverrides(structure, schema)
	b.buildPhotos(structure, buckets)
	structure.ProjectDocs = b.applyDocOverrides(structure.ProjectDocs, schema.DocumentOverrides)
	b.mergeDefaultDocRefs(structure)

	b.logLotSummary(structure)
	return structure
}

// buildPlans adds one plan slot per plan-bucket entry carrying an ordinal,
// merging schema per-plan details over the global defaults.
func (b *Builder) buildPlans(structure *domain.SiteStructure, buckets Buckets, schema domain.SiteSchema) {
	for _, plan := range buckets[domain.CategoryPlan] {
		if plan.Ordinal == nil {
			continue
		}
		num := *plan.Ordinal
		info := schema.PlanDetails[strconv.Itoa(num)]

		bedrooms := info.Bedrooms
		if bedrooms == 0 {
			bedrooms = b.defaults.Bedrooms()
		}
		bathrooms := info.Bathrooms
		if bathrooms == 0 {
			bathrooms = b.defaults.Bathrooms()
		}
		sqft := info.Sqft
		if sqft == 0 {
			sqft = b.defaults.Sqft()
		}
		stories := info.Stories
		if stories == 0 {
			stories = 1
		}

		storyText := "Single Story"
		if stories != 1 {
			storyText = fmt.Sprintf("%d Story", stories)
		}

		structure.Plans = append(structure.Plans, domain.PlanSlot{
			ID:          fmt.Sprintf("plan-%d", num),
			Name:        fmt.Sprintf("Plan %d", num),
			Title:       fmt.Sprintf("Plan %d - %s", num, storyText),
			Description: fmt.Sprintf("%d bd • %s ba • %s sqft", bedrooms, formatBathrooms(bathrooms), b.printer.Sprintf("%d", sqft)),
			Bedrooms:    bedrooms,
			Bathrooms:   bathrooms,
			Sqft:        sqft,
			Features:    []string{},
			File:        plan.FileID,
			FileName:    plan.Name,
			Photos:      []string{},
		})
	}
}

// formatBathrooms renders a bathroom count without a trailing .0
// (2.5 stays 2.5, 2.0 becomes 2).
func formatBathrooms(n float64) string {
	if math.Mod(n, 1) != 0 {
		return fmt.Sprintf("%.1f", n)
	}
	return strconv.Itoa(int(n))
}

// buildLots fills the lots section using one of two mutually exclusive
// strategies: individual lot files when any exist, otherwise the platmap
// replicated across the expected lot count. The direct-file strategy never
// backfills missing ordinals from the platmap.
func (b *Builder) buildLots(structure *domain.SiteStructure, buckets Buckets, schema domain.SiteSchema) {
	var platmap *domain.MappedFile
	if plats := buckets[domain.CategoryPlatmap]; len(plats) > 0 {
		platmap = &plats[0]
	}

	switch {
	case len(buckets[domain.CategoryLot]) > 0:
		for _, lot := range buckets[domain.CategoryLot] {
			if lot.Ordinal == nil {
				continue
			}
			if slot := b.buildLotSlot(*lot.Ordinal, lot.FileID, lot.Name, schema, false); slot != nil {
				structure.Lots = append(structure.Lots, *slot)
			}
		}
	case platmap != nil:
		for num := 1; num <= schema.ExpectedLots(); num++ {
			if slot := b.buildLotSlot(num, platmap.FileID, platmap.Name, schema, true); slot != nil {
				structure.Lots = append(structure.Lots, *slot)
			}
		}
	case b.strict:
		logger.Warn("No lot files or platmap found; lots will be hidden in strict mode.")
	}
}

// buildLotSlot assembles one lot slot. Returns nil when the lot is dropped
// by hide_incomplete. defaultDesc controls whether a lot without detail
// parts still receives a fallback description (platmap strategy only).
func (b *Builder) buildLotSlot(num int, fileID, fileName string, schema domain.SiteSchema, defaultDesc bool) *domain.LotSlot {
	ld := schema.LotDetails[strconv.Itoa(num)]
	req := schema.Requirements()
	required := req.RequiredDocs

	available := map[domain.DocKind]bool{
		domain.DocTitleReport:    ld.HasTitleReport || hasRef(ld.DocRefs, domain.DocTitleReport),
		domain.DocGrading:        ld.HasGrading || hasRef(ld.DocRefs, domain.DocGrading),
		domain.DocPlanAssignment: ld.HasPlanAssignment || hasRef(ld.DocRefs, domain.DocPlanAssignment),
	}

	var missing []domain.DocKind
	for _, kind := range required {
		if !available[kind] {
			missing = append(missing, kind)
		}
	}

	if req.HideIncomplete && len(missing) > 0 {
		return nil
	}

	size := ld.Size
	if size == "" {
		size = "TBD"
	}

	slot := &domain.LotSlot{
		ID:       fmt.Sprintf("lot-%d", num),
		Number:   fmt.Sprintf("Lot %d", num),
		Title:    fmt.Sprintf("Lot %d", num),
		Size:     size,
		Features: []string{},
		File:     fileID,
		Name:     fileName,
		Photos:   []string{},
		Status:   ld.Status,
		APN:      ld.APN,
		Address:  ld.Address,
	}

	if page, ok := schema.LotPages[strconv.Itoa(num)]; ok {
		slot.Page = &page
	}
	if req.ShowMissing && len(missing) > 0 {
		slot.Missing = missing
	}
	if ld.DocRefs != nil {
		slot.DocRefs = make(map[domain.DocKind]string, len(ld.DocRefs))
		for k, v := range ld.DocRefs {
			slot.DocRefs[k] = v
		}
	}
	if len(required) > 0 {
		pct := int(math.Round(100 * float64(len(required)-len(missing)) / float64(len(required))))
		slot.Completeness = &pct
	}

	var parts []string
	if ld.APN != "" {
		parts = append(parts, "APN "+ld.APN)
	}
	if ld.Size != "" && ld.Size != "TBD" {
		parts = append(parts, ld.Size)
	}
	if ld.Status != "" {
		parts = append(parts, ld.Status)
	}
	if slot.Completeness != nil {
		parts = append(parts, fmt.Sprintf("%d%% complete", *slot.Completeness))
	}

	switch {
	case len(parts) > 0:
		slot.Description = strings.Join(parts, " • ")
	case defaultDesc && slot.Completeness != nil:
		slot.Description = fmt.Sprintf("%d%% complete", *slot.Completeness)
	case defaultDesc:
		slot.Description = "Documentation pending"
	}

	if ld.APN != "" {
		slot.Features = append(slot.Features, "APN "+ld.APN)
	}
	if ld.Status != "" {
		slot.Features = append(slot.Features, ld.Status)
	}

	return slot
}

func hasRef(refs map[domain.DocKind]string, kind domain.DocKind) bool {
	_, ok := refs[kind]
	return ok
}

// buildDocs promotes whitelisted categories to project documents, then up
// to max_misc_docs misc files. Document ids are "{category}-{n}" with n the
// overall sequence position; override matching relies on that format.
func (b *Builder) buildDocs(structure *domain.SiteStructure, buckets Buckets, schema domain.SiteSchema) {
	addDoc := func(cat domain.Category, mf domain.MappedFile) {
		icon, ok := categoryIcons[cat]
		if !ok {
			icon = defaultIcon
		}
		structure.ProjectDocs = append(structure.ProjectDocs, domain.DocSlot{
			ID:          fmt.Sprintf("%s-%d", cat, len(structure.ProjectDocs)+1),
			Title:       b.titleFromName(mf.Name),
			Description: mf.Description,
			File:        mf.FileID,
			Icon:        icon,
			Name:        mf.Name,
		})
	}

	for _, cat := range docWhitelist {
		for _, mf := range buckets[cat] {
			addDoc(cat, mf)
		}
	}

	miscAdded := 0
	for _, mf := range buckets[domain.CategoryMisc] {
		if b.defaults.MaxMiscDocs != nil && miscAdded >= *b.defaults.MaxMiscDocs {
			break
		}
		addDoc(domain.CategoryMisc, mf)
		miscAdded++
	}
}

// titleFromName derives a display title from a filename stem.
func (b *Builder) titleFromName(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return b.titler.String(stem)
}

// applySlotOverrides forces configured file ids into matching documents.
// A key matches any document whose id contains it, raw or with underscores
// normalised to hyphens; with no match a new override document is created.
func (b *Builder) applySlotOverrides(structure *domain.SiteStructure, schema domain.SiteSchema) {
	for _, slot := range sortedKeys(schema.Overrides) {
		fid := schema.Overrides[slot]
		hyphenated := strings.ReplaceAll(slot, "_", "-")

		matched := false
		for i := range structure.ProjectDocs {
			id := structure.ProjectDocs[i].ID
			if strings.Contains(id, slot) || strings.Contains(id, hyphenated) {
				structure.ProjectDocs[i].File = fid
				matched = true
			}
		}
		if matched {
			continue
		}

		structure.ProjectDocs = append(structure.ProjectDocs, domain.DocSlot{
			ID:          slot,
			Title:       b.titler.String(strings.ReplaceAll(slot, "-", " ")),
			Description: "Configured override",
			File:        fid,
			Icon:        defaultIcon,
			Name:        "Override",
		})
	}
}

// buildPhotos adds one photo slot per photo-bucket file with a public view
// URL and the category's generic caption.
func (b *Builder) buildPhotos(structure *domain.SiteStructure, buckets Buckets) {
	for _, mf := range buckets[domain.CategoryPhoto] {
		structure.Photos = append(structure.Photos, domain.PhotoSlot{
			ID:      mf.FileID,
			URL:     "https://drive.google.com/uc?export=view&id=" + mf.FileID,
			Caption: mf.Description,
		})
	}
}

// applyDocOverrides renames or hides project documents. Keys match by
// category prefix, or by "misc-<substring>" against name/title; when
// several keys match one document the lexicographically last wins.
func (b *Builder) applyDocOverrides(docs []domain.DocSlot, overrides map[string]domain.DocOverride) []domain.DocSlot {
	if len(overrides) == 0 {
		return docs
	}

	matches := func(d domain.DocSlot, key string) bool {
		cat, _, _ := strings.Cut(d.ID, "-")
		if overridableCategories[key] {
			return cat == key
		}
		if needle, ok := strings.CutPrefix(key, "misc-"); ok {
			needle = strings.ToLower(needle)
			return strings.Contains(strings.ToLower(d.Name), needle) ||
				strings.Contains(strings.ToLower(d.Title), needle)
		}
		return false
	}

	out := make([]domain.DocSlot, 0, len(docs))
	for _, d := range docs {
		var applied *domain.DocOverride
		for _, key := range sortedOverrideKeys(overrides) {
			if matches(d, key) {
				ov := overrides[key]
				applied = &ov
			}
		}
		if applied != nil && applied.Hide {
			continue
		}
		if applied != nil {
			if applied.Title != "" {
				d.Title = applied.Title
			}
			if applied.Description != "" {
				d.Description = applied.Description
			}
		}
		out = append(out, d)
	}
	return out
}

// mergeDefaultDocRefs picks the first document per {platmap, entitlements,
// grading} category and merges it into every lot's docRefs, with explicit
// per-lot refs taking precedence. Missing and completeness are frozen from
// lot construction: the backfilled refs are convenience links, not a
// completeness input.
func (b *Builder) mergeDefaultDocRefs(structure *domain.SiteStructure) {
	firstID := func(cat domain.Category) string {
		prefix := string(cat) + "-"
		for _, d := range structure.ProjectDocs {
			if strings.HasPrefix(d.ID, prefix) {
				return d.File
			}
		}
		return ""
	}

	defaults := make(map[domain.DocKind]string)
	for kind, cat := range map[domain.DocKind]domain.Category{
		domain.DocPlatmap:      domain.CategoryPlatmap,
		domain.DocEntitlements: domain.CategoryEntitlements,
		domain.DocGrading:      domain.CategoryGrading,
	} {
		if id := firstID(cat); id != "" {
			defaults[kind] = id
		}
	}
	if len(defaults) == 0 {
		return
	}

	for i := range structure.Lots {
		merged := make(map[domain.DocKind]string, len(defaults))
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range structure.Lots[i].DocRefs {
			merged[k] = v // explicit > default
		}
		structure.Lots[i].DocRefs = merged
	}
}

// logLotSummary emits a one-line missing-document summary per run.
func (b *Builder) logLotSummary(structure *domain.SiteStructure) {
	if len(structure.Lots) == 0 {
		return
	}
	parts := make([]string, 0, len(structure.Lots))
	for _, lot := range structure.Lots {
		if len(lot.Missing) == 0 {
			parts = append(parts, lot.Number+" (OK)")
			continue
		}
		names := make([]string, len(lot.Missing))
		for i, m := range lot.Missing {
			names[i] = string(m)
		}
		parts = append(parts, fmt.Sprintf("%s (missing: %s)", lot.Number, strings.Join(names, ",")))
	}
	logger.Info("Lots: %s", strings.Join(parts, ", "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedOverrideKeys(m map[string]domain.DocOverride) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
