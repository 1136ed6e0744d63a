package services

import (
	"sort"
	"strings"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
)

// FindDuplicates groups records by content key and returns only the keys
// shared by two or more records. Singleton keys are never duplicates. The
// same equality notion (checksum, else name|size) is used everywhere so
// audits and generation stay consistent.
func FindDuplicates(records []domain.FileRecord) map[string][]domain.FileRecord {
	groups := make(map[string][]domain.FileRecord)
	for _, rec := range records {
		key := rec.ContentKey()
		groups[key] = append(groups[key], rec)
	}

	for key, group := range groups {
		if len(group) < 2 {
			delete(groups, key)
		}
	}
	return groups
}

// FindUniqueInLocation computes the symmetric set difference over content
// keys between two listings: files only present in the first, and files
// only present in the second. When a listing repeats a key the last record
// represents it. Output preserves first-seen key order.
func FindUniqueInLocation(rootRecords, otherRecords []domain.FileRecord) (onlyInRoot, onlyInOther []domain.FileRecord) {
	rootMap, rootOrder := keyedByContent(rootRecords)
	otherMap, otherOrder := keyedByContent(otherRecords)

	for _, key := range rootOrder {
		if _, ok := otherMap[key]; !ok {
			onlyInRoot = append(onlyInRoot, rootMap[key])
		}
	}
	for _, key := range otherOrder {
		if _, ok := rootMap[key]; !ok {
			onlyInOther = append(onlyInOther, otherMap[key])
		}
	}
	return onlyInRoot, onlyInOther
}

func keyedByContent(records []domain.FileRecord) (map[string]domain.FileRecord, []string) {
	byKey := make(map[string]domain.FileRecord, len(records))
	var order []string
	for _, rec := range records {
		key := rec.ContentKey()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = rec
	}
	return byKey, order
}

// DedupeByName collapses a listing to one record per lower-cased filename,
// keeping the longest name variant (usually the real one), sorted by name.
// Used before fuzzy matching so a file shared between folders is offered
// once.
func DedupeByName(records []domain.FileRecord) []domain.FileRecord {
	byName := make(map[string]domain.FileRecord, len(records))
	for _, rec := range records {
		key := strings.ToLower(rec.Name)
		if prev, ok := byName[key]; !ok || len(rec.Name) > len(prev.Name) {
			byName[key] = rec
		}
	}

	out := make([]domain.FileRecord, 0, len(byName))
	for _, rec := range byName {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
