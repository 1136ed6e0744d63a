package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

var (
	planTargetRe = regexp.MustCompile(`\bplan\s*(\d+)\b`)
	lotTargetRe  = regexp.MustCompile(`\blot\s*(\d+)\b`)
)

// ScoreMatch scores how well a filename matches a target slot title.
// Higher is better; zero means no match. All bonuses are independent and
// additive on top of the per-token base score.
func ScoreMatch(target, filename string) int {
	t := NormalizeFilename(target)
	n := NormalizeFilename(filename)
	score := 0

	for _, tok := range strings.Fields(t) {
		if strings.Contains(n, tok) {
			score += 2
		}
	}

	if strings.Contains(t, "presentation") && strings.Contains(n, "presentation") {
		score += 10
	}

	// "Plan 3" style targets: allow words between "plan" and the number in
	// the candidate ("Plan 3" matches "Plan No. 3 Elevations").
	if m := planTargetRe.FindStringSubmatch(t); m != nil {
		planRe := regexp.MustCompile(fmt.Sprintf(`\bplan\b.*\b%s\b`, m[1]))
		if planRe.MatchString(n) {
			score += 10
			logger.Debug("plan %s match: %q ~ %q", m[1], target, filename)
		}
	}

	// "Lot 7" style targets, tolerating leading zeros in the candidate.
	if m := lotTargetRe.FindStringSubmatch(t); m != nil {
		if num := strings.TrimLeft(m[1], "0"); num != "" {
			lotRe := regexp.MustCompile(fmt.Sprintf(`\blot[^0-9]*0*%s\b`, num))
			if lotRe.MatchString(n) {
				score += 5
			}
		}
	}

	if mentionsPlatmap(t) && mentionsPlatmap(n) {
		score += 5
	}

	if strings.Contains(t, "entitlement") && strings.Contains(n, "entitlement") {
		score += 8
	}

	if (strings.Contains(t, "llc") || strings.Contains(t, "company")) && strings.Contains(n, "llc") {
		score += 8
	}

	if strings.Contains(t, "grading") && strings.Contains(n, "grading") {
		score += 8
	}

	if (strings.Contains(t, "court") || strings.Contains(t, "verella")) &&
		(strings.Contains(n, "court") || strings.Contains(n, "verella")) {
		score += 8
	}

	return score
}

// mentionsPlatmap reports whether a normalised string references tentative
// or plat-map terminology, accepting the common "tenative" misspelling.
func mentionsPlatmap(s string) bool {
	return strings.Contains(s, "tentative") ||
		strings.Contains(s, "tenative") ||
		strings.Contains(s, "platmap") ||
		(strings.Contains(s, "plat") && strings.Contains(s, "map"))
}

// BestMatch returns the pool candidate with the highest score for the
// target title, or nil when no candidate scores above zero. Ties go to the
// earlier candidate.
func BestMatch(target string, pool []domain.FileRecord) *domain.FileRecord {
	bestScore := 0
	var best *domain.FileRecord
	for i := range pool {
		if sc := ScoreMatch(target, pool[i].Name); sc > bestScore {
			bestScore = sc
			best = &pool[i]
		}
	}
	return best
}
