package matching

import (
	"fmt"
	"strings"

	"github.com/yeonwoo/jobscout/internal/types"
)

// Explanation text is generated from which rubric rules fired, so the same
// posting always yields the same reason/strength/weakness strings.

const maxListedKeywords = 3

func buildReason(ev *types.Evaluation) string {
	b := ev.Breakdown
	var clauses []string

	if n := len(b.RoleMatches); n > 0 {
		clauses = append(clauses, fmt.Sprintf("matched %d role keywords (%s)", n, listKeywords(b.RoleMatches)))
	} else {
		clauses = append(clauses, "no role keyword matches")
	}

	switch {
	case b.ExperienceFit == expFitCap:
		clauses = append(clauses, "experience requirement fits")
	case b.ExperienceFit == 0:
		clauses = append(clauses, "experience requirement exceeds candidate's background")
	}

	switch {
	case b.LocationFit == locationCap:
		clauses = append(clauses, "commutable or remote location")
	case b.LocationFit == 7:
		clauses = append(clauses, "location near home area")
	}

	if b.Industry != "" {
		clauses = append(clauses, fmt.Sprintf("interest industry (%s)", b.Industry))
	}

	return strings.Join(clauses, "; ")
}

func buildStrength(ev *types.Evaluation) string {
	b := ev.Breakdown
	var parts []string

	if len(b.SkillMatches) > 0 {
		parts = append(parts, fmt.Sprintf("direct skill overlap: %s", listKeywords(b.SkillMatches)))
	}
	if len(b.RoleMatches) > 0 {
		parts = append(parts, fmt.Sprintf("role aligns with candidate's target domains (%s)", listKeywords(b.RoleMatches)))
	}
	if b.Bonus >= mastersBonus {
		parts = append(parts, "posting values a master's research background")
	}

	if len(parts) == 0 {
		return "general software development background applies"
	}
	return strings.Join(parts, "; ")
}

func buildWeakness(ev *types.Evaluation) string {
	b := ev.Breakdown
	var parts []string

	if b.RoleFit == 0 {
		parts = append(parts, "role focus is outside the candidate's target domains")
	}
	if b.SkillFit == 0 {
		parts = append(parts, "no matching skill keywords in the posting")
	}
	if b.ExperienceFit == 0 {
		parts = append(parts, "requires more years of experience than the candidate has")
	}
	if b.LocationFit > 0 && b.LocationFit <= 2 {
		parts = append(parts, "workplace is far from the candidate's home area")
	}
	if len(b.Defaulted) > 0 {
		parts = append(parts, fmt.Sprintf("missing data scored neutrally: %s", strings.Join(b.Defaulted, ", ")))
	}

	if len(parts) == 0 {
		return "no significant gaps identified"
	}
	return strings.Join(parts, "; ")
}

// listKeywords renders up to maxListedKeywords entries, noting how many
// more matched.
func listKeywords(keywords []string) string {
	if len(keywords) <= maxListedKeywords {
		return strings.Join(keywords, ", ")
	}
	shown := strings.Join(keywords[:maxListedKeywords], ", ")
	return fmt.Sprintf("%s +%d more", shown, len(keywords)-maxListedKeywords)
}
