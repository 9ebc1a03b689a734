package matching

import (
	"strings"

	"github.com/yeonwoo/jobscout/internal/types"
)

// Per-criterion score caps. Bonuses are added after capping and the total
// is not clamped, so a strong posting can exceed 100.
const (
	roleFitCap   = 40
	skillFitCap  = 20
	expFitCap    = 15
	locationCap  = 10
	companyCap   = 15
	applyCutoff  = 70
	topRolePts   = 10
	secondaryPts = 8

	mastersBonus  = 5
	salaryBonus   = 3
	industryBonus = 3
)

// Neutral defaults applied when the source field is absent. Absence is not
// penalized as a worst case.
const (
	expNeutral     = 10
	companyNeutral = 8
	locationAbsent = 0
)

// roleFit scores keyword hits in title+description against the role
// keyword sets, capped at 40.
func roleFit(text string, profile *types.CandidateProfile) (int, []string) {
	top := MatchKeywords(text, profile.TopRoleKeywords)
	secondary := MatchKeywords(text, profile.SecondaryRoleKeywords)

	score := len(top)*topRolePts + len(secondary)*secondaryPts
	if score > roleFitCap {
		score = roleFitCap
	}
	return score, append(top, secondary...)
}

// skillFit scores skill-tier keyword hits weighted per tier, capped at 20.
func skillFit(text string, profile *types.CandidateProfile) (int, []string) {
	score := 0
	var matched []string
	for _, tier := range profile.SkillTiers {
		hits := MatchKeywords(text, tier.Keywords)
		score += len(hits) * tier.Points
		matched = append(matched, hits...)
	}
	if score > skillFitCap {
		score = skillFitCap
	}
	return score, matched
}

// experienceFit buckets the free-text experience requirement.
// Absent or unparseable text gets the neutral default.
func experienceFit(jobType string) (score int, defaulted bool) {
	t := strings.TrimSpace(strings.ToLower(jobType))
	if t == "" {
		return expNeutral, true
	}

	switch {
	case strings.Contains(t, "신입"),
		strings.Contains(t, "경력무관"),
		strings.Contains(t, "경력 무관"),
		strings.Contains(t, "entry"):
		return expFitCap, false
	case strings.Contains(t, "석사"):
		// Master's-preferred and master's-entry roles fit the candidate's
		// research background.
		return expFitCap, false
	}

	years, ok := parseRequiredYears(t)
	if !ok {
		return expNeutral, true
	}
	if years <= 2 {
		return 12, false
	}
	return 0, false
}

// parseRequiredYears extracts the minimum years of experience from text
// like "경력 3년 이상", "1~2년", "경력 5년". For a range the lower bound is
// used: a 1-2 year posting is open to the candidate's two years.
func parseRequiredYears(t string) (int, bool) {
	idx := strings.Index(t, "년")
	if idx < 0 {
		return 0, false
	}

	// Walk backwards over the digits immediately before 년.
	end := idx
	start := end
	for start > 0 && t[start-1] >= '0' && t[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	years := 0
	for i := start; i < end; i++ {
		years = years*10 + int(t[i]-'0')
	}

	// Range like 1~2년 or 1-2년: take the lower bound.
	if start >= 2 && (t[start-1] == '~' || t[start-1] == '-') {
		lowEnd := start - 1
		lowStart := lowEnd
		for lowStart > 0 && t[lowStart-1] >= '0' && t[lowStart-1] <= '9' {
			lowStart--
		}
		if lowStart < lowEnd {
			low := 0
			for i := lowStart; i < lowEnd; i++ {
				low = low*10 + int(t[i]-'0')
			}
			years = low
		}
	}
	return years, true
}

// locationFit buckets the work location. Subregion matches (the candidate's
// home area in northern Gyeonggi, northern Seoul) are checked before the
// general Seoul/Gyeonggi buckets so "경기도 양주시" scores as home-area.
func locationFit(location string, profile *types.CandidateProfile) (score int, defaulted bool) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return locationAbsent, true
	}

	switch {
	case anyContains(loc, "재택", "원격", "하이브리드", "remote", "hybrid"):
		return locationCap, false
	case anyContains(loc, profile.HomeAreaTerms...):
		return 7, false
	case anyContains(loc, profile.NorthSeoulTerms...):
		return 7, false
	case strings.Contains(loc, "서울"):
		return locationCap, false
	case strings.Contains(loc, "경기"):
		return locationCap, false
	case strings.Contains(loc, "인천"):
		return 5, false
	}
	return 2, false
}

func anyContains(s string, terms ...string) bool {
	for _, term := range terms {
		if ContainsKeyword(s, term) {
			return true
		}
	}
	return false
}

// companySizeClass is the inferred company tier from free-text companyType.
type companySizeClass int

const (
	sizeUnknown companySizeClass = iota
	sizeLarge
	sizeMid
	sizePublic
	sizeStartup
	sizeSmall
)

func classifyCompany(companyType string) companySizeClass {
	t := strings.ToLower(companyType)
	switch {
	case t == "":
		return sizeUnknown
	case strings.Contains(t, "대기업"):
		return sizeLarge
	case strings.Contains(t, "중견"):
		return sizeMid
	case anyContains(t, "공기업", "공공", "공사"):
		return sizePublic
	case anyContains(t, "스타트업", "startup"):
		return sizeStartup
	case strings.Contains(t, "중소"):
		return sizeSmall
	}
	return sizeUnknown
}

// companyFit scores the size tier crossed with interest-industry match.
// Unknown size gets the neutral default.
func companyFit(companyType string, interestIndustry bool) (score int, defaulted bool) {
	switch classifyCompany(companyType) {
	case sizeLarge:
		if interestIndustry {
			return companyCap, false
		}
		return 12, false
	case sizeMid:
		if interestIndustry {
			return 13, false
		}
		return 10, false
	case sizePublic:
		return 12, false
	case sizeStartup:
		if interestIndustry {
			return 8, false
		}
		return 3, false
	case sizeSmall:
		return 3, false
	}
	return companyNeutral, true
}

// matchIndustry returns the first interest industry whose keywords appear
// in text, in a fixed iteration order for determinism.
func matchIndustry(text string, profile *types.CandidateProfile) string {
	for _, name := range []string{"finance", "defense", "gaming", "ai"} {
		if anyContains(text, profile.InterestIndustries[name]...) {
			return name
		}
	}
	return ""
}

// mastersSignal reports an explicit AI-research or master's-preferred
// mention.
func mastersSignal(text string, profile *types.CandidateProfile) bool {
	return anyContains(text, profile.MastersSignals...)
}
