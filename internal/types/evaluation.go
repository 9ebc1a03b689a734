package types

// Tier labels the score band an evaluation falls into. Only Apply feeds
// the two-valued recommendation; the band is exposed for reporting.
type Tier string

const (
	TierStrongApply Tier = "strong_apply" // score >= 85
	TierApply       Tier = "apply"        // 70-84
	TierReview      Tier = "review"       // 55-69
	TierSkip        Tier = "skip"         // <= 54
)

// TierFor returns the tier label for a final score.
func TierFor(score int) Tier {
	switch {
	case score >= 85:
		return TierStrongApply
	case score >= 70:
		return TierApply
	case score >= 55:
		return TierReview
	default:
		return TierSkip
	}
}

// Breakdown records each rubric criterion's capped contribution to the
// final score, plus which keywords fired. It exists so reason text can be
// generated deterministically and tests can check per-criterion caps.
type Breakdown struct {
	RoleFit       int `json:"role_fit"`       // 0-40
	SkillFit      int `json:"skill_fit"`      // 0-20
	ExperienceFit int `json:"experience_fit"` // 0-15
	LocationFit   int `json:"location_fit"`   // 0-10
	CompanyFit    int `json:"company_fit"`    // 0-15
	Bonus         int `json:"bonus"`

	RoleMatches  []string `json:"role_matches,omitempty"`
	SkillMatches []string `json:"skill_matches,omitempty"`
	Industry     string   `json:"industry,omitempty"` // matched interest industry, if any

	// Criteria scored with their neutral default because the source field
	// was absent.
	Defaulted []string `json:"defaulted,omitempty"`
}

// Evaluation is the evaluator's verdict for one posting.
type Evaluation struct {
	Score     int       `json:"score"`
	Tier      Tier      `json:"tier"`
	Apply     bool      `json:"apply_yn"`
	Reason    string    `json:"reason"`
	Strength  string    `json:"strength"`
	Weakness  string    `json:"weakness"`
	Breakdown Breakdown `json:"breakdown"`
}
