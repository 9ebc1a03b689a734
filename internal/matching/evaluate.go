package matching

import (
	"strings"

	"github.com/yeonwoo/jobscout/internal/types"
)

// Evaluate scores one posting against the candidate profile. It is a pure
// function of its inputs. Postings missing a required field are not scored:
// a *types.ValidationError is returned instead of an evaluation.
func Evaluate(p *types.Posting, profile *types.CandidateProfile) (*types.Evaluation, error) {
	if strings.TrimSpace(p.CompanyName) == "" {
		return nil, &types.ValidationError{Field: "companyName", Message: "required"}
	}
	if strings.TrimSpace(p.JobTitle) == "" {
		return nil, &types.ValidationError{Field: "jobTitle", Message: "required"}
	}

	roleText := p.JobTitle + "\n" + p.JobDescription
	industryText := p.CompanyName + "\n" + roleText

	var b types.Breakdown
	var defaulted bool

	b.RoleFit, b.RoleMatches = roleFit(roleText, profile)
	b.SkillFit, b.SkillMatches = skillFit(roleText, profile)

	b.ExperienceFit, defaulted = experienceFit(p.JobType)
	if defaulted {
		b.Defaulted = append(b.Defaulted, "experience")
	}

	b.LocationFit, defaulted = locationFit(p.JobLocation, profile)
	if defaulted {
		b.Defaulted = append(b.Defaulted, "location")
	}

	b.Industry = matchIndustry(industryText, profile)
	b.CompanyFit, defaulted = companyFit(p.CompanyType, b.Industry != "")
	if defaulted {
		b.Defaulted = append(b.Defaulted, "company")
	}

	if mastersSignal(roleText, profile) {
		b.Bonus += mastersBonus
	}
	if amount, ok := ParseSalary(p.JobSalary); ok && amount >= profile.SalaryFloor {
		b.Bonus += salaryBonus
	}
	if b.Industry != "" {
		b.Bonus += industryBonus
	}

	score := b.RoleFit + b.SkillFit + b.ExperienceFit + b.LocationFit + b.CompanyFit + b.Bonus

	ev := &types.Evaluation{
		Score:     score,
		Tier:      types.TierFor(score),
		Apply:     score >= applyCutoff,
		Breakdown: b,
	}
	ev.Reason = buildReason(ev)
	ev.Strength = buildStrength(ev)
	ev.Weakness = buildWeakness(ev)
	return ev, nil
}
