// Package stats computes frequency aggregates over scraped postings.
package stats

import (
	"sort"

	"github.com/yeonwoo/jobscout/internal/types"
)

// unspecified is the sentinel bucket for postings that omit a field.
const unspecified = "명시되지 않음"

// topCompanyLimit caps the topCompanies list.
const topCompanyLimit = 5

// Build aggregates postings into per-company, per-experience-requirement
// and per-employment-type counts. Pure function, no I/O. Ties in the
// top-companies ranking keep first-encounter order.
func Build(postings []types.Posting) types.Statistics {
	s := types.Statistics{
		CompanyCounts:        make(map[string]int),
		JobTypeCounts:        make(map[string]int),
		EmploymentTypeCounts: make(map[string]int),
		TopCompanies:         []types.CompanyCount{},
	}

	var companyOrder []string
	for _, p := range postings {
		if _, seen := s.CompanyCounts[p.CompanyName]; !seen {
			companyOrder = append(companyOrder, p.CompanyName)
		}
		s.CompanyCounts[p.CompanyName]++

		jobType := p.JobType
		if jobType == "" {
			jobType = unspecified
		}
		s.JobTypeCounts[jobType]++

		empType := p.EmploymentType
		if empType == "" {
			empType = unspecified
		}
		s.EmploymentTypeCounts[empType]++
	}

	top := make([]types.CompanyCount, 0, len(companyOrder))
	for _, company := range companyOrder {
		top = append(top, types.CompanyCount{Company: company, Count: s.CompanyCounts[company]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > topCompanyLimit {
		top = top[:topCompanyLimit]
	}
	s.TopCompanies = top

	return s
}
