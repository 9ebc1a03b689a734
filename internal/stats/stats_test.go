package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeonwoo/jobscout/internal/types"
)

func TestBuild_EmptyInput(t *testing.T) {
	result := Build(nil)

	assert.Empty(t, result.CompanyCounts)
	assert.Empty(t, result.JobTypeCounts)
	assert.Empty(t, result.EmploymentTypeCounts)
	assert.NotNil(t, result.TopCompanies)
	assert.Empty(t, result.TopCompanies)
}

func TestBuild_CountsPerCompany(t *testing.T) {
	postings := []types.Posting{
		{CompanyName: "네이버", JobType: "신입", EmploymentType: "정규직"},
		{CompanyName: "네이버", JobType: "경력 3년", EmploymentType: "정규직"},
		{CompanyName: "카카오", JobType: "신입", EmploymentType: "계약직"},
	}

	result := Build(postings)

	assert.Equal(t, 2, result.CompanyCounts["네이버"])
	assert.Equal(t, 1, result.CompanyCounts["카카오"])
	assert.Equal(t, 2, result.JobTypeCounts["신입"])
	assert.Equal(t, 2, result.EmploymentTypeCounts["정규직"])
	assert.Equal(t, 1, result.EmploymentTypeCounts["계약직"])
}

func TestBuild_MissingFieldsUseUnspecifiedBucket(t *testing.T) {
	postings := []types.Posting{
		{CompanyName: "스타트업A"},
		{CompanyName: "스타트업B", JobType: "신입"},
	}

	result := Build(postings)

	assert.Equal(t, 2, result.EmploymentTypeCounts["명시되지 않음"])
	assert.Equal(t, 1, result.JobTypeCounts["명시되지 않음"])
	assert.Equal(t, 1, result.JobTypeCounts["신입"])
}

func TestBuild_TopCompaniesSortedByCount(t *testing.T) {
	postings := []types.Posting{
		{CompanyName: "A"}, {CompanyName: "B"}, {CompanyName: "B"},
		{CompanyName: "C"}, {CompanyName: "C"}, {CompanyName: "C"},
	}

	result := Build(postings)

	assert.Equal(t, []types.CompanyCount{
		{Company: "C", Count: 3},
		{Company: "B", Count: 2},
		{Company: "A", Count: 1},
	}, result.TopCompanies)
}

func TestBuild_TopCompaniesCappedAtFive(t *testing.T) {
	var postings []types.Posting
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		postings = append(postings, types.Posting{CompanyName: name})
	}

	result := Build(postings)

	assert.Len(t, result.TopCompanies, 5)
	assert.Len(t, result.CompanyCounts, 7)
}

func TestBuild_TiesKeepFirstSeenOrder(t *testing.T) {
	postings := []types.Posting{
		{CompanyName: "둘째"}, {CompanyName: "첫째"}, {CompanyName: "첫째"},
		{CompanyName: "둘째"}, {CompanyName: "셋째"}, {CompanyName: "셋째"},
	}

	result := Build(postings)

	// All tied at 2: ordering follows first appearance in the input.
	assert.Equal(t, []types.CompanyCount{
		{Company: "둘째", Count: 2},
		{Company: "첫째", Count: 2},
		{Company: "셋째", Count: 2},
	}, result.TopCompanies)
}
