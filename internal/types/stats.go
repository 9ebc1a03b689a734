package types

// CompanyCount is one (company, postings) pair in the top-companies list.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// Statistics holds frequency aggregates over a set of postings.
type Statistics struct {
	CompanyCounts        map[string]int `json:"companyCounts"`
	JobTypeCounts        map[string]int `json:"jobTypeCounts"`
	EmploymentTypeCounts map[string]int `json:"employmentTypeCounts"`
	TopCompanies         []CompanyCount `json:"topCompanies"`
}
