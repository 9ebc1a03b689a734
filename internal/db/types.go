package db

// Persisted column mapping. External camelCase fields map onto the
// job_postings table exactly as follows; any replacement persistence layer
// must preserve these names:
//
//	companyName    -> company_name
//	jobTitle       -> job_title
//	jobLocation    -> job_location
//	jobType        -> job_type
//	jobSalary      -> job_salary
//	deadline       -> deadline
//	employmentType -> employment_type
//	url            -> job_url (unique)
//	companyType    -> company_type
//	jobDescription -> job_description
//	scrapedAt      -> scraped_at
//
// plus the match columns: match_score, match_reason, strength, weakness,
// is_recommended, is_gpt_checked, is_applied.

// RecommendedPosting is a match result joined with the posting fields a
// report needs to display it.
type RecommendedPosting struct {
	ID       int64  `json:"id"`
	Score    int    `json:"score"`
	Reason   string `json:"reason"`
	Strength string `json:"strength"`
	Weakness string `json:"weakness"`
	ApplyYN  bool   `json:"apply_yn"`

	CompanyName string `json:"companyName"`
	JobTitle    string `json:"jobTitle"`
	JobLocation string `json:"jobLocation"`
	CompanyType string `json:"companyType"`
	URL         string `json:"url"`
}
