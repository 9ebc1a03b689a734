// Package types provides type definitions for structured data used throughout the jobscout system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ScrapedPosting represents one job posting as delivered by the external
// scraper. Field names follow the scraper's camelCase wire format.
type ScrapedPosting struct {
	CompanyName    string `json:"companyName" validate:"required,min=1"`
	JobTitle       string `json:"jobTitle" validate:"required,min=1"`
	JobLocation    string `json:"jobLocation,omitempty"`
	JobType        string `json:"jobType,omitempty"`
	JobSalary      string `json:"jobSalary,omitempty"`
	Deadline       string `json:"deadline,omitempty"`
	URL            string `json:"url,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`
	JobDescription string `json:"jobDescription,omitempty"`
	CompanyType    string `json:"companyType,omitempty"`
	ScrapedAt      string `json:"scrapedAt,omitempty"`
}

// Validate validates the ScrapedPosting using the validator.
func (p *ScrapedPosting) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return &ValidationError{Field: firstFailedField(err), Message: err.Error()}
	}
	return nil
}

func firstFailedField(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}

// Posting represents a stored job posting. Optional fields are always
// plain strings: the store substitutes "" for NULL on read so callers get
// a uniform shape.
type Posting struct {
	ID             int64     `json:"id"`
	CompanyName    string    `json:"companyName"`
	JobTitle       string    `json:"jobTitle"`
	JobLocation    string    `json:"jobLocation"`
	JobType        string    `json:"jobType"`
	JobSalary      string    `json:"jobSalary"`
	Deadline       string    `json:"deadline"`
	EmploymentType string    `json:"employmentType"`
	URL            string    `json:"url"`
	CompanyType    string    `json:"companyType"`
	JobDescription string    `json:"jobDescription"`
	ScrapedAt      time.Time `json:"scrapedAt"`
}

// ValidationError indicates a posting is missing a required field and must
// be excluded from scoring rather than scored.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return "validation error: " + e.Field + " - " + e.Message
	}
	return "validation error: " + e.Field
}
