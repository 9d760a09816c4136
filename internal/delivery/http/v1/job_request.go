package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/validation"
)

// NumberString accepts a JSON number, a numeric string, "" or null. The
// value is kept as text so the validator can report bad input per field.
type NumberString string

func (n *NumberString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(strings.TrimSpace(s))
	default:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return errors.New("expected a number or a numeric string")
		}
		*n = NumberString(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

func (n NumberString) toFloat() (*float64, error) {
	if n == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (n NumberString) toInt() (*int, error) {
	if n == "" {
		return nil, nil
	}
	// Experience columns are INTEGER
	i64, err := strconv.ParseInt(string(n), 10, 32)
	if err != nil {
		return nil, err
	}
	i := int(i64)
	return &i, nil
}

// JobRequest is the posting form as submitted by the frontend. Salary and
// requirement fields arrive flattened.
type JobRequest struct {
	Title              string `json:"title" binding:"max=200,no_emoji"`
	CompanyName        string `json:"companyName" binding:"max=200"`
	CompanyWebsite     string `json:"companyWebsite" binding:"max=500,http_url_or_empty"`
	CompanyDescription string `json:"companyDescription" binding:"max=5000"`
	ContactName        string `json:"contactName" binding:"max=200,valid_name"`
	ContactEmail       string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone       string `json:"contactPhone" binding:"valid_phone"`
	Description        string `json:"description" binding:"max=50000"`
	Locations          string `json:"locations" binding:"max=500"`
	Industry           string `json:"industry" binding:"max=200"`
	WorkplaceType      string `json:"workplaceType" binding:"max=50"`
	OpportunityType    string `json:"opportunityType" binding:"max=50"`
	IsOpen             *bool  `json:"isOpen"`

	SalaryCurrency string       `json:"salaryCurrency" binding:"max=10"`
	SalaryType     string       `json:"salaryType" binding:"omitempty,oneof='per year' 'per month' 'per hour'"`
	SalaryMin      NumberString `json:"salaryMin" binding:"omitempty,numeric"`
	SalaryMax      NumberString `json:"salaryMax" binding:"omitempty,numeric"`

	RequiredSkills             string       `json:"requiredSkills" binding:"max=2000"`
	MinExperience              NumberString `json:"minExperience" binding:"omitempty,number"`
	MaxExperience              NumberString `json:"maxExperience" binding:"omitempty,number"`
	Education                  string       `json:"education" binding:"max=500"`
	Deadline                   string       `json:"deadline" binding:"date_or_empty"`
	ApplicationMethod          string       `json:"applicationMethod" binding:"omitempty,oneof=website email in-person"`
	ApplicationEmail           string       `json:"applicationEmail" binding:"omitempty,email"`
	ApplicationURL             string       `json:"applicationUrl" binding:"max=1000,http_url_or_empty"`
	ApplicationLink            string       `json:"applicationLink" binding:"max=1000"`
	ApplicationInPersonDetails string       `json:"applicationInPersonDetails" binding:"max=2000"`
}

// toInput converts a validated request into the usecase input. Blank
// optional strings become nil.
func (r *JobRequest) toInput() (*domain.JobInput, error) {
	in := &domain.JobInput{
		Title:                      strings.TrimSpace(r.Title),
		CompanyName:                strings.TrimSpace(r.CompanyName),
		CompanyWebsite:             toPtr(r.CompanyWebsite),
		CompanyDescription:         toPtr(r.CompanyDescription),
		ContactName:                toPtr(r.ContactName),
		ContactEmail:               toPtr(r.ContactEmail),
		ContactPhone:               toPtr(r.ContactPhone),
		Description:                toPtr(r.Description),
		Locations:                  toPtr(r.Locations),
		Industry:                   toPtr(r.Industry),
		WorkplaceType:              toPtr(r.WorkplaceType),
		OpportunityType:            toPtr(r.OpportunityType),
		IsOpen:                     r.IsOpen,
		SalaryCurrency:             strings.TrimSpace(r.SalaryCurrency),
		SalaryType:                 r.SalaryType,
		RequiredSkills:             toPtr(r.RequiredSkills),
		Education:                  toPtr(r.Education),
		ApplicationMethod:          r.ApplicationMethod,
		ApplicationEmail:           toPtr(r.ApplicationEmail),
		ApplicationURL:             toPtr(r.ApplicationURL),
		ApplicationLink:            strings.TrimSpace(r.ApplicationLink),
		ApplicationInPersonDetails: toPtr(r.ApplicationInPersonDetails),
	}

	var err error
	if in.SalaryMin, err = r.SalaryMin.toFloat(); err != nil {
		return nil, fieldError("Minimum salary must be a number")
	}
	if in.SalaryMax, err = r.SalaryMax.toFloat(); err != nil {
		return nil, fieldError("Maximum salary must be a number")
	}
	if in.MinExperience, err = r.MinExperience.toInt(); err != nil {
		return nil, intFieldError("Minimum experience", err)
	}
	if in.MaxExperience, err = r.MaxExperience.toInt(); err != nil {
		return nil, intFieldError("Maximum experience", err)
	}
	if r.Deadline != "" {
		t, err := validation.ParseDate(r.Deadline)
		if err != nil {
			return nil, fieldError("Application deadline must be a date (YYYY-MM-DD)")
		}
		// Keep the calendar date as written, whatever the offset
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		in.Deadline = &d
	}
	return in, nil
}

// ListJobsRequest binds the listing query string. Repeatable keys map to
// slices.
type ListJobsRequest struct {
	ShowOpenOnly    string   `form:"showOpenOnly"`
	OpportunityType []string `form:"opportunityType"`
	Locations       string   `form:"locations" binding:"max=200"`
	Industry        string   `form:"industry" binding:"max=200"`
	WorkplaceType   []string `form:"workplaceType"`
	Search          string   `form:"search" binding:"max=200"`
	SalaryMin       string   `form:"salaryMin" binding:"omitempty,numeric"`
	SalaryMax       string   `form:"salaryMax" binding:"omitempty,numeric"`
	SalaryCurrency  string   `form:"salaryCurrency" binding:"max=10"`
	SalaryType      string   `form:"salaryType" binding:"omitempty,oneof='per year' 'per month' 'per hour'"`
	Skills          []string `form:"skills"`
	Experience      string   `form:"experience" binding:"omitempty,oneof=Fresher Experienced"`
}

func (r *ListJobsRequest) toParams() (domain.JobListParams, error) {
	p := domain.JobListParams{
		ShowOpenOnly:     r.ShowOpenOnly,
		OpportunityTypes: r.OpportunityType,
		Locations:        r.Locations,
		Industry:         r.Industry,
		WorkplaceTypes:   r.WorkplaceType,
		Search:           r.Search,
		SalaryCurrency:   r.SalaryCurrency,
		SalaryType:       r.SalaryType,
		Skills:           r.Skills,
		Experience:       r.Experience,
	}

	var err error
	if p.SalaryMin, err = NumberString(r.SalaryMin).toFloat(); err != nil {
		return p, fieldError("Minimum salary must be a number")
	}
	if p.SalaryMax, err = NumberString(r.SalaryMax).toFloat(); err != nil {
		return p, fieldError("Maximum salary must be a number")
	}
	return p, nil
}

type fieldError string

func intFieldError(label string, err error) fieldError {
	if errors.Is(err, strconv.ErrRange) {
		return fieldError(label + " is too large")
	}
	return fieldError(label + " must be a whole number")
}

func (e fieldError) Error() string { return string(e) }

// Helper to convert empty string to nil pointer
func toPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
