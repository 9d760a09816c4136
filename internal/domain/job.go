package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Defaults applied to a nested write when the caller leaves them blank.
const (
	DefaultSalaryCurrency    = "INR"
	DefaultSalaryType        = "per year"
	DefaultApplicationMethod = "website"
)

// Enumerations accepted by the posting form. Stored as free strings.
var (
	SalaryTypes        = []string{"per year", "per month", "per hour"}
	ApplicationMethods = []string{"website", "email", "in-person"}
)

// Experience levels understood by the listing filter.
const (
	ExperienceFresher     = "Fresher"
	ExperienceExperienced = "Experienced"
)

type Job struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	CompanyName        string    `json:"companyName"`
	CompanyWebsite     *string   `json:"companyWebsite"`
	CompanyDescription *string   `json:"companyDescription"`
	ContactName        *string   `json:"contactName"`
	ContactEmail       *string   `json:"contactEmail"`
	ContactPhone       *string   `json:"contactPhone"`
	Description        *string   `json:"description"`
	Locations          *string   `json:"locations"`
	Industry           *string   `json:"industry"`
	WorkplaceType      *string   `json:"workplaceType"`
	OpportunityType    *string   `json:"opportunityType"`
	IsOpen             bool      `json:"isOpen"`
	PostedAt           time.Time `json:"postedAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	Salary       *Salary       `json:"salary"`
	Requirements *Requirements `json:"requirements"`
}

// Salary is owned 1:1 by a Job and never exists on its own.
type Salary struct {
	ID        int64    `json:"id"`
	JobID     int64    `json:"jobId"`
	Currency  string   `json:"currency"`
	Type      string   `json:"type"`
	MinAmount *float64 `json:"minAmount"`
	MaxAmount *float64 `json:"maxAmount"`
}

// Requirements is owned 1:1 by a Job and never exists on its own.
type Requirements struct {
	ID                         int64      `json:"id"`
	JobID                      int64      `json:"jobId"`
	Skills                     *string    `json:"skills"`
	MinExperience              *int       `json:"minExperience"`
	MaxExperience              *int       `json:"maxExperience"`
	Education                  *string    `json:"education"`
	ApplicationDeadline        *time.Time `json:"applicationDeadline"`
	ApplicationMethod          string     `json:"applicationMethod"`
	ApplicationEmail           *string    `json:"applicationEmail"`
	ApplicationURL             *string    `json:"applicationUrl"`
	ApplicationLink            string     `json:"applicationLink"`
	ApplicationInPersonDetails *string    `json:"applicationInPersonDetails"`
}

// JobInput is the flattened field set submitted by the posting form.
// Numeric and date fields are already parsed; nil means "not provided".
type JobInput struct {
	Title                      string
	CompanyName                string
	CompanyWebsite             *string
	CompanyDescription         *string
	ContactName                *string
	ContactEmail               *string
	ContactPhone               *string
	Description                *string
	Locations                  *string
	Industry                   *string
	WorkplaceType              *string
	OpportunityType            *string
	IsOpen                     *bool
	SalaryCurrency             string
	SalaryType                 string
	SalaryMin                  *float64
	SalaryMax                  *float64
	RequiredSkills             *string
	MinExperience              *int
	MaxExperience              *int
	Education                  *string
	Deadline                   *time.Time
	ApplicationMethod          string
	ApplicationEmail           *string
	ApplicationURL             *string
	ApplicationLink            string
	ApplicationInPersonDetails *string
}

// JobListParams carries the optional listing filters. Zero values mean
// "no restriction".
type JobListParams struct {
	ShowOpenOnly     string
	OpportunityTypes []string
	Locations        string
	Industry         string
	WorkplaceTypes   []string
	Search           string
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryCurrency   string
	SalaryType       string
	Skills           []string
	Experience       string
}

type JobRepository interface {
	// Create inserts the job with its salary and requirements in one
	// transaction and fills in the generated ids and timestamps.
	Create(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, id int64) (*Job, error)
	FindMany(ctx context.Context, where Predicate) ([]Job, error)
	// Update replaces the job and both owned records in one transaction.
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, in *JobInput) (*Job, error)
	UpdateJob(ctx context.Context, id int64, in *JobInput) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
