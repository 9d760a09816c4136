package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const msgJobNotFound = "Job not found"

type jobUsecase struct {
	jobRepo domain.JobRepository
	now     func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context, params domain.JobListParams) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FindMany(ctx, BuildJobFilter(params))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, in *domain.JobInput) (*domain.Job, error) {
	if err := validateJobInput(in); err != nil {
		return nil, err
	}

	job := buildJob(in)
	job.IsOpen = true
	if in.IsOpen != nil {
		job.IsOpen = *in.IsOpen
	}
	job.PostedAt = u.timestamp()
	job.UpdatedAt = job.PostedAt

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// UpdateJob replaces the job and both owned records. Blank currency, salary
// type and application method fall back to the same defaults as on create;
// an omitted isOpen keeps the stored value.
func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, in *domain.JobInput) (*domain.Job, error) {
	if err := validateJobInput(in); err != nil {
		return nil, err
	}

	current, err := u.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	job := buildJob(in)
	job.ID = id
	job.IsOpen = current.IsOpen
	if in.IsOpen != nil {
		job.IsOpen = *in.IsOpen
	}
	job.PostedAt = current.PostedAt
	job.UpdatedAt = u.timestamp()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, mapRepoError(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	if _, err := u.jobRepo.FindByID(ctx, id); err != nil {
		return mapRepoError(err)
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// timestamp is truncated to the microsecond precision of TIMESTAMPTZ so the
// value returned on write matches what a later read returns.
func (u *jobUsecase) timestamp() time.Time {
	return u.now().UTC().Truncate(time.Microsecond)
}

func mapRepoError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msgJobNotFound)
	}
	return apperror.Internal(err)
}

// validateJobInput checks the business rules that binding cannot express.
// The application link is checked first so its absence is always the
// reported error.
func validateJobInput(in *domain.JobInput) error {
	if in == nil || strings.TrimSpace(in.ApplicationLink) == "" {
		return apperror.BadRequest("Application link is required")
	}
	if isNegative(in.SalaryMin) || isNegative(in.SalaryMax) {
		return apperror.BadRequest("Salary amounts cannot be negative")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}
	if (in.MinExperience != nil && *in.MinExperience < 0) || (in.MaxExperience != nil && *in.MaxExperience < 0) {
		return apperror.BadRequest("Experience cannot be negative")
	}
	if in.MinExperience != nil && in.MaxExperience != nil && *in.MinExperience > *in.MaxExperience {
		return apperror.BadRequest("Minimum experience cannot be greater than maximum experience")
	}
	return nil
}

func isNegative(f *float64) bool {
	return f != nil && *f < 0
}

func buildJob(in *domain.JobInput) *domain.Job {
	return &domain.Job{
		Title:              in.Title,
		CompanyName:        in.CompanyName,
		CompanyWebsite:     in.CompanyWebsite,
		CompanyDescription: in.CompanyDescription,
		ContactName:        in.ContactName,
		ContactEmail:       in.ContactEmail,
		ContactPhone:       in.ContactPhone,
		Description:        in.Description,
		Locations:          in.Locations,
		Industry:           in.Industry,
		WorkplaceType:      in.WorkplaceType,
		OpportunityType:    in.OpportunityType,
		Salary: &domain.Salary{
			Currency:  orDefault(in.SalaryCurrency, domain.DefaultSalaryCurrency),
			Type:      orDefault(in.SalaryType, domain.DefaultSalaryType),
			MinAmount: in.SalaryMin,
			MaxAmount: in.SalaryMax,
		},
		Requirements: &domain.Requirements{
			Skills:                     in.RequiredSkills,
			MinExperience:              in.MinExperience,
			MaxExperience:              in.MaxExperience,
			Education:                  in.Education,
			ApplicationDeadline:        in.Deadline,
			ApplicationMethod:          orDefault(in.ApplicationMethod, domain.DefaultApplicationMethod),
			ApplicationEmail:           in.ApplicationEmail,
			ApplicationURL:             in.ApplicationURL,
			ApplicationLink:            strings.TrimSpace(in.ApplicationLink),
			ApplicationInPersonDetails: in.ApplicationInPersonDetails,
		},
	}
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}
