package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const selectJobWithRelations = `
	SELECT
		j.id, j.title, j.company_name, j.company_website, j.company_description,
		j.contact_name, j.contact_email, j.contact_phone, j.description,
		j.locations, j.industry, j.workplace_type, j.opportunity_type,
		j.is_open, j.posted_at, j.updated_at,
		s.id, s.job_id, s.currency, s.type, s.min_amount, s.max_amount,
		r.id, r.job_id, r.skills, r.min_experience, r.max_experience, r.education,
		r.application_deadline, r.application_method, r.application_email,
		r.application_url, r.application_link, r.application_in_person_details
	FROM jobs j
	JOIN salaries s ON s.job_id = j.id
	JOIN requirements r ON r.job_id = j.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	job := domain.Job{Salary: &domain.Salary{}, Requirements: &domain.Requirements{}}
	s, r := job.Salary, job.Requirements
	err := row.Scan(
		&job.ID, &job.Title, &job.CompanyName, &job.CompanyWebsite, &job.CompanyDescription,
		&job.ContactName, &job.ContactEmail, &job.ContactPhone, &job.Description,
		&job.Locations, &job.Industry, &job.WorkplaceType, &job.OpportunityType,
		&job.IsOpen, &job.PostedAt, &job.UpdatedAt,
		&s.ID, &s.JobID, &s.Currency, &s.Type, &s.MinAmount, &s.MaxAmount,
		&r.ID, &r.JobID, &r.Skills, &r.MinExperience, &r.MaxExperience, &r.Education,
		&r.ApplicationDeadline, &r.ApplicationMethod, &r.ApplicationEmail,
		&r.ApplicationURL, &r.ApplicationLink, &r.ApplicationInPersonDetails,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.Salary == nil || job.Requirements == nil {
		return errors.New("job must carry salary and requirements")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO jobs (title, company_name, company_website, company_description,
			contact_name, contact_email, contact_phone, description, locations, industry,
			workplace_type, opportunity_type, is_open, posted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		job.Title, job.CompanyName, job.CompanyWebsite, job.CompanyDescription,
		job.ContactName, job.ContactEmail, job.ContactPhone, job.Description, job.Locations, job.Industry,
		job.WorkplaceType, job.OpportunityType, job.IsOpen, job.PostedAt, job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	s := job.Salary
	s.JobID = job.ID
	err = tx.QueryRow(ctx, `
		INSERT INTO salaries (job_id, currency, type, min_amount, max_amount)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.JobID, s.Currency, s.Type, s.MinAmount, s.MaxAmount,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert salary: %w", err)
	}

	req := job.Requirements
	req.JobID = job.ID
	err = tx.QueryRow(ctx, `
		INSERT INTO requirements (job_id, skills, min_experience, max_experience, education,
			application_deadline, application_method, application_email, application_url,
			application_link, application_in_person_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		req.JobID, req.Skills, req.MinExperience, req.MaxExperience, req.Education,
		req.ApplicationDeadline, req.ApplicationMethod, req.ApplicationEmail, req.ApplicationURL,
		req.ApplicationLink, req.ApplicationInPersonDetails,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert requirements: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, selectJobWithRelations+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// FindMany returns every job matching where, newest first.
func (r *jobRepo) FindMany(ctx context.Context, where domain.Predicate) ([]domain.Job, error) {
	cond, args, err := buildWhere(where)
	if err != nil {
		return nil, err
	}

	query := selectJobWithRelations + ` WHERE ` + cond + ` ORDER BY j.posted_at DESC, j.id DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	if job.Salary == nil || job.Requirements == nil {
		return errors.New("job must carry salary and requirements")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `UPDATE jobs SET
		title = $2,
		company_name = $3,
		company_website = $4,
		company_description = $5,
		contact_name = $6,
		contact_email = $7,
		contact_phone = $8,
		description = $9,
		locations = $10,
		industry = $11,
		workplace_type = $12,
		opportunity_type = $13,
		is_open = $14,
		updated_at = $15
	WHERE id = $1
	RETURNING posted_at`,
		job.ID, job.Title, job.CompanyName, job.CompanyWebsite, job.CompanyDescription,
		job.ContactName, job.ContactEmail, job.ContactPhone, job.Description,
		job.Locations, job.Industry, job.WorkplaceType, job.OpportunityType,
		job.IsOpen, job.UpdatedAt,
	).Scan(&job.PostedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update job: %w", err)
	}

	s := job.Salary
	s.JobID = job.ID
	err = tx.QueryRow(ctx, `UPDATE salaries SET
		currency = $2, type = $3, min_amount = $4, max_amount = $5
	WHERE job_id = $1
	RETURNING id`,
		s.JobID, s.Currency, s.Type, s.MinAmount, s.MaxAmount,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("update salary: %w", err)
	}

	req := job.Requirements
	req.JobID = job.ID
	err = tx.QueryRow(ctx, `UPDATE requirements SET
		skills = $2,
		min_experience = $3,
		max_experience = $4,
		education = $5,
		application_deadline = $6,
		application_method = $7,
		application_email = $8,
		application_url = $9,
		application_link = $10,
		application_in_person_details = $11
	WHERE job_id = $1
	RETURNING id`,
		req.JobID, req.Skills, req.MinExperience, req.MaxExperience, req.Education,
		req.ApplicationDeadline, req.ApplicationMethod, req.ApplicationEmail, req.ApplicationURL,
		req.ApplicationLink, req.ApplicationInPersonDetails,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("update requirements: %w", err)
	}

	return tx.Commit(ctx)
}

// Delete removes the job; salaries and requirements go with it via
// ON DELETE CASCADE.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
