package usecase

import (
	"time"

	"go-jobboard-backend/internal/domain"
)

// NewJobUsecaseWithClock lets tests pin the clock.
func NewJobUsecaseWithClock(jobRepo domain.JobRepository, now func() time.Time) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, now: now}
}
