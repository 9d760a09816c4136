package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/pkg/apperror"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}

type healthUsecase struct {
	db pinger
}

func NewHealthUsecase(db pinger) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := u.db.Ping(ctx); err != nil {
		return nil, apperror.Unavailable("Database unavailable", err)
	}
	return map[string]string{
		"status":   "ok",
		"database": "ok",
	}, nil
}
