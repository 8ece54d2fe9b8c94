package repository

import (
	"context"
	"time"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

type PeriodLogRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.PeriodLog, error)
	// FindLatest returns nil when the user has no logs.
	FindLatest(ctx context.Context, userID uuid.UUID) (*entity.PeriodLog, error)
	// ReplaceForUser deletes every log of the user and inserts dates, atomically.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, dates []time.Time) error
}
