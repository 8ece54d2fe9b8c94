package repository

import (
	"context"
	"time"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

type ReminderRepository interface {
	CreateBatch(ctx context.Context, reminders []entity.Reminder) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Reminder, error)
	FindByDate(ctx context.Context, date time.Time) ([]entity.Reminder, error)
}
