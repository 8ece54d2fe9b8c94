package repository

import (
	"context"
	"time"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

type SymptomRepository interface {
	Create(ctx context.Context, symptom *entity.Symptom) error
	Update(ctx context.Context, symptom *entity.Symptom) error
	// Delete reports false when no row had the id. Logs of the symptom go with it.
	Delete(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*entity.Symptom, error)
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Symptom, error)
	FindAll(ctx context.Context) ([]entity.Symptom, error)

	// CreateLogs inserts logs, skipping any (user, symptom, date) already recorded.
	CreateLogs(ctx context.Context, logs []entity.SymptomLog) error
	// FindLogsByUser returns the user's logs newest first with Symptom loaded;
	// from, when set, drops days before it.
	FindLogsByUser(ctx context.Context, userID uuid.UUID, from *time.Time) ([]entity.SymptomLog, error)
}

type MenstrualFlowRepository interface {
	Create(ctx context.Context, flow *entity.MenstrualFlow) error
	Update(ctx context.Context, flow *entity.MenstrualFlow) error
	Delete(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*entity.MenstrualFlow, error)
	FindAll(ctx context.Context) ([]entity.MenstrualFlow, error)
}
