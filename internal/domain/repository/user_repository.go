package repository

import (
	"context"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.User, error)
	UpdateCycleProfile(ctx context.Context, user *entity.User) error
}
