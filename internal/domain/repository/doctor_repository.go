package repository

import (
	"context"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
}
