package repository

import (
	"context"
	"time"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	// Create returns ErrSlotTaken when the doctor's slot is already booked.
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error)
	// FindByDoctor lists a doctor's appointments; a nil date means every date.
	FindByDoctor(ctx context.Context, doctorID uuid.UUID, date *time.Time) ([]entity.Appointment, error)
	FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error)
	FindUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]entity.Appointment, error)
	// UpdateSlot moves the appointment in place; ErrSlotTaken on collision.
	UpdateSlot(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error
}
