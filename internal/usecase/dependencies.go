package usecase

import (
	"context"

	"cycle-booking-service/internal/service"

	"github.com/google/uuid"
)

// SlotReserver is the fast-path slot filter in front of the database constraint
type SlotReserver interface {
	Reserve(ctx context.Context, slot service.Slot, owner uuid.UUID) (bool, error)
	Release(ctx context.Context, slot service.Slot, owner uuid.UUID) error
}

// ReminderPublisher hands events to the reminder dispatcher without blocking
type ReminderPublisher interface {
	Publish(event service.ReminderEvent) error
}
