package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every usecase error wraps exactly one of these; handlers map them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrSlotConflict = errors.New("slot conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrPrincipalMissing = fmt.Errorf("user not found in context: %w", ErrUnauthorized)

	ErrDoctorNotFound        = fmt.Errorf("doctor %w", ErrNotFound)
	ErrDoctorProfileNotFound = fmt.Errorf("doctor profile for this user %w", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrAppointmentNotFound   = fmt.Errorf("appointment %w", ErrNotFound)
	ErrAuditLogNotFound      = fmt.Errorf("audit log %w", ErrNotFound)
	ErrSymptomNotFound       = fmt.Errorf("symptom %w", ErrNotFound)
	ErrMenstrualFlowNotFound = fmt.Errorf("menstrual flow %w", ErrNotFound)

	ErrSlotTaken = fmt.Errorf("this time slot is already booked: %w", ErrSlotConflict)

	ErrInvalidDoctorID     = fmt.Errorf("doctor_id must be a valid UUID: %w", ErrInvalidInput)
	ErrInvalidDate         = fmt.Errorf("date must be in YYYY-MM-DD format: %w", ErrInvalidInput)
	ErrInvalidTime         = fmt.Errorf("time must be in HH:MM format: %w", ErrInvalidInput)
	ErrSlotInPast          = fmt.Errorf("cannot book a slot in the past: %w", ErrInvalidInput)
	ErrInvalidFee          = fmt.Errorf("consultation_fee must not be negative: %w", ErrInvalidInput)
	ErrUserAlreadyLinked   = fmt.Errorf("user already linked to another doctor: %w", ErrInvalidInput)
	ErrInvalidPeriodDate   = fmt.Errorf("period dates must be YYYY-MM-DD or RFC3339: %w", ErrInvalidInput)
	ErrInvalidCycleProfile = fmt.Errorf("cycle_length must be 1-90 and period_duration 1-15: %w", ErrInvalidInput)
	ErrInvalidUserID       = fmt.Errorf("user_id must be a valid UUID: %w", ErrInvalidInput)
	ErrUnknownSymptom      = fmt.Errorf("symptom_ids contains an unknown symptom: %w", ErrInvalidInput)
	ErrSymptomDateInFuture = fmt.Errorf("symptoms cannot be logged for a future date: %w", ErrInvalidInput)
	ErrDuplicateName       = fmt.Errorf("name already exists: %w", ErrInvalidInput)

	ErrAppointmentCompleted = fmt.Errorf("completed appointments cannot be rescheduled: %w", ErrInvalidState)
	ErrAppointmentInFuture  = fmt.Errorf("cannot complete a future appointment: %w", ErrInvalidState)

	ErrNotYourAppointment = fmt.Errorf("appointment belongs to another doctor: %w", ErrUnauthorized)
)
