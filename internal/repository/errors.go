package repository

import (
	"errors"
	"fmt"
	"strings"

	"cycle-booking-service/internal/domain/entity"
	domainRepo "cycle-booking-service/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	slotConstraint        = "uq_appointments_doctor_slot"
	doctorUserConstraint  = "doctors_user_id_key"
	symptomNameConstraint = "uq_symptoms_name"
	flowLabelConstraint   = "uq_menstrual_flows_label"
	pgUniqueViolation     = "23505"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// translateSlotError maps a violation of the appointment slot constraint to ErrSlotTaken
func translateSlotError(err error) error {
	if isDuplicateKeyError(err, slotConstraint) {
		return domainRepo.ErrSlotTaken
	}
	return err
}

func translateDoctorError(err error) error {
	if isDuplicateKeyError(err, doctorUserConstraint) {
		return domainRepo.ErrUserLinked
	}
	return err
}

func translateNameError(err error, constraintName string) error {
	if isDuplicateKeyError(err, constraintName) {
		return domainRepo.ErrDuplicateName
	}
	return err
}

// checkReminderTypes rejects a batch holding a type outside the closed set
func checkReminderTypes(reminders []entity.Reminder) error {
	for i := range reminders {
		if !reminders[i].ReminderType.Valid() {
			return fmt.Errorf("%w: %q", domainRepo.ErrInvalidReminderType, reminders[i].ReminderType)
		}
	}
	return nil
}
