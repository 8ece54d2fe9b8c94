package repository

import (
	"errors"
	"fmt"
	"testing"

	"cycle-booking-service/internal/domain/entity"
	domainRepo "cycle-booking-service/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateSlotError(t *testing.T) {
	other := errors.New("connection reset")
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"slot violation", &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_doctor_slot"}, domainRepo.ErrSlotTaken},
		{"wrapped slot violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_doctor_slot"}), domainRepo.ErrSlotTaken},
		{"other unique constraint", &pgconn.PgError{Code: "23505", ConstraintName: "appointments_pkey"}, nil},
		{"other code on slot constraint", &pgconn.PgError{Code: "23503", ConstraintName: "uq_appointments_doctor_slot"}, nil},
		{"non postgres error", other, other},
		{"nil", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateSlotError(tc.err)
			if tc.want != nil {
				assert.ErrorIs(t, got, tc.want)
				return
			}
			assert.NotErrorIs(t, got, domainRepo.ErrSlotTaken)
			assert.Equal(t, tc.err, got)
		})
	}
}

func TestTranslateDoctorError(t *testing.T) {
	linked := &pgconn.PgError{Code: "23505", ConstraintName: "doctors_user_id_key"}
	assert.ErrorIs(t, translateDoctorError(linked), domainRepo.ErrUserLinked)

	slot := &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_doctor_slot"}
	assert.Equal(t, error(slot), translateDoctorError(slot))
}

func TestCheckReminderTypes(t *testing.T) {
	assert.NoError(t, checkReminderTypes([]entity.Reminder{
		{ReminderType: entity.ReminderNextPeriodStart},
		{ReminderType: entity.ReminderAppointmentBooked},
	}))

	err := checkReminderTypes([]entity.Reminder{
		{ReminderType: entity.ReminderOvulationDay},
		{ReminderType: "birthday"},
	})
	assert.ErrorIs(t, err, domainRepo.ErrInvalidReminderType)
	assert.Contains(t, err.Error(), "birthday")
}
