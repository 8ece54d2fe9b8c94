package repository

import (
	"context"
	"errors"
	"time"

	"cycle-booking-service/internal/domain/entity"
	domainRepo "cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts the appointment. The unique constraint on (doctor_id, appointment_date,
// appointment_time) makes the check-and-insert a single atomic statement.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	err := r.db.WithContext(ctx).Omit("User", "Doctor").Create(appointment).Error
	return translateSlotError(err)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	normalize(&appointment)
	return &appointment, nil
}

func (r *appointmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Preload("Doctor").
		Where("user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	normalizeAll(appointments)
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctor(ctx context.Context, doctorID uuid.UUID, date *time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := r.db.WithContext(ctx).Preload("User").Where("doctor_id = ?", doctorID)
	if date != nil {
		query = query.Where("appointment_date = ?", calendar.FormatDate(*date))
	}
	err := query.Order("appointment_date ASC, appointment_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	normalizeAll(appointments)
	return appointments, nil
}

func (r *appointmentRepository) FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ?", doctorID, calendar.FormatDate(date)).
		Order("appointment_time ASC").
		Pluck("to_char(appointment_time, 'HH24:MI')", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// FindUpcoming pages through appointments dated on or after from, ordered by id for stable batches.
func (r *appointmentRepository) FindUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("appointment_date >= ?", calendar.FormatDate(from)).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	normalizeAll(appointments)
	return appointments, nil
}

func (r *appointmentRepository) UpdateSlot(ctx context.Context, appointment *entity.Appointment) error {
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]interface{}{
			"appointment_date": calendar.FormatDate(appointment.AppointmentDate),
			"appointment_time": appointment.AppointmentTime,
			"updated_at":       appointment.UpdatedAt,
		}).Error
	return translateSlotError(err)
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Postgres hands time columns back as "HH:MM:SS"; the domain works in HH:MM.
func normalize(appointment *entity.Appointment) {
	appointment.AppointmentTime = calendar.NormalizeTimeOfDay(appointment.AppointmentTime)
}

func normalizeAll(appointments []entity.Appointment) {
	for i := range appointments {
		normalize(&appointments[i])
	}
}
