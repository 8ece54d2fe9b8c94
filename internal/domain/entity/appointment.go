package entity

import (
	"time"

	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment is one booked slot. (DoctorID, AppointmentDate, AppointmentTime)
// is unique across the table (uq_appointments_doctor_slot).
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_appointments_doctor_slot,priority:1" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;uniqueIndex:uq_appointments_doctor_slot,priority:2" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:time;not null;uniqueIndex:uq_appointments_doctor_slot,priority:3" json:"appointment_time"`
	Reason          string            `gorm:"type:text" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentToken    *string           `gorm:"type:varchar(100)" json:"-"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;<-:create" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if appointment is still open for rescheduling
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCompleted checks if appointment reached its terminal state
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// SameSlot reports whether the appointment already occupies the given slot
func (a *Appointment) SameSlot(date time.Time, timeOfDay string) bool {
	return calendar.SameDay(a.AppointmentDate, date) && a.AppointmentTime == timeOfDay
}
