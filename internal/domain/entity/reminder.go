package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderType is the closed set of notification categories
type ReminderType string

const (
	ReminderLogPeriod              ReminderType = "log_period"
	ReminderNextPeriodStart        ReminderType = "next_period_start"
	ReminderFertileWindowStart     ReminderType = "fertile_window_start"
	ReminderOvulationDay           ReminderType = "ovulation_day"
	ReminderAppointmentBooked      ReminderType = "appointment_booked"
	ReminderAppointmentReminder    ReminderType = "appointment_reminder"
	ReminderAppointmentRescheduled ReminderType = "appointment_rescheduled"
	ReminderDoctorNewAppointment   ReminderType = "doctor_new_appointment"
	ReminderDoctorRescheduled      ReminderType = "doctor_rescheduled"
	ReminderDoctorDayReminder      ReminderType = "doctor_day_reminder"
	ReminderCustom                 ReminderType = "custom"
)

var reminderTypes = map[ReminderType]string{
	ReminderLogPeriod:              "Log Your Period",
	ReminderNextPeriodStart:        "Upcoming Period Start",
	ReminderFertileWindowStart:     "Fertile Window Begins",
	ReminderOvulationDay:           "Ovulation Day",
	ReminderAppointmentBooked:      "Appointment Booked",
	ReminderAppointmentReminder:    "Appointment Reminder",
	ReminderAppointmentRescheduled: "Appointment Rescheduled",
	ReminderDoctorNewAppointment:   "Doctor New Appointment",
	ReminderDoctorRescheduled:      "Doctor Appointment Rescheduled",
	ReminderDoctorDayReminder:      "Same-Day Appointment Reminder",
	ReminderCustom:                 "Custom Reminder",
}

// Valid reports whether t belongs to the closed set
func (t ReminderType) Valid() bool {
	_, ok := reminderTypes[t]
	return ok
}

// Label returns the human-readable title of the reminder type
func (t ReminderType) Label() string {
	return reminderTypes[t]
}

// Reminder is a notification for a patient or a doctor's linked user.
// Rows are only ever inserted.
type Reminder struct {
	ID           int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	ReminderType ReminderType `gorm:"type:varchar(40);not null" json:"reminder_type"`
	Message      string       `gorm:"type:varchar(255)" json:"message"`
	Date         time.Time    `gorm:"type:date;index" json:"date"`
	Time         string       `gorm:"type:time" json:"time"`
	CreatedAt    time.Time    `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}
