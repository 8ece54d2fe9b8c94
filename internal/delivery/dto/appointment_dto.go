package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID        string  `json:"doctor_id" validate:"required,uuid"`
	AppointmentDate string  `json:"appointment_date" validate:"required,isodate"`
	AppointmentTime string  `json:"appointment_time" validate:"required,timeofday"`
	Reason          string  `json:"reason" validate:"omitempty,max=1000"`
	PaymentToken    *string `json:"payment_token" validate:"omitempty,max=100"`
}

type RescheduleAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required,isodate"`
	AppointmentTime string `json:"appointment_time" validate:"required,timeofday"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
	Reason          string          `json:"reason,omitempty"`
	Status          string          `json:"status"`
	HasPaymentToken bool            `json:"has_payment_token"`
	Doctor          *DoctorResponse `json:"doctor,omitempty"`
	Patient         *UserResponse   `json:"patient,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type BookedTimesResponse struct {
	DoctorID    uuid.UUID `json:"doctor_id"`
	Date        string    `json:"date"`
	BookedTimes []string  `json:"booked_times"`
}
