package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	UserID          *string         `json:"user_id" validate:"omitempty,uuid"`
	Name            string          `json:"name" validate:"required,max=100"`
	Specialization  string          `json:"specialization" validate:"required,max=100"`
	ExperienceYears int             `json:"experience_years" validate:"gte=0"`
	Location        string          `json:"location" validate:"omitempty,max=255"`
	Phone           string          `json:"phone" validate:"omitempty,max=20"`
	Education       string          `json:"education" validate:"omitempty,max=255"`
	About           string          `json:"about" validate:"omitempty"`
	Rating          *float64        `json:"rating" validate:"omitempty,gte=0,lte=5"`
	AvailableDays   []string        `json:"available_days" validate:"required,min=1,dive,required"`
	AvailableTime   []string        `json:"available_time" validate:"required,min=1,dive,required"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

// UpdateDoctorRequest applies only the fields that are present
type UpdateDoctorRequest struct {
	UserID          *string          `json:"user_id" validate:"omitempty,uuid"`
	Name            *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Specialization  *string          `json:"specialization" validate:"omitempty,min=1,max=100"`
	ExperienceYears *int             `json:"experience_years" validate:"omitempty,gte=0"`
	Location        *string          `json:"location" validate:"omitempty,max=255"`
	Phone           *string          `json:"phone" validate:"omitempty,max=20"`
	Education       *string          `json:"education" validate:"omitempty,max=255"`
	About           *string          `json:"about"`
	Rating          *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	AvailableDays   []string         `json:"available_days" validate:"omitempty,min=1,dive,required"`
	AvailableTime   []string         `json:"available_time" validate:"omitempty,min=1,dive,required"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserID          *uuid.UUID      `json:"user_id,omitempty"`
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
	Location        string          `json:"location,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Education       string          `json:"education,omitempty"`
	About           string          `json:"about,omitempty"`
	Rating          float64         `json:"rating"`
	AvailableDays   []string        `json:"available_days"`
	AvailableTime   []string        `json:"available_time"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
