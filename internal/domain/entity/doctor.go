package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor is a bookable practitioner. AvailableDays and AvailableTime are stored
// as comma-separated lists ("Mon, Wed, Fri" / "10:00 AM - 1:00 PM, 3:00 PM - 5:00 PM").
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ExperienceYears int             `gorm:"not null" json:"experience_years"`
	Location        string          `gorm:"type:varchar(255)" json:"location,omitempty"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Education       string          `gorm:"type:varchar(255)" json:"education,omitempty"`
	About           string          `gorm:"type:text" json:"about,omitempty"`
	Rating          float64         `gorm:"not null;default:4.5" json:"rating"`
	AvailableDays   string          `gorm:"type:varchar(200);not null" json:"available_days"`
	AvailableTime   string          `gorm:"type:varchar(100);not null" json:"available_time"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"consultation_fee"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// HasLinkedUser reports whether the doctor can log in and receive reminders
func (d *Doctor) HasLinkedUser() bool {
	return d.UserID != nil && *d.UserID != uuid.Nil
}
