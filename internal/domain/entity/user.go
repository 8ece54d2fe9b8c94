package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role ID constants, as issued by the identity provider
const (
	RoleIDAdmin   = 1
	RoleIDDoctor  = 2
	RoleIDPatient = 3
)

// User is the shared identity record. Only the cycle profile is written by this service.
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID          int       `gorm:"not null;index" json:"role_id"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName        string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	CycleLength     *int      `gorm:"check:cycle_length > 0" json:"cycle_length,omitempty"`
	PeriodDuration  *int      `gorm:"check:period_duration > 0" json:"period_duration,omitempty"`
	CycleRegularity string    `gorm:"type:varchar(20)" json:"cycle_regularity,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CycleProfile extracts the prediction parameters from the user record
func (u *User) CycleProfile() CycleProfile {
	return CycleProfile{
		CycleLength:     u.CycleLength,
		PeriodDuration:  u.PeriodDuration,
		CycleRegularity: u.CycleRegularity,
	}
}

// CycleProfile holds user-configured cycle parameters; nil means "use the default"
type CycleProfile struct {
	CycleLength     *int
	PeriodDuration  *int
	CycleRegularity string
}
