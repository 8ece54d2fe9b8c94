package entity

import (
	"time"

	"github.com/google/uuid"
)

// Symptom is an admin-managed catalogue entry users can log against a day
type Symptom struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_symptoms_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Symptom) TableName() string {
	return "symptoms"
}

// SymptomLog records that a user had a symptom on a date; (UserID, SymptomID, Date) is unique
type SymptomLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_symptom_logs_user_symptom_date,priority:1" json:"user_id"`
	SymptomID int64     `gorm:"not null;uniqueIndex:uq_symptom_logs_user_symptom_date,priority:2" json:"symptom_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_symptom_logs_user_symptom_date,priority:3" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Symptom Symptom `gorm:"foreignKey:SymptomID" json:"symptom,omitempty"`
}

func (SymptomLog) TableName() string {
	return "symptom_logs"
}

// MenstrualFlow is an admin-managed flow intensity label ("Light", "Heavy")
type MenstrualFlow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Label     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_menstrual_flows_label" json:"label"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MenstrualFlow) TableName() string {
	return "menstrual_flows"
}
