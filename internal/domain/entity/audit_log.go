package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog is one audit trail entry; Metadata carries entity, entity_id, old_value and new_value
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSONB value type %T", value)
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Audit actions recorded by this service
const (
	AuditActionAppointmentBook       = "appointment.book"
	AuditActionAppointmentReschedule = "appointment.reschedule"
	AuditActionAppointmentComplete   = "appointment.complete"
	AuditActionPeriodLogReplace      = "period_log.replace"
	AuditActionCycleProfileUpdate    = "cycle_profile.update"
	AuditActionDoctorCreate          = "doctor.create"
	AuditActionDoctorUpdate          = "doctor.update"
)

const (
	AuditActionSymptomCreate       = "symptom.create"
	AuditActionSymptomUpdate       = "symptom.update"
	AuditActionSymptomDelete       = "symptom.delete"
	AuditActionSymptomLog          = "symptom_log.create"
	AuditActionMenstrualFlowCreate = "menstrual_flow.create"
	AuditActionMenstrualFlowUpdate = "menstrual_flow.update"
	AuditActionMenstrualFlowDelete = "menstrual_flow.delete"
)
