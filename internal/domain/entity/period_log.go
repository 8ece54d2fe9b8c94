package entity

import (
	"time"

	"github.com/google/uuid"
)

// PeriodLog marks one logged bleeding day; (UserID, Date) is unique
type PeriodLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_period_logs_user_date,priority:1" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uq_period_logs_user_date,priority:2" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PeriodLog) TableName() string {
	return "period_logs"
}
