package repository

import (
	"context"
	"errors"
	"time"

	"cycle-booking-service/internal/domain/entity"
	domainRepo "cycle-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type periodLogRepository struct {
	db *gorm.DB
}

func NewPeriodLogRepository(db *gorm.DB) domainRepo.PeriodLogRepository {
	return &periodLogRepository{db: db}
}

func (r *periodLogRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.PeriodLog, error) {
	var logs []entity.PeriodLog
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *periodLogRepository) FindLatest(ctx context.Context, userID uuid.UUID) (*entity.PeriodLog, error) {
	var log entity.PeriodLog
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// ReplaceForUser runs delete-then-insert in one transaction so an interrupted
// write never leaves the user without logs.
func (r *periodLogRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, dates []time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entity.PeriodLog{}).Error; err != nil {
			return err
		}
		if len(dates) == 0 {
			return nil
		}
		logs := make([]entity.PeriodLog, len(dates))
		for i, date := range dates {
			logs[i] = entity.PeriodLog{UserID: userID, Date: date}
		}
		return tx.Create(&logs).Error
	})
}
