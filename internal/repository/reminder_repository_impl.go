package repository

import (
	"context"
	"time"

	"cycle-booking-service/internal/domain/entity"
	domainRepo "cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domainRepo.ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) CreateBatch(ctx context.Context, reminders []entity.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}
	if err := checkReminderTypes(reminders); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&reminders).Error
}

func (r *reminderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, time DESC, id DESC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	normalizeReminders(reminders)
	return reminders, nil
}

func (r *reminderRepository) FindByDate(ctx context.Context, date time.Time) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Where("date = ?", calendar.FormatDate(date)).
		Order("user_id, time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	normalizeReminders(reminders)
	return reminders, nil
}

func normalizeReminders(reminders []entity.Reminder) {
	for i := range reminders {
		reminders[i].Time = calendar.NormalizeTimeOfDay(reminders[i].Time)
	}
}
