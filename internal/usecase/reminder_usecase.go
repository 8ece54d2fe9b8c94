package usecase

import (
	"context"

	"cycle-booking-service/internal/converter"
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/delivery/http/middleware"
	"cycle-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ReminderUsecase interface {
	GetMyReminders(ctx context.Context) (*dto.ReminderListResponse, error)
}

type reminderUsecase struct {
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
}

func NewReminderUsecase(log *logrus.Logger, reminderRepo repository.ReminderRepository) ReminderUsecase {
	return &reminderUsecase{
		log:          log,
		reminderRepo: reminderRepo,
	}
}

// GetMyReminders returns the caller's reminders, newest first
func (u *reminderUsecase) GetMyReminders(ctx context.Context) (*dto.ReminderListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	reminders, err := u.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find reminders for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.ReminderListResponse{
		Reminders: converter.RemindersToResponses(reminders),
		Total:     len(reminders),
	}, nil
}
