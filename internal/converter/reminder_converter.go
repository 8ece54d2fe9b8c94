package converter

import (
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"
)

func RemindersToResponses(reminders []entity.Reminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i, r := range reminders {
		responses[i] = dto.ReminderResponse{
			ID:           r.ID,
			ReminderType: string(r.ReminderType),
			Title:        r.ReminderType.Label(),
			Message:      r.Message,
			Date:         calendar.FormatDate(r.Date),
			Time:         calendar.NormalizeTimeOfDay(r.Time),
			CreatedAt:    r.CreatedAt,
		}
	}
	return responses
}
