package converter

import (
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"
)

// PeriodLogsToDates returns the logged dates as ISO strings, ascending
func PeriodLogsToDates(logs []entity.PeriodLog) []string {
	dates := make([]string, len(logs))
	for i, log := range logs {
		dates[i] = calendar.FormatDate(log.Date)
	}
	return dates
}

func CycleProfileToResponse(user *entity.User) *dto.CycleProfileResponse {
	if user == nil {
		return nil
	}
	return &dto.CycleProfileResponse{
		CycleLength:     user.CycleLength,
		PeriodDuration:  user.PeriodDuration,
		CycleRegularity: user.CycleRegularity,
	}
}
