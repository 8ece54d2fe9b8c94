package usecase

import (
	"context"
	"sort"
	"time"

	"cycle-booking-service/internal/converter"
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/delivery/http/middleware"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/internal/service"
	"cycle-booking-service/pkg/calendar"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type CycleUsecase interface {
	GetPeriodLogs(ctx context.Context) (*dto.PeriodLogListResponse, error)
	ReplacePeriodLogs(ctx context.Context, req *dto.ReplacePeriodLogsRequest) (*dto.PeriodLogListResponse, error)
	PredictCycle(ctx context.Context) (*dto.PredictionResponse, error)
	UpdateCycleProfile(ctx context.Context, req *dto.UpdateCycleProfileRequest) (*dto.CycleProfileResponse, error)
}

type cycleUsecase struct {
	log           *logrus.Logger
	clock         clockwork.Clock
	userRepo      repository.UserRepository
	periodLogRepo repository.PeriodLogRepository
	predictor     *service.CyclePredictor
	reminders     ReminderPublisher
	auditService  service.AuditService
}

func NewCycleUsecase(
	log *logrus.Logger,
	clock clockwork.Clock,
	userRepo repository.UserRepository,
	periodLogRepo repository.PeriodLogRepository,
	predictor *service.CyclePredictor,
	reminders ReminderPublisher,
	auditService service.AuditService,
) CycleUsecase {
	return &cycleUsecase{
		log:           log,
		clock:         clock,
		userRepo:      userRepo,
		periodLogRepo: periodLogRepo,
		predictor:     predictor,
		reminders:     reminders,
		auditService:  auditService,
	}
}

// GetPeriodLogs returns the caller's logged period days, ascending
func (u *cycleUsecase) GetPeriodLogs(ctx context.Context) (*dto.PeriodLogListResponse, error) {
	user, err := u.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := u.periodLogRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find period logs for user %s: %+v", user.ID, err)
		return nil, err
	}

	dates := converter.PeriodLogsToDates(logs)
	sort.Strings(dates)
	return &dto.PeriodLogListResponse{Dates: dates, Total: len(dates)}, nil
}

// ReplacePeriodLogs swaps the caller's whole history for the submitted dates.
// Every entry is parsed before anything is written; duplicates collapse to one day.
func (u *cycleUsecase) ReplacePeriodLogs(ctx context.Context, req *dto.ReplacePeriodLogsRequest) (*dto.PeriodLogListResponse, error) {
	user, err := u.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	dates, err := parsePeriodDates(req.Dates)
	if err != nil {
		return nil, err
	}

	previous, err := u.periodLogRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find period logs for user %s: %+v", user.ID, err)
		return nil, err
	}

	if err := u.periodLogRepo.ReplaceForUser(ctx, user.ID, dates); err != nil {
		u.log.Warnf("Failed to replace period logs for user %s: %+v", user.ID, err)
		return nil, err
	}

	formatted := calendar.FormatDates(dates)

	if len(dates) > 0 {
		event := service.ReminderEvent{
			Kind:         service.EventPeriodLogged,
			UserID:       user.ID,
			LatestPeriod: dates[len(dates)-1],
			Profile:      user.CycleProfile(),
			OccurredAt:   u.clock.Now(),
		}
		if u.reminders != nil {
			if err := u.reminders.Publish(event); err != nil {
				u.log.Warnf("Failed to publish %s reminder event: %+v", event.Kind, err)
			}
		}
	}

	if err := u.auditService.LogUpdate(ctx, &user.ID, entity.AuditActionPeriodLogReplace, "period_log", user.ID.String(), converter.PeriodLogsToDates(previous), formatted); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.PeriodLogListResponse{Dates: formatted, Total: len(formatted)}, nil
}

// PredictCycle forecasts the next cycles from the caller's latest logged day
func (u *cycleUsecase) PredictCycle(ctx context.Context) (*dto.PredictionResponse, error) {
	user, err := u.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := u.periodLogRepo.FindLatest(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find latest period log for user %s: %+v", user.ID, err)
		return nil, err
	}

	profile := user.CycleProfile()
	cycleLength, periodDuration := u.predictor.Resolve(profile)
	response := &dto.PredictionResponse{
		CycleLength:    cycleLength,
		PeriodDuration: periodDuration,
	}

	var lastStart *time.Time
	if latest != nil {
		lastStart = &latest.Date
		formatted := calendar.FormatDate(latest.Date)
		response.LastPeriodStart = &formatted
	}

	prediction := u.predictor.Predict(lastStart, profile)
	response.PeriodDays = prediction.PeriodDays
	response.FertileDays = prediction.FertileDays
	response.OvulationDays = prediction.OvulationDays

	return response, nil
}

// UpdateCycleProfile patches the caller's cycle parameters; absent fields are kept
func (u *cycleUsecase) UpdateCycleProfile(ctx context.Context, req *dto.UpdateCycleProfileRequest) (*dto.CycleProfileResponse, error) {
	user, err := u.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if (req.CycleLength != nil && !service.ValidCycleLength(*req.CycleLength)) ||
		(req.PeriodDuration != nil && !service.ValidPeriodDuration(*req.PeriodDuration)) {
		return nil, ErrInvalidCycleProfile
	}

	oldValue := converter.CycleProfileToResponse(user)

	if req.CycleLength != nil {
		user.CycleLength = req.CycleLength
	}
	if req.PeriodDuration != nil {
		user.PeriodDuration = req.PeriodDuration
	}
	if req.CycleRegularity != nil {
		user.CycleRegularity = *req.CycleRegularity
	}

	if err := u.userRepo.UpdateCycleProfile(ctx, user); err != nil {
		u.log.Warnf("Failed to update cycle profile for user %s: %+v", user.ID, err)
		return nil, err
	}

	newValue := converter.CycleProfileToResponse(user)
	if err := u.auditService.LogUpdate(ctx, &user.ID, entity.AuditActionCycleProfileUpdate, "user", user.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *cycleUsecase) currentUser(ctx context.Context) (*entity.User, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// parsePeriodDates parses every entry, dedupes and sorts ascending
func parsePeriodDates(raw []string) ([]time.Time, error) {
	seen := make(map[time.Time]struct{}, len(raw))
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		date, err := calendar.ParseLooseDate(s)
		if err != nil {
			return nil, ErrInvalidPeriodDate
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
