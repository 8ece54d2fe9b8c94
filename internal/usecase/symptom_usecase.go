package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
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

type SymptomUsecase interface {
	ListSymptoms(ctx context.Context) (*dto.SymptomListResponse, error)
	CreateSymptom(ctx context.Context, req *dto.SymptomRequest) (*dto.SymptomResponse, error)
	UpdateSymptom(ctx context.Context, id int64, req *dto.SymptomRequest) (*dto.SymptomResponse, error)
	DeleteSymptom(ctx context.Context, id int64) error

	ListMenstrualFlows(ctx context.Context) (*dto.MenstrualFlowListResponse, error)
	CreateMenstrualFlow(ctx context.Context, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error)
	UpdateMenstrualFlow(ctx context.Context, id int64, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error)
	DeleteMenstrualFlow(ctx context.Context, id int64) error

	LogSymptoms(ctx context.Context, req *dto.LogSymptomsRequest) (*dto.SymptomLogResponse, error)
	GetMySymptomLogs(ctx context.Context, from string) (*dto.SymptomLogListResponse, error)
}

type symptomUsecase struct {
	log          *logrus.Logger
	clock        clockwork.Clock
	loc          *time.Location
	userRepo     repository.UserRepository
	symptomRepo  repository.SymptomRepository
	flowRepo     repository.MenstrualFlowRepository
	auditService service.AuditService
}

func NewSymptomUsecase(
	log *logrus.Logger,
	clock clockwork.Clock,
	loc *time.Location,
	userRepo repository.UserRepository,
	symptomRepo repository.SymptomRepository,
	flowRepo repository.MenstrualFlowRepository,
	auditService service.AuditService,
) SymptomUsecase {
	return &symptomUsecase{
		log:          log,
		clock:        clock,
		loc:          loc,
		userRepo:     userRepo,
		symptomRepo:  symptomRepo,
		flowRepo:     flowRepo,
		auditService: auditService,
	}
}

func (u *symptomUsecase) ListSymptoms(ctx context.Context) (*dto.SymptomListResponse, error) {
	symptoms, err := u.symptomRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find symptoms: %+v", err)
		return nil, err
	}
	return &dto.SymptomListResponse{
		Symptoms: converter.SymptomsToResponses(symptoms),
		Total:    len(symptoms),
	}, nil
}

func (u *symptomUsecase) CreateSymptom(ctx context.Context, req *dto.SymptomRequest) (*dto.SymptomResponse, error) {
	symptom := &entity.Symptom{Name: strings.TrimSpace(req.Name)}
	if symptom.Name == "" {
		return nil, ErrInvalidInput
	}

	if err := u.symptomRepo.Create(ctx, symptom); err != nil {
		return nil, u.catalogueError("create symptom", err)
	}

	resp := converter.SymptomToResponse(symptom)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &actorID, entity.AuditActionSymptomCreate, "symptom", idString(symptom.ID), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return resp, nil
}

func (u *symptomUsecase) UpdateSymptom(ctx context.Context, id int64, req *dto.SymptomRequest) (*dto.SymptomResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	symptom, err := u.symptomRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find symptom %d: %+v", id, err)
		return nil, err
	}
	if symptom == nil {
		return nil, ErrSymptomNotFound
	}

	oldValue := converter.SymptomToResponse(symptom)
	symptom.Name = name
	if err := u.symptomRepo.Update(ctx, symptom); err != nil {
		return nil, u.catalogueError("update symptom", err)
	}

	newValue := converter.SymptomToResponse(symptom)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionSymptomUpdate, "symptom", idString(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return newValue, nil
}

// DeleteSymptom removes a catalogue entry together with every log that used it
func (u *symptomUsecase) DeleteSymptom(ctx context.Context, id int64) error {
	deleted, err := u.symptomRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete symptom %d: %+v", id, err)
		return err
	}
	if !deleted {
		return ErrSymptomNotFound
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionSymptomDelete, "symptom", idString(id), nil, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return nil
}

func (u *symptomUsecase) ListMenstrualFlows(ctx context.Context) (*dto.MenstrualFlowListResponse, error) {
	flows, err := u.flowRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find menstrual flows: %+v", err)
		return nil, err
	}
	return &dto.MenstrualFlowListResponse{
		Flows: converter.MenstrualFlowsToResponses(flows),
		Total: len(flows),
	}, nil
}

func (u *symptomUsecase) CreateMenstrualFlow(ctx context.Context, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error) {
	flow := &entity.MenstrualFlow{Label: strings.TrimSpace(req.Label)}
	if flow.Label == "" {
		return nil, ErrInvalidInput
	}

	if err := u.flowRepo.Create(ctx, flow); err != nil {
		return nil, u.catalogueError("create menstrual flow", err)
	}

	resp := converter.MenstrualFlowToResponse(flow)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &actorID, entity.AuditActionMenstrualFlowCreate, "menstrual_flow", idString(flow.ID), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return resp, nil
}

func (u *symptomUsecase) UpdateMenstrualFlow(ctx context.Context, id int64, req *dto.MenstrualFlowRequest) (*dto.MenstrualFlowResponse, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, ErrInvalidInput
	}

	flow, err := u.flowRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find menstrual flow %d: %+v", id, err)
		return nil, err
	}
	if flow == nil {
		return nil, ErrMenstrualFlowNotFound
	}

	oldValue := converter.MenstrualFlowToResponse(flow)
	flow.Label = label
	if err := u.flowRepo.Update(ctx, flow); err != nil {
		return nil, u.catalogueError("update menstrual flow", err)
	}

	newValue := converter.MenstrualFlowToResponse(flow)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionMenstrualFlowUpdate, "menstrual_flow", idString(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return newValue, nil
}

func (u *symptomUsecase) DeleteMenstrualFlow(ctx context.Context, id int64) error {
	deleted, err := u.flowRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete menstrual flow %d: %+v", id, err)
		return err
	}
	if !deleted {
		return ErrMenstrualFlowNotFound
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionMenstrualFlowDelete, "menstrual_flow", idString(id), nil, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return nil
}

// LogSymptoms records the submitted symptoms for one day of the caller. Every id
// must exist; nothing is written otherwise. Re-logging a symptom for the same day
// is a no-op.
func (u *symptomUsecase) LogSymptoms(ctx context.Context, req *dto.LogSymptomsRequest) (*dto.SymptomLogResponse, error) {
	user, err := u.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if len(req.SymptomIDs) == 0 {
		return nil, ErrUnknownSymptom
	}

	today := calendar.Today(u.clock.Now(), u.loc)
	date := today
	if req.Date != "" {
		date, err = calendar.ParseDate(req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if date.After(today) {
			return nil, ErrSymptomDateInFuture
		}
	}

	ids := uniqueIDs(req.SymptomIDs)
	symptoms, err := u.symptomRepo.FindByIDs(ctx, ids)
	if err != nil {
		u.log.Warnf("Failed to find symptoms %v: %+v", ids, err)
		return nil, err
	}
	if len(symptoms) != len(ids) {
		return nil, ErrUnknownSymptom
	}

	logs := make([]entity.SymptomLog, len(symptoms))
	for i, symptom := range symptoms {
		logs[i] = entity.SymptomLog{UserID: user.ID, SymptomID: symptom.ID, Date: date}
	}
	if err := u.symptomRepo.CreateLogs(ctx, logs); err != nil {
		u.log.Warnf("Failed to log symptoms for user %s: %+v", user.ID, err)
		return nil, err
	}

	resp := &dto.SymptomLogResponse{
		Date:     calendar.FormatDate(date),
		Symptoms: converter.SymptomsToResponses(symptoms),
	}
	if err := u.auditService.LogCreate(ctx, &user.ID, entity.AuditActionSymptomLog, "symptom_log", user.ID.String(), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return resp, nil
}

// GetMySymptomLogs returns the caller's symptom history grouped by day, newest first
func (u *symptomUsecase) GetMySymptomLogs(ctx context.Context, from string) (*dto.SymptomLogListResponse, error) {
	user, err := u.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	var fromDate *time.Time
	if from != "" {
		parsed, err := calendar.ParseDate(from)
		if err != nil {
			return nil, ErrInvalidDate
		}
		fromDate = &parsed
	}

	logs, err := u.symptomRepo.FindLogsByUser(ctx, user.ID, fromDate)
	if err != nil {
		u.log.Warnf("Failed to find symptom logs for user %s: %+v", user.ID, err)
		return nil, err
	}

	days := converter.SymptomLogsToDays(logs)
	return &dto.SymptomLogListResponse{Days: days, Total: len(days)}, nil
}

func (u *symptomUsecase) currentUser(ctx context.Context) (*entity.User, error) {
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

func (u *symptomUsecase) catalogueError(op string, err error) error {
	if errors.Is(err, repository.ErrDuplicateName) {
		return ErrDuplicateName
	}
	u.log.Warnf("Failed to %s: %+v", op, err)
	return err
}

// uniqueIDs drops duplicates and sorts ascending
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
