package usecase

import (
	"context"

	"cycle-booking-service/internal/converter"
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type AuditLogUsecase interface {
	SearchAuditLogs(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) SearchAuditLogs(ctx context.Context, query *dto.AuditLogQuery) (*dto.AuditLogListResponse, error) {
	filter := repository.AuditLogFilter{
		Action:   query.Action,
		Entity:   query.Entity,
		EntityID: query.EntityID,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditPageSize
	}
	if filter.Limit > maxAuditPageSize {
		filter.Limit = maxAuditPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if query.UserID != "" {
		userID, err := uuid.Parse(query.UserID)
		if err != nil {
			return nil, ErrInvalidUserID
		}
		filter.UserID = &userID
	}

	logs, total, err := u.auditLogRepo.Search(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to search audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:   converter.AuditLogsToResponses(logs),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
