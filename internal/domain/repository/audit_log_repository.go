package repository

import (
	"context"

	"cycle-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogFilter narrows an audit trail search. Zero values mean "any".
type AuditLogFilter struct {
	Action   string
	UserID   *uuid.UUID
	Entity   string
	EntityID string
	Limit    int
	Offset   int
}

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// Search returns one page, newest first, plus the number of matching rows
	Search(ctx context.Context, filter AuditLogFilter) ([]entity.AuditLog, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
