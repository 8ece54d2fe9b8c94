package dto

import "time"

// AuditLogQuery is bound from query parameters on GET /admin/audit-logs
type AuditLogQuery struct {
	Action   string `json:"action" validate:"omitempty,max=100"`
	UserID   string `json:"user_id" validate:"omitempty,uuid"`
	Entity   string `json:"entity" validate:"omitempty,max=50"`
	EntityID string `json:"entity_id" validate:"omitempty,max=100"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=200"`
	Offset   int    `json:"offset" validate:"omitempty,min=0"`
}

type AuditLogResponse struct {
	ID        int64         `json:"id"`
	User      *UserResponse `json:"user,omitempty"`
	Action    string        `json:"action"`
	Entity    string        `json:"entity,omitempty"`
	EntityID  string        `json:"entity_id,omitempty"`
	OldValue  interface{}   `json:"old_value,omitempty"`
	NewValue  interface{}   `json:"new_value,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs   []AuditLogResponse `json:"logs"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
