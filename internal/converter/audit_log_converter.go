package converter

import (
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/entity"
)

// AuditLogToResponse flattens the metadata envelope written by the audit service.
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        log.ID,
		User:      UserToResponse(log.User),
		Action:    log.Action,
		OldValue:  log.Metadata["old_value"],
		NewValue:  log.Metadata["new_value"],
		CreatedAt: log.CreatedAt,
	}
	if s, ok := log.Metadata["entity"].(string); ok {
		resp.Entity = s
	}
	if s, ok := log.Metadata["entity_id"].(string); ok {
		resp.EntityID = s
	}
	return resp
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}
