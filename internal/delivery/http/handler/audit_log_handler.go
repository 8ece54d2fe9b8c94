package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/usecase"
	"cycle-booking-service/pkg/response"
	"cycle-booking-service/pkg/validator"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	validator       *validator.CustomValidator
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, validator *validator.CustomValidator) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		validator:       validator,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		writeError(w, err, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) SearchAuditLogs(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := dto.AuditLogQuery{
		Action:   values.Get("action"),
		UserID:   values.Get("user_id"),
		Entity:   values.Get("entity"),
		EntityID: values.Get("entity_id"),
	}
	var ok bool
	if query.Limit, ok = intParam(values, "limit"); !ok {
		response.BadRequest(w, "limit must be an integer")
		return
	}
	if query.Offset, ok = intParam(values, "offset"); !ok {
		response.BadRequest(w, "offset must be an integer")
		return
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	logs, err := h.auditLogUsecase.SearchAuditLogs(r.Context(), &query)
	if err != nil {
		writeError(w, err, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

// intParam returns 0 for an absent parameter
func intParam(values url.Values, key string) (int, bool) {
	raw := values.Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
