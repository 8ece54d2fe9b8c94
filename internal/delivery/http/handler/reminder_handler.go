package handler

import (
	"net/http"

	"cycle-booking-service/internal/usecase"
	"cycle-booking-service/pkg/response"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

func (h *ReminderHandler) GetMyReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderUsecase.GetMyReminders(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get reminders")
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}
