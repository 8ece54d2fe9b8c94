package handler

import (
	"net/http"

	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/usecase"
	"cycle-booking-service/pkg/response"
	"cycle-booking-service/pkg/validator"
)

type CycleHandler struct {
	cycleUsecase usecase.CycleUsecase
	validator    *validator.CustomValidator
}

func NewCycleHandler(cycleUsecase usecase.CycleUsecase, validator *validator.CustomValidator) *CycleHandler {
	return &CycleHandler{
		cycleUsecase: cycleUsecase,
		validator:    validator,
	}
}

func (h *CycleHandler) GetPeriodLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.cycleUsecase.GetPeriodLogs(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get period logs")
		return
	}

	response.Success(w, http.StatusOK, "Period logs retrieved successfully", logs)
}

func (h *CycleHandler) ReplacePeriodLogs(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplacePeriodLogsRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	logs, err := h.cycleUsecase.ReplacePeriodLogs(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to save period logs")
		return
	}

	response.Success(w, http.StatusOK, "Period logs saved successfully", logs)
}

func (h *CycleHandler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	prediction, err := h.cycleUsecase.PredictCycle(r.Context())
	if err != nil {
		writeError(w, err, "Failed to predict cycle")
		return
	}

	response.Success(w, http.StatusOK, "Prediction retrieved successfully", prediction)
}

func (h *CycleHandler) UpdateCycleProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCycleProfileRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	profile, err := h.cycleUsecase.UpdateCycleProfile(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to update cycle profile")
		return
	}

	response.Success(w, http.StatusOK, "Cycle profile updated successfully", profile)
}
