package handler

import (
	"net/http"
	"strconv"

	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/usecase"
	"cycle-booking-service/pkg/response"
	"cycle-booking-service/pkg/validator"

	"github.com/gorilla/mux"
)

type SymptomHandler struct {
	symptomUsecase usecase.SymptomUsecase
	validator      *validator.CustomValidator
}

func NewSymptomHandler(symptomUsecase usecase.SymptomUsecase, validator *validator.CustomValidator) *SymptomHandler {
	return &SymptomHandler{
		symptomUsecase: symptomUsecase,
		validator:      validator,
	}
}

func (h *SymptomHandler) GetSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.symptomUsecase.ListSymptoms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get symptoms")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", symptoms)
}

func (h *SymptomHandler) CreateSymptom(w http.ResponseWriter, r *http.Request) {
	var req dto.SymptomRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	symptom, err := h.symptomUsecase.CreateSymptom(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create symptom")
		return
	}

	response.Success(w, http.StatusCreated, "Symptom created successfully", symptom)
}

func (h *SymptomHandler) UpdateSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogueID(w, r, "Invalid symptom ID")
	if !ok {
		return
	}

	var req dto.SymptomRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	symptom, err := h.symptomUsecase.UpdateSymptom(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update symptom")
		return
	}

	response.Success(w, http.StatusOK, "Symptom updated successfully", symptom)
}

func (h *SymptomHandler) DeleteSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogueID(w, r, "Invalid symptom ID")
	if !ok {
		return
	}

	if err := h.symptomUsecase.DeleteSymptom(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete symptom")
		return
	}

	response.Success(w, http.StatusOK, "Symptom deleted successfully", nil)
}

func (h *SymptomHandler) GetMenstrualFlows(w http.ResponseWriter, r *http.Request) {
	flows, err := h.symptomUsecase.ListMenstrualFlows(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get menstrual flows")
		return
	}

	response.Success(w, http.StatusOK, "Menstrual flows retrieved successfully", flows)
}

func (h *SymptomHandler) CreateMenstrualFlow(w http.ResponseWriter, r *http.Request) {
	var req dto.MenstrualFlowRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	flow, err := h.symptomUsecase.CreateMenstrualFlow(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create menstrual flow")
		return
	}

	response.Success(w, http.StatusCreated, "Menstrual flow created successfully", flow)
}

func (h *SymptomHandler) UpdateMenstrualFlow(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogueID(w, r, "Invalid menstrual flow ID")
	if !ok {
		return
	}

	var req dto.MenstrualFlowRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	flow, err := h.symptomUsecase.UpdateMenstrualFlow(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update menstrual flow")
		return
	}

	response.Success(w, http.StatusOK, "Menstrual flow updated successfully", flow)
}

func (h *SymptomHandler) DeleteMenstrualFlow(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogueID(w, r, "Invalid menstrual flow ID")
	if !ok {
		return
	}

	if err := h.symptomUsecase.DeleteMenstrualFlow(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete menstrual flow")
		return
	}

	response.Success(w, http.StatusOK, "Menstrual flow deleted successfully", nil)
}

func (h *SymptomHandler) LogSymptoms(w http.ResponseWriter, r *http.Request) {
	var req dto.LogSymptomsRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	logged, err := h.symptomUsecase.LogSymptoms(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to log symptoms")
		return
	}

	response.Success(w, http.StatusCreated, "Symptoms logged successfully", logged)
}

func (h *SymptomHandler) GetMySymptomLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.symptomUsecase.GetMySymptomLogs(r.Context(), r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, err, "Failed to get symptom logs")
		return
	}

	response.Success(w, http.StatusOK, "Symptom logs retrieved successfully", logs)
}

func catalogueID(w http.ResponseWriter, r *http.Request, message string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, message, nil)
		return 0, false
	}
	return id, true
}
