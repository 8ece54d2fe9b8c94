package handler

import (
	"net/http"

	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/usecase"
	"cycle-booking-service/pkg/response"
	"cycle-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.BookSlot(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) GetBookedTimes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	doctorID := query.Get("doctor_id")
	date := query.Get("date")
	if doctorID == "" || date == "" {
		response.BadRequest(w, "doctor_id and date are required")
		return
	}

	booked, err := h.appointmentUsecase.ListBookedTimes(r.Context(), doctorID, date)
	if err != nil {
		writeError(w, err, "Failed to get booked times")
		return
	}

	response.Success(w, http.StatusOK, "Booked times retrieved successfully", booked)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.RescheduleAppointmentRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.RescheduleAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		writeError(w, err, "Failed to reschedule appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.MarkCompleted(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err, "Failed to complete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

// GetDoctorAppointments serves the admin view of one doctor's calendar
func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListDoctorAppointments(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetMyDoctorAppointments serves the calendar of the doctor linked to the caller
func (h *AppointmentHandler) GetMyDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListMyDoctorAppointments(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
