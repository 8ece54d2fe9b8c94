package converter

import (
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// The payment token itself is never echoed back.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		UserID:          appointment.UserID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: calendar.FormatDate(appointment.AppointmentDate),
		AppointmentTime: appointment.AppointmentTime,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		HasPaymentToken: appointment.PaymentToken != nil && *appointment.PaymentToken != "",
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include relations if preloaded
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}
	if appointment.User.ID != uuid.Nil {
		response.Patient = UserToResponse(&appointment.User)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
