package converter

import (
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		UserID:          doctor.UserID,
		Name:            doctor.Name,
		Specialization:  doctor.Specialization,
		ExperienceYears: doctor.ExperienceYears,
		Location:        doctor.Location,
		Phone:           doctor.Phone,
		Education:       doctor.Education,
		About:           doctor.About,
		Rating:          doctor.Rating,
		AvailableDays:   calendar.SplitList(doctor.AvailableDays),
		AvailableTime:   calendar.SplitList(doctor.AvailableTime),
		ConsultationFee: doctor.ConsultationFee,
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
