package converter

import (
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/domain/entity"
)

var roleNames = map[int]string{
	entity.RoleIDAdmin:   "admin",
	entity.RoleIDDoctor:  "doctor",
	entity.RoleIDPatient: "patient",
}

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     roleNames[user.RoleID],
	}
}
