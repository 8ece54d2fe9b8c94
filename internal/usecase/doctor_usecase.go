package usecase

import (
	"context"
	"errors"

	"cycle-booking-service/internal/converter"
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/delivery/http/middleware"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/internal/service"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultDoctorRating = 4.5

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// CreateDoctor adds a doctor to the directory (admin only)
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if req.ConsultationFee.IsNegative() {
		return nil, ErrInvalidFee
	}

	doctor := &entity.Doctor{
		ID:              uuid.New(),
		Name:            req.Name,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		Phone:           req.Phone,
		Education:       req.Education,
		About:           req.About,
		Rating:          defaultDoctorRating,
		AvailableDays:   calendar.JoinList(req.AvailableDays),
		AvailableTime:   calendar.JoinList(req.AvailableTime),
		ConsultationFee: req.ConsultationFee,
	}
	if req.Rating != nil {
		doctor.Rating = *req.Rating
	}

	if req.UserID != nil {
		userID, err := u.linkableUser(ctx, *req.UserID, uuid.Nil)
		if err != nil {
			return nil, err
		}
		doctor.UserID = &userID
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrUserLinked) {
			return nil, ErrUserAlreadyLinked
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	response := converter.DoctorToResponse(doctor)

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &actorID, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

// UpdateDoctor applies a partial update (admin only)
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)

	if req.UserID != nil {
		userID, err := u.linkableUser(ctx, *req.UserID, doctor.ID)
		if err != nil {
			return nil, err
		}
		doctor.UserID = &userID
	}
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.Location != nil {
		doctor.Location = *req.Location
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Education != nil {
		doctor.Education = *req.Education
	}
	if req.About != nil {
		doctor.About = *req.About
	}
	if req.Rating != nil {
		doctor.Rating = *req.Rating
	}
	if req.AvailableDays != nil {
		doctor.AvailableDays = calendar.JoinList(req.AvailableDays)
	}
	if req.AvailableTime != nil {
		doctor.AvailableTime = calendar.JoinList(req.AvailableTime)
	}
	if req.ConsultationFee != nil {
		if req.ConsultationFee.IsNegative() {
			return nil, ErrInvalidFee
		}
		doctor.ConsultationFee = *req.ConsultationFee
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrUserLinked) {
			return nil, ErrUserAlreadyLinked
		}
		u.log.Warnf("Failed to update doctor %s: %+v", doctorID, err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionDoctorUpdate, "doctor", doctor.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// linkableUser checks the user exists and is not linked to a doctor other than self
func (u *doctorUsecase) linkableUser(ctx context.Context, rawID string, self uuid.UUID) (uuid.UUID, error) {
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, ErrInvalidInput
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUserNotFound
	}

	linked, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %s: %+v", userID, err)
		return uuid.Nil, err
	}
	if linked != nil && linked.ID != self {
		return uuid.Nil, ErrUserAlreadyLinked
	}

	return userID, nil
}
