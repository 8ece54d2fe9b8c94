package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cycle-booking-service/internal/converter"
	"cycle-booking-service/internal/delivery/dto"
	"cycle-booking-service/internal/delivery/http/middleware"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/internal/service"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const compensationTimeout = 5 * time.Second

type AppointmentUsecase interface {
	BookSlot(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListBookedTimes(ctx context.Context, doctorID string, date string) (*dto.BookedTimesResponse, error)
	RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	MarkCompleted(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListDoctorAppointments(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	ListMyDoctorAppointments(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	clock           clockwork.Clock
	loc             *time.Location
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	slots           SlotReserver
	reminders       ReminderPublisher
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	clock clockwork.Clock,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	slots SlotReserver,
	reminders ReminderPublisher,
	auditService service.AuditService,
) AppointmentUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &appointmentUsecase{
		log:             log,
		clock:           clock,
		loc:             loc,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		slots:           slots,
		reminders:       reminders,
		auditService:    auditService,
	}
}

// BookSlot books one doctor slot for the caller.
//
// Flow:
// 1. Validate input and reject slots in the past
// 2. Resolve the doctor
// 3. Redis SET NX slot reservation (fast path)
// 4. Insert appointment; the unique constraint decides races
// 5. If DB fails for another reason -> compensate: release the Redis reservation
// 6. Publish reminder event and audit, neither gating the response
func (u *appointmentUsecase) BookSlot(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	// Step 1: Validate input
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrInvalidDoctorID
	}
	date, tod, err := parseSlot(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	if past, _ := calendar.IsBeforeNow(date, tod, now, u.loc); past {
		return nil, ErrSlotInPast
	}

	// Step 2: Resolve doctor
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		UserID:          userID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: tod,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusPending,
		PaymentToken:    req.PaymentToken,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	slot := service.SlotOf(appointment)

	// Step 3: Redis slot reservation
	held, err := u.reserve(ctx, slot, appointment.ID)
	if err != nil {
		return nil, err
	}

	// Step 4: Insert appointment
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		u.log.Errorf("Failed to insert appointment to DB, compensating Redis: %+v", err)

		// Step 5: COMPENSATE
		if held {
			u.release(slot, appointment.ID)
		}
		return nil, err
	}

	appointment.Doctor = *doctor

	// Step 6: Side effects
	u.publish(service.ReminderEvent{Kind: service.EventAppointmentBooked, Appointment: snapshot(appointment), Doctor: doctor, OccurredAt: now})

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return response, nil
}

// ListBookedTimes returns the taken HH:MM slots of a doctor on one date, ascending
func (u *appointmentUsecase) ListBookedTimes(ctx context.Context, doctorID string, date string) (*dto.BookedTimesResponse, error) {
	id, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, ErrInvalidDoctorID
	}
	day, err := calendar.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	times, err := u.appointmentRepo.FindBookedTimes(ctx, id, day)
	if err != nil {
		u.log.Warnf("Failed to find booked times for doctor %s: %+v", id, err)
		return nil, err
	}

	booked := make([]string, 0, len(times))
	for _, t := range times {
		booked = append(booked, calendar.NormalizeTimeOfDay(t))
	}
	sort.Strings(booked)

	return &dto.BookedTimesResponse{
		DoctorID:    id,
		Date:        calendar.FormatDate(day),
		BookedTimes: booked,
	}, nil
}

// RescheduleAppointment moves the caller's appointment to a new slot in place
func (u *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil || appointment.UserID != userID {
		return nil, ErrAppointmentNotFound
	}

	date, tod, err := parseSlot(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	if past, _ := calendar.IsBeforeNow(date, tod, now, u.loc); past {
		return nil, ErrSlotInPast
	}
	if !appointment.IsPending() {
		return nil, ErrAppointmentCompleted
	}
	if appointment.SameSlot(date, tod) {
		return converter.AppointmentToResponse(appointment), nil
	}

	oldSlot := service.SlotOf(appointment)
	newSlot := service.Slot{DoctorID: appointment.DoctorID, Date: date, Time: tod}

	held, err := u.reserve(ctx, newSlot, appointment.ID)
	if err != nil {
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(appointment)

	appointment.AppointmentDate = date
	appointment.AppointmentTime = tod
	appointment.UpdatedAt = now

	if err := u.appointmentRepo.UpdateSlot(ctx, appointment); err != nil {
		if held {
			u.release(newSlot, appointment.ID)
		}
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to reschedule appointment %s: %+v", appointment.ID, err)
		return nil, err
	}

	// Free the slot we moved away from
	u.release(oldSlot, appointment.ID)

	var doctor *entity.Doctor
	if appointment.Doctor.ID != uuid.Nil {
		doctor = &appointment.Doctor
	}
	u.publish(service.ReminderEvent{Kind: service.EventAppointmentRescheduled, Appointment: snapshot(appointment), Doctor: doctor, OccurredAt: now})

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionAppointmentReschedule, "appointment", appointment.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// MarkCompleted moves a pending appointment to completed once its date has arrived.
// A doctor's ownership is checked before the date. Completing an already completed appointment returns it unchanged.
func (u *appointmentUsecase) MarkCompleted(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if roleID, _ := middleware.GetRoleIDFromContext(ctx); roleID == entity.RoleIDDoctor {
		doctor, err := u.doctorRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to find doctor for user %s: %+v", userID, err)
			return nil, err
		}
		if doctor == nil || doctor.ID != appointment.DoctorID {
			return nil, ErrNotYourAppointment
		}
	}

	if calendar.IsAfterToday(appointment.AppointmentDate, u.clock.Now(), u.loc) {
		return nil, ErrAppointmentInFuture
	}

	if appointment.IsCompleted() {
		return converter.AppointmentToResponse(appointment), nil
	}

	oldStatus := string(appointment.Status)
	if err := u.appointmentRepo.UpdateStatus(ctx, appointment.ID, entity.AppointmentStatusCompleted); err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointment.ID, err)
		return nil, err
	}
	appointment.Complete()
	appointment.UpdatedAt = u.clock.Now()

	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionAppointmentComplete, "appointment", appointment.ID.String(), oldStatus, string(appointment.Status)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// ListDoctorAppointments lists a doctor's appointments, optionally on one date
func (u *appointmentUsecase) ListDoctorAppointments(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return u.listForDoctor(ctx, doctor.ID, date)
}

// ListMyDoctorAppointments is ListDoctorAppointments for the doctor linked to the caller
func (u *appointmentUsecase) ListMyDoctorAppointments(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}
	return u.listForDoctor(ctx, doctor.ID, date)
}

// GetMyAppointments returns all appointments booked by the caller
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	appointments, err := u.appointmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) listForDoctor(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	var day *time.Time
	if date != "" {
		parsed, err := calendar.ParseDate(date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = &parsed
	}

	appointments, err := u.appointmentRepo.FindByDoctor(ctx, doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// reserve takes the Redis fast-path reservation. It reports whether we now hold the key.
// A held key whose slot is free in the database is stale and ignored; Redis errors
// fall through to the database constraint.
func (u *appointmentUsecase) reserve(ctx context.Context, slot service.Slot, owner uuid.UUID) (bool, error) {
	if u.slots == nil {
		return false, nil
	}

	ok, err := u.slots.Reserve(ctx, slot, owner)
	if err != nil {
		u.log.Warnf("Failed Redis slot reservation for %s, relying on database: %+v", slot.Key(), err)
		return false, nil
	}
	if ok {
		return true, nil
	}

	booked, err := u.appointmentRepo.FindBookedTimes(ctx, slot.DoctorID, slot.Date)
	if err != nil {
		u.log.Warnf("Failed to verify reservation for %s: %+v", slot.Key(), err)
		return false, fmt.Errorf("verify reservation %s: %w", slot.Key(), err)
	}
	for _, t := range booked {
		if calendar.NormalizeTimeOfDay(t) == slot.Time {
			return false, ErrSlotTaken
		}
	}
	u.log.Debugf("Ignoring stale reservation %s", slot.Key())
	return false, nil
}

// release frees a reservation on a detached context so a cancelled request still compensates
func (u *appointmentUsecase) release(slot service.Slot, owner uuid.UUID) {
	if u.slots == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()
	if err := u.slots.Release(ctx, slot, owner); err != nil {
		u.log.Errorf("Failed to release Redis reservation %s: %+v", slot.Key(), err)
	}
}

func (u *appointmentUsecase) publish(event service.ReminderEvent) {
	if u.reminders == nil {
		return
	}
	if err := u.reminders.Publish(event); err != nil {
		u.log.Warnf("Failed to publish %s reminder event: %+v", event.Kind, err)
	}
}

func parseSlot(date, timeOfDay string) (time.Time, string, error) {
	day, err := calendar.ParseDate(date)
	if err != nil {
		return time.Time{}, "", ErrInvalidDate
	}
	tod, err := calendar.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, "", ErrInvalidTime
	}
	return day, tod, nil
}

// snapshot copies the appointment for the dispatcher without its preloaded relations
func snapshot(appointment *entity.Appointment) *entity.Appointment {
	cp := *appointment
	cp.User = entity.User{}
	cp.Doctor = entity.Doctor{}
	return &cp
}
