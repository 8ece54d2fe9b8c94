package service

import (
	"fmt"
	"time"

	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
)

const (
	doctorDayReminderTime = "08:00"
	appointmentLeadTime   = 2 * time.Hour

	fertileReminderLeadDays   = 1
	ovulationReminderLeadDays = 2
)

// ReminderRules derives reminder rows from domain events. It never touches storage.
type ReminderRules struct {
	predictor *CyclePredictor
	loc       *time.Location
}

func NewReminderRules(predictor *CyclePredictor, loc *time.Location) *ReminderRules {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderRules{predictor: predictor, loc: loc}
}

// ForBooking returns the doctor's "new appointment" and "day of" reminders plus the
// patient's reminder two hours before the slot. Doctor reminders need a linked user.
func (r *ReminderRules) ForBooking(appointment *entity.Appointment, doctor *entity.Doctor, now time.Time) ([]entity.Reminder, error) {
	slot, err := calendar.Combine(appointment.AppointmentDate, appointment.AppointmentTime, r.loc)
	if err != nil {
		return nil, err
	}
	slotLabel := r.slotLabel(appointment)
	today, nowTime := r.nowParts(now)

	var reminders []entity.Reminder
	if doctor != nil && doctor.HasLinkedUser() {
		reminders = append(reminders,
			entity.Reminder{
				UserID:       *doctor.UserID,
				ReminderType: entity.ReminderDoctorNewAppointment,
				Message:      fmt.Sprintf("New appointment booked for %s", slotLabel),
				Date:         today,
				Time:         nowTime,
			},
			entity.Reminder{
				UserID:       *doctor.UserID,
				ReminderType: entity.ReminderDoctorDayReminder,
				Message:      fmt.Sprintf("You have an appointment today at %s", appointment.AppointmentTime),
				Date:         calendar.DateOf(appointment.AppointmentDate),
				Time:         doctorDayReminderTime,
			},
		)
	}

	reminders = append(reminders, r.appointmentReminder(appointment.UserID, doctor, slot, slotLabel))
	return reminders, nil
}

// ForReschedule notifies patient and doctor of the move and re-arms the patient's
// two-hour reminder for the new slot.
func (r *ReminderRules) ForReschedule(appointment *entity.Appointment, doctor *entity.Doctor, now time.Time) ([]entity.Reminder, error) {
	slot, err := calendar.Combine(appointment.AppointmentDate, appointment.AppointmentTime, r.loc)
	if err != nil {
		return nil, err
	}
	slotLabel := r.slotLabel(appointment)
	today, nowTime := r.nowParts(now)

	reminders := []entity.Reminder{{
		UserID:       appointment.UserID,
		ReminderType: entity.ReminderAppointmentRescheduled,
		Message:      fmt.Sprintf("Your appointment%s was moved to %s", withDoctor(doctor), slotLabel),
		Date:         today,
		Time:         nowTime,
	}}
	if doctor != nil && doctor.HasLinkedUser() {
		reminders = append(reminders, entity.Reminder{
			UserID:       *doctor.UserID,
			ReminderType: entity.ReminderDoctorRescheduled,
			Message:      fmt.Sprintf("An appointment was rescheduled to %s", slotLabel),
			Date:         today,
			Time:         nowTime,
		})
	}

	reminders = append(reminders, r.appointmentReminder(appointment.UserID, doctor, slot, slotLabel))
	return reminders, nil
}

// ForPeriodLog projects the next cycle from latest and reminds the user a day before the
// fertile window and two days before ovulation.
func (r *ReminderRules) ForPeriodLog(userID uuid.UUID, latest time.Time, profile entity.CycleProfile, now time.Time) []entity.Reminder {
	next := r.predictor.PredictNextCycle(latest, profile)
	_, nowTime := r.nowParts(now)

	return []entity.Reminder{
		{
			UserID:       userID,
			ReminderType: entity.ReminderFertileWindowStart,
			Message: fmt.Sprintf("Your fertile window starts on %s and lasts until %s",
				calendar.FormatDate(next.FertileStart), calendar.FormatDate(next.FertileEnd)),
			Date: calendar.AddDays(next.FertileStart, -fertileReminderLeadDays),
			Time: nowTime,
		},
		{
			UserID:       userID,
			ReminderType: entity.ReminderOvulationDay,
			Message:      fmt.Sprintf("Your ovulation day is expected on %s", calendar.FormatDate(next.OvulationDay)),
			Date:         calendar.AddDays(next.OvulationDay, -ovulationReminderLeadDays),
			Time:         nowTime,
		},
	}
}

func (r *ReminderRules) appointmentReminder(userID uuid.UUID, doctor *entity.Doctor, slot time.Time, slotLabel string) entity.Reminder {
	date, tod := calendar.SplitDateTime(slot.Add(-appointmentLeadTime), r.loc)
	return entity.Reminder{
		UserID:       userID,
		ReminderType: entity.ReminderAppointmentReminder,
		Message:      fmt.Sprintf("Upcoming appointment%s on %s", withDoctor(doctor), slotLabel),
		Date:         date,
		Time:         tod,
	}
}

// nowParts returns today's date and the current time truncated to the minute, in loc.
func (r *ReminderRules) nowParts(now time.Time) (time.Time, string) {
	return calendar.SplitDateTime(now.Truncate(time.Minute), r.loc)
}

func (r *ReminderRules) slotLabel(appointment *entity.Appointment) string {
	return fmt.Sprintf("%s at %s", calendar.FormatDate(appointment.AppointmentDate), appointment.AppointmentTime)
}

func withDoctor(doctor *entity.Doctor) string {
	if doctor == nil || doctor.Name == "" {
		return ""
	}
	return " with " + doctor.Name
}
