package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errStoreDown = errors.New("store down")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeReminderRepo struct {
	mu        sync.Mutex
	reminders []entity.Reminder
	failWith  error
}

var _ repository.ReminderRepository = (*fakeReminderRepo)(nil)

func (r *fakeReminderRepo) CreateBatch(_ context.Context, reminders []entity.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	for i := range reminders {
		reminders[i].ID = int64(len(r.reminders) + 1)
		r.reminders = append(r.reminders, reminders[i])
	}
	return nil
}

func (r *fakeReminderRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Reminder
	for _, reminder := range r.reminders {
		if reminder.UserID == userID {
			out = append(out, reminder)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) FindByDate(_ context.Context, date time.Time) ([]entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []entity.Reminder
	for _, reminder := range r.reminders {
		if calendar.SameDay(reminder.Date, date) {
			out = append(out, reminder)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) all() []entity.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Reminder(nil), r.reminders...)
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

var _ repository.DoctorRepository = (*fakeDoctorRepo)(nil)

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	if r.doctors == nil {
		r.doctors = map[uuid.UUID]*entity.Doctor{}
	}
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDoctorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Doctor, error) {
	for _, doctor := range r.doctors {
		if doctor.UserID != nil && *doctor.UserID == userID {
			return doctor, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(r.doctors))
	for _, doctor := range r.doctors {
		out = append(out, *doctor)
	}
	return out, nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.Create(ctx, doctor)
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]entity.User, error) {
	var out []entity.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateCycleProfile(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeAuditRepo struct {
	mu   sync.Mutex
	logs []entity.AuditLog
}

var _ repository.AuditLogRepository = (*fakeAuditRepo)(nil)

func (r *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = int64(len(r.logs) + 1)
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAuditRepo) Search(_ context.Context, _ repository.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logs, int64(len(r.logs)), nil
}

func (r *fakeAuditRepo) FindByID(_ context.Context, id int64) (*entity.AuditLog, error) {
	for i := range r.logs {
		if r.logs[i].ID == id {
			return &r.logs[i], nil
		}
	}
	return nil, nil
}
