package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/internal/service"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errDBDown = errors.New("db down")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeAppointmentRepo enforces the (doctor, date, time) uniqueness under a mutex,
// standing in for the database constraint.
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]entity.Appointment
	doctors      map[uuid.UUID]entity.Doctor
	createErr      error
	updateErr      error
	bookedTimesErr error
}

var _ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: map[uuid.UUID]entity.Appointment{},
		doctors:      map[uuid.UUID]entity.Doctor{},
	}
}

func (r *fakeAppointmentRepo) slotTaken(exclude uuid.UUID, doctorID uuid.UUID, date time.Time, tod string) bool {
	for id, a := range r.appointments {
		if id != exclude && a.DoctorID == doctorID && a.SameSlot(date, tod) {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if r.slotTaken(uuid.Nil, appointment.DoctorID, appointment.AppointmentDate, appointment.AppointmentTime) {
		return repository.ErrSlotTaken
	}
	stored := *appointment
	stored.User, stored.Doctor = entity.User{}, entity.Doctor{}
	r.appointments[appointment.ID] = stored
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	a.Doctor = r.doctors[a.DoctorID]
	return &a, nil
}

func (r *fakeAppointmentRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Appointment, error) {
	return r.filter(func(a entity.Appointment) bool { return a.UserID == userID }), nil
}

func (r *fakeAppointmentRepo) FindByDoctor(_ context.Context, doctorID uuid.UUID, date *time.Time) ([]entity.Appointment, error) {
	return r.filter(func(a entity.Appointment) bool {
		return a.DoctorID == doctorID && (date == nil || calendar.SameDay(a.AppointmentDate, *date))
	}), nil
}

func (r *fakeAppointmentRepo) FindBookedTimes(_ context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	if r.bookedTimesErr != nil {
		return nil, r.bookedTimesErr
	}
	var times []string
	for _, a := range r.filter(func(a entity.Appointment) bool {
		return a.DoctorID == doctorID && calendar.SameDay(a.AppointmentDate, date)
	}) {
		times = append(times, a.AppointmentTime+":00")
	}
	return times, nil
}

func (r *fakeAppointmentRepo) FindUpcoming(_ context.Context, from time.Time, limit, offset int) ([]entity.Appointment, error) {
	all := r.filter(func(a entity.Appointment) bool { return !a.AppointmentDate.Before(from) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeAppointmentRepo) UpdateSlot(_ context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if r.slotTaken(appointment.ID, appointment.DoctorID, appointment.AppointmentDate, appointment.AppointmentTime) {
		return repository.ErrSlotTaken
	}
	stored := r.appointments[appointment.ID]
	stored.AppointmentDate = appointment.AppointmentDate
	stored.AppointmentTime = appointment.AppointmentTime
	stored.UpdatedAt = appointment.UpdatedAt
	r.appointments[appointment.ID] = stored
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.appointments[id]
	stored.Status = status
	r.appointments[id] = stored
	return nil
}

func (r *fakeAppointmentRepo) filter(keep func(entity.Appointment) bool) []entity.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Appointment
	for _, a := range r.appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppointmentDate.Equal(out[j].AppointmentDate) {
			return out[i].AppointmentDate.Before(out[j].AppointmentDate)
		}
		return out[i].AppointmentTime < out[j].AppointmentTime
	})
	return out
}

func (r *fakeAppointmentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appointments)
}

type fakeDoctorRepo struct {
	mu      sync.Mutex
	doctors map[uuid.UUID]entity.Doctor
}

var _ repository.DoctorRepository = (*fakeDoctorRepo)(nil)

func newFakeDoctorRepo(doctors ...entity.Doctor) *fakeDoctorRepo {
	r := &fakeDoctorRepo{doctors: map[uuid.UUID]entity.Doctor{}}
	for _, d := range doctors {
		r.doctors[d.ID] = d
	}
	return r
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *fakeDoctorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.doctors {
		if d.UserID != nil && *d.UserID == userID {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.Create(ctx, doctor)
}

type fakeUserRepo struct {
	users map[uuid.UUID]entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]entity.User, error) {
	var out []entity.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateCycleProfile(_ context.Context, user *entity.User) error {
	r.users[user.ID] = *user
	return nil
}

type fakePeriodLogRepo struct {
	logs       map[uuid.UUID][]time.Time
	replaceErr error
	replaces   int
}

var _ repository.PeriodLogRepository = (*fakePeriodLogRepo)(nil)

func newFakePeriodLogRepo() *fakePeriodLogRepo {
	return &fakePeriodLogRepo{logs: map[uuid.UUID][]time.Time{}}
}

func (r *fakePeriodLogRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.PeriodLog, error) {
	var out []entity.PeriodLog
	for _, d := range r.logs[userID] {
		out = append(out, entity.PeriodLog{UserID: userID, Date: d})
	}
	return out, nil
}

func (r *fakePeriodLogRepo) FindLatest(_ context.Context, userID uuid.UUID) (*entity.PeriodLog, error) {
	dates := r.logs[userID]
	if len(dates) == 0 {
		return nil, nil
	}
	latest := dates[0]
	for _, d := range dates {
		if d.After(latest) {
			latest = d
		}
	}
	return &entity.PeriodLog{UserID: userID, Date: latest}, nil
}

func (r *fakePeriodLogRepo) ReplaceForUser(_ context.Context, userID uuid.UUID, dates []time.Time) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.replaces++
	r.logs[userID] = append([]time.Time(nil), dates...)
	return nil
}

// fakeSlotReserver mirrors SlotReservationService semantics in memory
type fakeSlotReserver struct {
	mu       sync.Mutex
	keys     map[string]uuid.UUID
	err      error
	released []string
}

func newFakeSlotReserver() *fakeSlotReserver {
	return &fakeSlotReserver{keys: map[string]uuid.UUID{}}
}

func (s *fakeSlotReserver) Reserve(_ context.Context, slot service.Slot, owner uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	if _, taken := s.keys[slot.Key()]; taken {
		return false, nil
	}
	s.keys[slot.Key()] = owner
	return true, nil
}

func (s *fakeSlotReserver) Release(_ context.Context, slot service.Slot, owner uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.keys[slot.Key()] == owner {
		delete(s.keys, slot.Key())
		s.released = append(s.released, slot.Key())
	}
	return nil
}

func (s *fakeSlotReserver) holds(slot service.Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[slot.Key()]
	return ok
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.ReminderEvent
	err    error
}

func (p *recordingPublisher) Publish(event service.ReminderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) all() []service.ReminderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]service.ReminderEvent(nil), p.events...)
}

type fakeAuditService struct {
	mu      sync.Mutex
	actions []string
}

var _ service.AuditService = (*fakeAuditService)(nil)

func (s *fakeAuditService) LogCreate(_ context.Context, _ *uuid.UUID, action string, _ string, _ string, _ interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
	return nil
}

func (s *fakeAuditService) LogUpdate(_ context.Context, _ *uuid.UUID, action string, _ string, _ string, _, _ interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
	return nil
}

// fakeSymptomRepo keeps the catalogue and logs in memory; names and
// (user, symptom, date) are unique like the schema.
type fakeSymptomRepo struct {
	mu       sync.Mutex
	nextID   int64
	symptoms map[int64]entity.Symptom
	logs     []entity.SymptomLog
	logErr   error
}

var _ repository.SymptomRepository = (*fakeSymptomRepo)(nil)

func newFakeSymptomRepo(names ...string) *fakeSymptomRepo {
	r := &fakeSymptomRepo{symptoms: map[int64]entity.Symptom{}}
	for _, name := range names {
		_ = r.Create(context.Background(), &entity.Symptom{Name: name})
	}
	return r
}

func (r *fakeSymptomRepo) nameTaken(id int64, name string) bool {
	for _, s := range r.symptoms {
		if s.ID != id && s.Name == name {
			return true
		}
	}
	return false
}

func (r *fakeSymptomRepo) Create(_ context.Context, symptom *entity.Symptom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(0, symptom.Name) {
		return repository.ErrDuplicateName
	}
	r.nextID++
	symptom.ID = r.nextID
	r.symptoms[symptom.ID] = *symptom
	return nil
}

func (r *fakeSymptomRepo) Update(_ context.Context, symptom *entity.Symptom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(symptom.ID, symptom.Name) {
		return repository.ErrDuplicateName
	}
	r.symptoms[symptom.ID] = *symptom
	return nil
}

func (r *fakeSymptomRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.symptoms[id]; !ok {
		return false, nil
	}
	delete(r.symptoms, id)
	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.SymptomID != id {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return true, nil
}

func (r *fakeSymptomRepo) FindByID(_ context.Context, id int64) (*entity.Symptom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.symptoms[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSymptomRepo) FindByIDs(_ context.Context, ids []int64) ([]entity.Symptom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Symptom
	for _, id := range ids {
		if s, ok := r.symptoms[id]; ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeSymptomRepo) FindAll(_ context.Context) ([]entity.Symptom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Symptom, 0, len(r.symptoms))
	for _, s := range r.symptoms {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeSymptomRepo) CreateLogs(_ context.Context, logs []entity.SymptomLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.logErr != nil {
		return r.logErr
	}
	for _, l := range logs {
		dup := false
		for _, existing := range r.logs {
			if existing.UserID == l.UserID && existing.SymptomID == l.SymptomID && existing.Date.Equal(l.Date) {
				dup = true
				break
			}
		}
		if !dup {
			r.logs = append(r.logs, l)
		}
	}
	return nil
}

func (r *fakeSymptomRepo) FindLogsByUser(_ context.Context, userID uuid.UUID, from *time.Time) ([]entity.SymptomLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.SymptomLog
	for _, l := range r.logs {
		if l.UserID != userID || (from != nil && l.Date.Before(*from)) {
			continue
		}
		l.Symptom = r.symptoms[l.SymptomID]
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].SymptomID < out[j].SymptomID
	})
	return out, nil
}

type fakeMenstrualFlowRepo struct {
	mu     sync.Mutex
	nextID int64
	flows  map[int64]entity.MenstrualFlow
}

var _ repository.MenstrualFlowRepository = (*fakeMenstrualFlowRepo)(nil)

func newFakeMenstrualFlowRepo() *fakeMenstrualFlowRepo {
	return &fakeMenstrualFlowRepo{flows: map[int64]entity.MenstrualFlow{}}
}

func (r *fakeMenstrualFlowRepo) labelTaken(id int64, label string) bool {
	for _, f := range r.flows {
		if f.ID != id && f.Label == label {
			return true
		}
	}
	return false
}

func (r *fakeMenstrualFlowRepo) Create(_ context.Context, flow *entity.MenstrualFlow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.labelTaken(0, flow.Label) {
		return repository.ErrDuplicateName
	}
	r.nextID++
	flow.ID = r.nextID
	r.flows[flow.ID] = *flow
	return nil
}

func (r *fakeMenstrualFlowRepo) Update(_ context.Context, flow *entity.MenstrualFlow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.labelTaken(flow.ID, flow.Label) {
		return repository.ErrDuplicateName
	}
	r.flows[flow.ID] = *flow
	return nil
}

func (r *fakeMenstrualFlowRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.flows[id]; !ok {
		return false, nil
	}
	delete(r.flows, id)
	return true, nil
}

func (r *fakeMenstrualFlowRepo) FindByID(_ context.Context, id int64) (*entity.MenstrualFlow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.flows[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *fakeMenstrualFlowRepo) FindAll(_ context.Context) ([]entity.MenstrualFlow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.MenstrualFlow, 0, len(r.flows))
	for _, f := range r.flows {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
