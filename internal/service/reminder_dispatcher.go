package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

var (
	// ErrQueueFull is returned by Publish when the buffer has no room
	ErrQueueFull = errors.New("reminder queue is full")
	// ErrDispatcherStopped is returned by Publish after Stop
	ErrDispatcherStopped = errors.New("reminder dispatcher stopped")
)

// EventKind names the domain event that triggers reminder creation
type EventKind string

const (
	EventAppointmentBooked      EventKind = "appointment_booked"
	EventAppointmentRescheduled EventKind = "appointment_rescheduled"
	EventPeriodLogged           EventKind = "period_logged"
)

const reminderHandleTimeout = 10 * time.Second

// ReminderEvent carries what the rules need. Appointment events set Appointment (and
// optionally Doctor); period events set UserID, LatestPeriod and Profile.
type ReminderEvent struct {
	Kind         EventKind
	Appointment  *entity.Appointment
	Doctor       *entity.Doctor
	UserID       uuid.UUID
	LatestPeriod time.Time
	Profile      entity.CycleProfile
	OccurredAt   time.Time
}

type DispatcherConfig struct {
	Workers   int
	QueueSize int
}

// ReminderDispatcher is a buffered worker pool turning events into reminder rows.
// Failures are logged and never reach the publisher.
type ReminderDispatcher struct {
	rules        *ReminderRules
	reminderRepo repository.ReminderRepository
	doctorRepo   repository.DoctorRepository
	clock        clockwork.Clock
	log          *logrus.Logger

	workers int
	queue   chan ReminderEvent

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

func NewReminderDispatcher(
	cfg DispatcherConfig,
	rules *ReminderRules,
	reminderRepo repository.ReminderRepository,
	doctorRepo repository.DoctorRepository,
	clock clockwork.Clock,
	log *logrus.Logger,
) *ReminderDispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	return &ReminderDispatcher{
		rules:        rules,
		reminderRepo: reminderRepo,
		doctorRepo:   doctorRepo,
		clock:        clock,
		log:          log,
		workers:      cfg.Workers,
		queue:        make(chan ReminderEvent, cfg.QueueSize),
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (d *ReminderDispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	d.log.Infof("Reminder dispatcher started with %d workers", d.workers)
}

// Publish enqueues event without blocking.
func (d *ReminderDispatcher) Publish(event ReminderEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = d.clock.Now()
	}

	select {
	case d.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue, lets the workers drain what is pending and waits for them.
// Safe to call multiple times.
func (d *ReminderDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		// nobody is consuming; drain inline so queued events are not lost
		for event := range d.queue {
			d.process(event)
		}
	}
	d.wg.Wait()
	d.log.Info("Reminder dispatcher stopped")
}

// Handle derives and stores the reminders for one event synchronously.
func (d *ReminderDispatcher) Handle(ctx context.Context, event ReminderEvent) error {
	now := event.OccurredAt
	if now.IsZero() {
		now = d.clock.Now()
	}

	var (
		reminders []entity.Reminder
		err       error
	)

	switch event.Kind {
	case EventAppointmentBooked, EventAppointmentRescheduled:
		if event.Appointment == nil {
			return fmt.Errorf("%s event without appointment", event.Kind)
		}
		doctor, derr := d.resolveDoctor(ctx, event)
		if derr != nil {
			return derr
		}
		if event.Kind == EventAppointmentBooked {
			reminders, err = d.rules.ForBooking(event.Appointment, doctor, now)
		} else {
			reminders, err = d.rules.ForReschedule(event.Appointment, doctor, now)
		}
	case EventPeriodLogged:
		if event.LatestPeriod.IsZero() {
			return nil
		}
		reminders = d.rules.ForPeriodLog(event.UserID, event.LatestPeriod, event.Profile, now)
	default:
		return fmt.Errorf("unknown reminder event %q", event.Kind)
	}
	if err != nil {
		return fmt.Errorf("derive reminders for %s: %w", event.Kind, err)
	}
	if len(reminders) == 0 {
		return nil
	}

	if err := d.reminderRepo.CreateBatch(ctx, reminders); err != nil {
		return fmt.Errorf("store %d reminders: %w", len(reminders), err)
	}
	return nil
}

func (d *ReminderDispatcher) work(id int) {
	defer d.wg.Done()
	for event := range d.queue {
		d.process(event)
	}
	d.log.Debugf("Reminder worker %d stopping", id)
}

func (d *ReminderDispatcher) process(event ReminderEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), reminderHandleTimeout)
	defer cancel()

	if err := d.Handle(ctx, event); err != nil {
		d.log.Warnf("Failed to create reminders for %s: %+v", event.Kind, err)
	}
}

func (d *ReminderDispatcher) resolveDoctor(ctx context.Context, event ReminderEvent) (*entity.Doctor, error) {
	if event.Doctor != nil {
		return event.Doctor, nil
	}
	doctor, err := d.doctorRepo.FindByID(ctx, event.Appointment.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor %s: %w", event.Appointment.DoctorID, err)
	}
	return doctor, nil
}
