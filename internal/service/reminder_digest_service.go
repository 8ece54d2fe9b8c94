package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const digestRunTimeout = 5 * time.Minute

// Notifier delivers one message to one recipient address
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ReminderDigestService emails each user one summary of the reminders dated today.
type ReminderDigestService struct {
	spec         string
	reminderRepo repository.ReminderRepository
	userRepo     repository.UserRepository
	notifier     Notifier
	clock        clockwork.Clock
	loc          *time.Location
	log          *logrus.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

func NewReminderDigestService(
	spec string,
	reminderRepo repository.ReminderRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	clock clockwork.Clock,
	loc *time.Location,
	log *logrus.Logger,
) *ReminderDigestService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderDigestService{
		spec:         spec,
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		clock:        clock,
		loc:          loc,
		log:          log,
	}
}

// Start schedules RunDaily on the configured cron spec in the service timezone.
func (s *ReminderDigestService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}

	c := cron.New(cron.WithLocation(s.loc))
	if _, err := c.AddFunc(s.spec, s.runScheduled); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", s.spec, err)
	}
	c.Start()
	s.cron = c

	s.log.Infof("Reminder digest scheduled at %q (%s)", s.spec, s.loc)
	return nil
}

// Stop waits for a running digest to finish. Safe to call multiple times.
func (s *ReminderDigestService) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	s.log.Info("Reminder digest stopped")
}

func (s *ReminderDigestService) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), digestRunTimeout)
	defer cancel()

	sent, err := s.RunDaily(ctx)
	if err != nil {
		s.log.Warnf("Failed to run reminder digest: %+v", err)
		return
	}
	s.log.Infof("Reminder digest sent to %d users", sent)
}

// RunDaily sends today's digest and returns how many users were notified.
// A failed delivery is logged and does not stop the others.
func (s *ReminderDigestService) RunDaily(ctx context.Context) (int, error) {
	today := calendar.Today(s.clock.Now(), s.loc)

	reminders, err := s.reminderRepo.FindByDate(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("load reminders for %s: %w", calendar.FormatDate(today), err)
	}
	if len(reminders) == 0 {
		return 0, nil
	}

	byUser := make(map[uuid.UUID][]entity.Reminder)
	userIDs := make([]uuid.UUID, 0)
	for _, r := range reminders {
		if _, seen := byUser[r.UserID]; !seen {
			userIDs = append(userIDs, r.UserID)
		}
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return 0, fmt.Errorf("load digest recipients: %w", err)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })

	sent := 0
	for _, user := range users {
		if !user.IsActive || user.Email == "" {
			continue
		}
		subject := fmt.Sprintf("Your reminders for %s", calendar.FormatDate(today))
		body := digestBody(user, byUser[user.ID])

		if err := s.notifier.Send(ctx, user.Email, subject, body); err != nil {
			s.log.Warnf("Failed to send reminder digest to user %s: %+v", user.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

func digestBody(user entity.User, reminders []entity.Reminder) string {
	sort.SliceStable(reminders, func(i, j int) bool { return reminders[i].Time < reminders[j].Time })

	var b strings.Builder
	name := user.FullName
	if name == "" {
		name = user.Email
	}
	fmt.Fprintf(&b, "Hi %s,\n\nHere is what is coming up today:\n\n", name)
	for _, r := range reminders {
		fmt.Fprintf(&b, "- %s %s: %s\n", r.Time, r.ReminderType.Label(), r.Message)
	}
	return b.String()
}
