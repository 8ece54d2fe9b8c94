package service

import (
	"context"
	"fmt"
	"time"

	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// releaseIfOwnerScript deletes a slot key only when it still holds the caller's
// appointment id, so a late compensation never frees someone else's reservation.
var releaseIfOwnerScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// RedisSlotKeyPrefix prefixes slot:booked:{doctor}:{date}:{time}
	RedisSlotKeyPrefix = "slot:booked:"

	// Batch size for startup sync; one pipeline per batch
	syncBatchSize = 500

	minSlotTTL = 1 * time.Minute
)

// Slot identifies one doctor's time slot on a calendar date
type Slot struct {
	DoctorID uuid.UUID
	Date     time.Time
	Time     string
}

func (s Slot) Key() string {
	return fmt.Sprintf("%s%s:%s:%s", RedisSlotKeyPrefix, s.DoctorID, calendar.FormatDate(s.Date), s.Time)
}

// SlotOf returns the slot an appointment occupies
func SlotOf(appointment *entity.Appointment) Slot {
	return Slot{DoctorID: appointment.DoctorID, Date: appointment.AppointmentDate, Time: appointment.AppointmentTime}
}

// UpcomingAppointmentFinder pages through appointments dated on or after from
type UpcomingAppointmentFinder interface {
	FindUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]entity.Appointment, error)
}

// SlotReservationService keeps a Redis mirror of booked slots. It is a fast-path filter
// in front of the database unique constraint, which stays authoritative.
type SlotReservationService struct {
	redisClient *redis.Client
	finder      UpcomingAppointmentFinder
	clock       clockwork.Clock
	loc         *time.Location
	log         *logrus.Logger
}

func NewSlotReservationService(
	redisClient *redis.Client,
	finder UpcomingAppointmentFinder,
	clock clockwork.Clock,
	loc *time.Location,
	log *logrus.Logger,
) *SlotReservationService {
	if loc == nil {
		loc = time.UTC
	}
	return &SlotReservationService{
		redisClient: redisClient,
		finder:      finder,
		clock:       clock,
		loc:         loc,
		log:         log,
	}
}

// Reserve marks slot as taken by owner with SET NX. It returns false when another
// owner already holds the slot.
func (s *SlotReservationService) Reserve(ctx context.Context, slot Slot, owner uuid.UUID) (bool, error) {
	ok, err := s.redisClient.SetNX(ctx, slot.Key(), owner.String(), s.calculateTTL(slot.Date)).Result()
	if err != nil {
		return false, fmt.Errorf("reserve slot %s: %w", slot.Key(), err)
	}
	if !ok {
		s.log.Debugf("Slot %s already reserved", slot.Key())
	}
	return ok, nil
}

// Release frees slot if owner still holds it.
func (s *SlotReservationService) Release(ctx context.Context, slot Slot, owner uuid.UUID) error {
	if err := releaseIfOwnerScript.Run(ctx, s.redisClient, []string{slot.Key()}, owner.String()).Err(); err != nil {
		return fmt.Errorf("release slot %s: %w", slot.Key(), err)
	}
	s.log.Debugf("Released slot %s", slot.Key())
	return nil
}

// SyncOnStartup rebuilds slot keys for every appointment dated today or later.
// Should be called before accepting traffic.
func (s *SlotReservationService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting Redis slot re-sync from database...")
	startTime := s.clock.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	today := calendar.Today(s.clock.Now(), s.loc)
	offset := 0
	totalSynced := 0

	for {
		appointments, err := s.finder.FindUpcoming(ctx, today, syncBatchSize, offset)
		if err != nil {
			s.log.Errorf("Failed to query appointments at offset %d: %+v", offset, err)
			return fmt.Errorf("query appointments at offset %d: %w", offset, err)
		}

		if len(appointments) == 0 {
			if offset == 0 {
				s.log.Info("No upcoming appointments found for sync")
			}
			break
		}

		// fresh pipeline per batch
		pipe := s.redisClient.TxPipeline()
		for i := range appointments {
			slot := SlotOf(&appointments[i])
			pipe.Set(ctx, slot.Key(), appointments[i].ID.String(), s.calculateTTL(slot.Date))
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(appointments)
		s.log.Debugf("Synced batch: %d slots", len(appointments))

		if len(appointments) < syncBatchSize {
			break
		}
		offset += syncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	s.log.Infof("Redis slot re-sync completed: %d slots synced in %v", totalSynced, s.clock.Since(startTime))
	return nil
}

// calculateTTL keeps a slot key until the start of the day after the slot date.
func (s *SlotReservationService) calculateTTL(date time.Time) time.Duration {
	y, m, d := date.Date()
	expireAt := time.Date(y, m, d, 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
	ttl := expireAt.Sub(s.clock.Now())

	if ttl < minSlotTTL {
		return minSlotTTL
	}
	return ttl
}
