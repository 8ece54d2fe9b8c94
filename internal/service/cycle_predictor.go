package service

import (
	"time"

	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/calendar"
)

const (
	// DefaultCycleLength and DefaultPeriodDuration apply when a profile leaves them unset.
	DefaultCycleLength    = 28
	DefaultPeriodDuration = 5

	// MaxCycleLength and MaxPeriodDuration bound profile values; anything larger is
	// treated as unset.
	MaxCycleLength    = 90
	MaxPeriodDuration = 15

	// PredictedCycles is how many cycles Predict projects forward.
	PredictedCycles = 6

	// lutealPhaseDays anchors ovulation before the next period in PredictNextCycle.
	lutealPhaseDays = 14

	fertileDaysBeforeOvulation = 5
	fertileDaysAfterOvulation  = 1
)

// CycleDefaults are the fallback cycle parameters.
type CycleDefaults struct {
	CycleLength    int
	PeriodDuration int
}

// Prediction is the multi-cycle forecast, each slice flat across cycles in ISO dates.
type Prediction struct {
	PeriodDays    []string
	FertileDays   []string
	OvulationDays []string
}

// NextCycle is the single-cycle forecast used for reminders.
type NextCycle struct {
	NextPeriodStart time.Time
	NextPeriodDays  []time.Time
	OvulationDay    time.Time
	FertileStart    time.Time
	FertileEnd      time.Time
	FertileWindow   []time.Time
}

// CyclePredictor forecasts period, ovulation and fertile dates from logged history.
type CyclePredictor struct {
	defaults CycleDefaults
}

// NewCyclePredictor builds a predictor; out-of-range defaults are replaced by 28/5.
func NewCyclePredictor(defaults CycleDefaults) *CyclePredictor {
	if !ValidCycleLength(defaults.CycleLength) {
		defaults.CycleLength = DefaultCycleLength
	}
	if !ValidPeriodDuration(defaults.PeriodDuration) {
		defaults.PeriodDuration = DefaultPeriodDuration
	}
	return &CyclePredictor{defaults: defaults}
}

func ValidCycleLength(n int) bool    { return n >= 1 && n <= MaxCycleLength }
func ValidPeriodDuration(n int) bool { return n >= 1 && n <= MaxPeriodDuration }

// Resolve applies the defaults to missing or out-of-range profile values.
func (p *CyclePredictor) Resolve(profile entity.CycleProfile) (cycleLength, periodDuration int) {
	cycleLength = p.defaults.CycleLength
	if profile.CycleLength != nil && ValidCycleLength(*profile.CycleLength) {
		cycleLength = *profile.CycleLength
	}
	periodDuration = p.defaults.PeriodDuration
	if profile.PeriodDuration != nil && ValidPeriodDuration(*profile.PeriodDuration) {
		periodDuration = *profile.PeriodDuration
	}
	return cycleLength, periodDuration
}

// Predict projects PredictedCycles cycles from lastPeriodStart. Cycle i starts at
// lastPeriodStart + i*cycleLength and ovulates cycleLength/2 days after its start.
// A nil lastPeriodStart (no history) yields three empty sequences.
func (p *CyclePredictor) Predict(lastPeriodStart *time.Time, profile entity.CycleProfile) Prediction {
	prediction := Prediction{
		PeriodDays:    []string{},
		FertileDays:   []string{},
		OvulationDays: []string{},
	}
	if lastPeriodStart == nil {
		return prediction
	}

	cycleLength, periodDuration := p.Resolve(profile)
	last := calendar.DateOf(*lastPeriodStart)

	for i := 0; i < PredictedCycles; i++ {
		start := calendar.AddDays(last, i*cycleLength)
		ovulation := calendar.AddDays(start, cycleLength/2)

		prediction.PeriodDays = append(prediction.PeriodDays, calendar.FormatDates(calendar.Span(start, periodDuration))...)
		prediction.OvulationDays = append(prediction.OvulationDays, calendar.FormatDate(ovulation))
		prediction.FertileDays = append(prediction.FertileDays, calendar.FormatDates(fertileWindow(ovulation))...)
	}

	return prediction
}

// PredictNextCycle forecasts the cycle following anchor. Unlike Predict, ovulation is
// placed a fixed luteal phase (14 days) before the next period start.
func (p *CyclePredictor) PredictNextCycle(anchor time.Time, profile entity.CycleProfile) NextCycle {
	cycleLength, periodDuration := p.Resolve(profile)

	nextStart := calendar.AddDays(calendar.DateOf(anchor), cycleLength)
	ovulation := calendar.AddDays(nextStart, -lutealPhaseDays)
	window := fertileWindow(ovulation)

	return NextCycle{
		NextPeriodStart: nextStart,
		NextPeriodDays:  calendar.Span(nextStart, periodDuration),
		OvulationDay:    ovulation,
		FertileStart:    window[0],
		FertileEnd:      window[len(window)-1],
		FertileWindow:   window,
	}
}

func fertileWindow(ovulation time.Time) []time.Time {
	return calendar.Between(
		calendar.AddDays(ovulation, -fertileDaysBeforeOvulation),
		calendar.AddDays(ovulation, fertileDaysAfterOvulation),
	)
}
