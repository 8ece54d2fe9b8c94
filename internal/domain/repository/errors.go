package repository

import "errors"

// ErrSlotTaken is returned when a write violates the (doctor, date, time) uniqueness constraint
var ErrSlotTaken = errors.New("appointment slot already taken")

// ErrUserLinked is returned when a user account is already linked to another doctor
var ErrUserLinked = errors.New("user already linked to a doctor")

// ErrInvalidReminderType is returned when a reminder carries a type outside the closed set
var ErrInvalidReminderType = errors.New("invalid reminder type")

// ErrDuplicateName is returned when a catalogue entry reuses an existing name
var ErrDuplicateName = errors.New("name already exists")
