package dto

import "time"

// Response DTOs

type ReminderResponse struct {
	ID           int64     `json:"id"`
	ReminderType string    `json:"reminder_type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Total     int                `json:"total"`
}
