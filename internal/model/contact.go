package model

import "time"

// ContactMessage represents one contact-form submission. Rows are append-only:
// the service never updates or deletes a persisted message.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
