package event

import (
	"errors"
	"time"
)

// DefaultMaxSeats is applied when a create payload omits maxSeats.
const DefaultMaxSeats = 100

type Event struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	Category             string    `json:"category"`
	Date                 string    `json:"date,omitempty"` // free text, never parsed
	Time                 string    `json:"time,omitempty"`
	MaxSeats             int       `json:"maxSeats"`
	CurrentRegistrations int       `json:"currentRegistrations"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("event not found")

type CreateEventRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Category    string `json:"category" binding:"required,min=1,max=80"`
	Date        string `json:"date" binding:"omitempty,max=80"`
	Time        string `json:"time" binding:"omitempty,max=80"`
	MaxSeats    int    `json:"maxSeats" binding:"omitempty,min=1,max=50000"`
}

// Update is a partial update; nil fields are left untouched.
type Update struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	Category             *string `json:"category"`
	Date                 *string `json:"date"`
	Time                 *string `json:"time"`
	MaxSeats             *int    `json:"maxSeats"`
	CurrentRegistrations *int    `json:"currentRegistrations"`
	IsActive             *bool   `json:"isActive"`
}
