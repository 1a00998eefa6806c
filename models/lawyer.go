package models

import (
	"time"

	"github.com/google/uuid"
)

// Lawyer represents a listed lawyer returned by the search widget
type Lawyer struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	FirmName   *string   `json:"firm_name,omitempty"`
	StateCode  string    `json:"state_code"`
	Categories []string  `json:"categories"`
	Suburb     *string   `json:"suburb,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Website    *string   `json:"website,omitempty"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
}
