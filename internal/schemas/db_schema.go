// Package schemas defines the data structures
package schemas

import (
	"time"
)

// Default values applied to new events and todos when the request leaves them out.
const (
	DefaultEventColor    = "#3b82f6"
	DefaultEventSource   = "local"
	DefaultReminderTime  = 15
	DefaultReminderType  = "notification"
	DefaultTodoPriority  = "medium"
	DefaultTodoCategory  = "general"
	BearerTokenType      = "bearer"
	AuthorizationHeader  = "Authorization"
	BearerPrefix         = "Bearer "
	LogoutSuccessMessage = "Successfully logged out. Remove the tokens on the client."
)

// User represents the data model for a user in the system.
type User struct {
	ID             int64     `json:"id"`         // Unique identifier for the user.
	Email          string    `json:"email"`      // Email address of the user.
	Username       string    `json:"username"`   // Username of the user.
	HashedPassword string    `json:"-"`          // Password hash of the user.
	IsActive       bool      `json:"is_active"`  // Whether the user may authenticate.
	CreatedAt      time.Time `json:"created_at"` // Timestamp when the user was created.
	UpdatedAt      time.Time `json:"updated_at"` // Timestamp of the last update.
}

// Event represents a calendar event owned by a user.
type Event struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Color           string    `json:"color"`
	Source          string    `json:"source"`
	ReminderEnabled bool      `json:"reminder_enabled"`
	ReminderTime    *int32    `json:"reminder_time"`
	ReminderType    *string   `json:"reminder_type"`
	Tags            *string   `json:"tags"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Todo represents a todo item owned by a user.
type Todo struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
