// Package schemas defines the request structures for various operations in the application.
package schemas

import "time"

// RegistrationRequest is a struct that represents a registration request
// Email is required and must be a valid email
// Username is required, must be less than 255 characters and must not contain HTML
// Password is required
type RegistrationRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,max=255,username_validation,no_markup"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is a struct that represents a login request
// Email is required and must be a valid email
// Password is required
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EventCreateRequest is a struct that represents a create event request
// Title, StartTime and EndTime are required, everything else falls back to defaults
type EventCreateRequest struct {
	Title           string     `json:"title" validate:"required,max=255"`
	Description     *string    `json:"description"`
	StartTime       *time.Time `json:"start_time" validate:"required"`
	EndTime         *time.Time `json:"end_time" validate:"required"`
	Color           *string    `json:"color" validate:"omitempty,max=7"`
	Source          *string    `json:"source" validate:"omitempty,oneof=local google yandex"`
	ReminderEnabled *bool      `json:"reminder_enabled"`
	ReminderTime    *int32     `json:"reminder_time" validate:"omitempty,min=0"`
	ReminderType    *string    `json:"reminder_type" validate:"omitempty,oneof=notification email both"`
	Tags            *string    `json:"tags" validate:"omitempty,max=255"`
}

// EventUpdateRequest is a struct that represents a partial event update
// Only the fields present in the request body are applied
type EventUpdateRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string    `json:"description"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	Color           *string    `json:"color" validate:"omitempty,max=7"`
	Source          *string    `json:"source" validate:"omitempty,oneof=local google yandex"`
	ReminderEnabled *bool      `json:"reminder_enabled"`
	ReminderTime    *int32     `json:"reminder_time" validate:"omitempty,min=0"`
	ReminderType    *string    `json:"reminder_type" validate:"omitempty,oneof=notification email both"`
	Tags            *string    `json:"tags" validate:"omitempty,max=255"`
}

// TodoCreateRequest is a struct that represents a create todo request
// Title is required, everything else falls back to defaults
type TodoCreateRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    *string    `json:"category" validate:"omitempty,oneof=day week general"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags" validate:"omitempty,max=255"`
}

// TodoUpdateRequest is a struct that represents a partial todo update
// Only the fields present in the request body are applied
type TodoUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    *string    `json:"category" validate:"omitempty,oneof=day week general"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags" validate:"omitempty,max=255"`
}
