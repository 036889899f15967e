package services

import (
	"context"
	"errors"
	"time"

	"calendar-server/internal/repositories"
	"calendar-server/internal/schemas"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidEventTiming = errors.New("end_time must be greater than start_time")
)

// EventService implements the calendar event use cases for one owner at a time.
type EventService struct {
	events repositories.EventRepository
	now    func() time.Time
}

// NewEventService constructs an EventService.
func NewEventService(events repositories.EventRepository) *EventService {
	return &EventService{events: events, now: time.Now}
}

// ListEvents returns the user's events ordered by start time.
func (s *EventService) ListEvents(ctx context.Context, userID int64) ([]*schemas.Event, error) {
	return s.events.ListForUser(ctx, userID)
}

// CreateEvent validates the timing, fills defaults for the omitted fields and stores the event.
func (s *EventService) CreateEvent(ctx context.Context, userID int64, req *schemas.EventCreateRequest) (*schemas.Event, error) {
	if err := ensureValidTiming(*req.StartTime, *req.EndTime); err != nil {
		return nil, err
	}

	reminderTime := int32(schemas.DefaultReminderTime)
	reminderType := schemas.DefaultReminderType
	event := &schemas.Event{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    *req.StartTime,
		EndTime:      *req.EndTime,
		Color:        stringOr(req.Color, schemas.DefaultEventColor),
		Source:       stringOr(req.Source, schemas.DefaultEventSource),
		ReminderTime: &reminderTime,
		ReminderType: &reminderType,
		Tags:         req.Tags,
		CreatedAt:    s.now().UTC(),
	}
	if req.ReminderEnabled != nil {
		event.ReminderEnabled = *req.ReminderEnabled
	}
	if req.ReminderTime != nil {
		event.ReminderTime = req.ReminderTime
	}
	if req.ReminderType != nil {
		event.ReminderType = req.ReminderType
	}

	return s.events.Create(ctx, event)
}

func (s *EventService) GetEvent(ctx context.Context, userID, eventID int64) (*schemas.Event, error) {
	event, err := s.events.GetForUser(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// UpdateEvent applies the fields present in req. The merged start and end times are validated again.
func (s *EventService) UpdateEvent(ctx context.Context, userID, eventID int64, req *schemas.EventUpdateRequest) (*schemas.Event, error) {
	event, err := s.GetEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if err := ensureValidTiming(event.StartTime, event.EndTime); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.Color != nil {
		event.Color = *req.Color
	}
	if req.Source != nil {
		event.Source = *req.Source
	}
	if req.ReminderEnabled != nil {
		event.ReminderEnabled = *req.ReminderEnabled
	}
	if req.ReminderTime != nil {
		event.ReminderTime = req.ReminderTime
	}
	if req.ReminderType != nil {
		event.ReminderType = req.ReminderType
	}
	if req.Tags != nil {
		event.Tags = req.Tags
	}
	event.UpdatedAt = s.now().UTC()

	updated, err := s.events.Update(ctx, event)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID int64) error {
	if err := s.events.Delete(ctx, userID, eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

func ensureValidTiming(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidEventTiming
	}
	return nil
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
