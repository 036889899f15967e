package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"calendar-server/internal/managers"
	"calendar-server/internal/schemas"
)

const eventColumns = "id, user_id, title, description, start_time, end_time, color, source, " +
	"reminder_enabled, reminder_time, reminder_type, tags, created_at, updated_at"

// EventRepository stores calendar events. Every query is scoped by the owning user.
type EventRepository interface {
	ListForUser(ctx context.Context, userID int64) ([]*schemas.Event, error)
	GetForUser(ctx context.Context, userID, eventID int64) (*schemas.Event, error)
	Create(ctx context.Context, event *schemas.Event) (*schemas.Event, error)
	Update(ctx context.Context, event *schemas.Event) (*schemas.Event, error)
	Delete(ctx context.Context, userID, eventID int64) error
}

// PostgresEventRepository implements EventRepository on the events table.
type PostgresEventRepository struct {
	DatabaseManager managers.DatabaseMgr
}

// NewEventRepository returns an EventRepository backed by the given database manager.
func NewEventRepository(databaseManager managers.DatabaseMgr) EventRepository {
	return &PostgresEventRepository{DatabaseManager: databaseManager}
}

// ListForUser returns the user's events ordered by start time.
func (repo *PostgresEventRepository) ListForUser(ctx context.Context, userID int64) ([]*schemas.Event, error) {
	queryString := "SELECT " + eventColumns + " FROM events WHERE user_id = $1 ORDER BY start_time"
	rows, err := repo.DatabaseManager.GetPool().Query(ctx, queryString, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := make([]*schemas.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (repo *PostgresEventRepository) GetForUser(ctx context.Context, userID, eventID int64) (*schemas.Event, error) {
	queryString := "SELECT " + eventColumns + " FROM events WHERE id = $1 AND user_id = $2"
	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, eventID, userID)
	return scanEventRow(row)
}

func (repo *PostgresEventRepository) Create(ctx context.Context, event *schemas.Event) (*schemas.Event, error) {
	queryString := "INSERT INTO events (user_id, title, description, start_time, end_time, color, source, " +
		"reminder_enabled, reminder_time, reminder_type, tags, created_at, updated_at) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12) RETURNING " + eventColumns

	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, event.UserID, event.Title, event.Description,
		event.StartTime, event.EndTime, event.Color, event.Source, event.ReminderEnabled, event.ReminderTime,
		event.ReminderType, event.Tags, event.CreatedAt)
	return scanEventRow(row)
}

// Update writes every mutable column of event. The row must belong to event.UserID.
func (repo *PostgresEventRepository) Update(ctx context.Context, event *schemas.Event) (*schemas.Event, error) {
	queryString := "UPDATE events SET title = $1, description = $2, start_time = $3, end_time = $4, color = $5, " +
		"source = $6, reminder_enabled = $7, reminder_time = $8, reminder_type = $9, tags = $10, updated_at = $11 " +
		"WHERE id = $12 AND user_id = $13 RETURNING " + eventColumns

	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, event.Title, event.Description,
		event.StartTime, event.EndTime, event.Color, event.Source, event.ReminderEnabled, event.ReminderTime,
		event.ReminderType, event.Tags, event.UpdatedAt, event.ID, event.UserID)
	return scanEventRow(row)
}

func (repo *PostgresEventRepository) Delete(ctx context.Context, userID, eventID int64) error {
	queryString := "DELETE FROM events WHERE id = $1 AND user_id = $2"
	tag, err := repo.DatabaseManager.GetPool().Exec(ctx, queryString, eventID, userID)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEventRow(row pgx.Row) (*schemas.Event, error) {
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying event: %w", err)
	}
	return event, nil
}

func scanEvent(row pgx.Row) (*schemas.Event, error) {
	event := &schemas.Event{}
	if err := row.Scan(&event.ID, &event.UserID, &event.Title, &event.Description, &event.StartTime,
		&event.EndTime, &event.Color, &event.Source, &event.ReminderEnabled, &event.ReminderTime,
		&event.ReminderType, &event.Tags, &event.CreatedAt, &event.UpdatedAt); err != nil {
		return nil, err
	}
	return event, nil
}
