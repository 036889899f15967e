package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"calendar-server/internal/managers"
	"calendar-server/internal/schemas"
)

const todoColumns = "id, user_id, title, description, completed, priority, category, due_date, tags, " +
	"created_at, updated_at"

// TodoRepository stores todo items. Every query is scoped by the owning user.
type TodoRepository interface {
	ListForUser(ctx context.Context, userID int64) ([]*schemas.Todo, error)
	GetForUser(ctx context.Context, userID, todoID int64) (*schemas.Todo, error)
	Create(ctx context.Context, todo *schemas.Todo) (*schemas.Todo, error)
	Update(ctx context.Context, todo *schemas.Todo) (*schemas.Todo, error)
	Delete(ctx context.Context, userID, todoID int64) error
}

// PostgresTodoRepository implements TodoRepository on the todos table.
type PostgresTodoRepository struct {
	DatabaseManager managers.DatabaseMgr
}

// NewTodoRepository returns a TodoRepository backed by the given database manager.
func NewTodoRepository(databaseManager managers.DatabaseMgr) TodoRepository {
	return &PostgresTodoRepository{DatabaseManager: databaseManager}
}

func (repo *PostgresTodoRepository) ListForUser(ctx context.Context, userID int64) ([]*schemas.Todo, error) {
	queryString := "SELECT " + todoColumns + " FROM todos WHERE user_id = $1 ORDER BY id"
	rows, err := repo.DatabaseManager.GetPool().Query(ctx, queryString, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*schemas.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

func (repo *PostgresTodoRepository) GetForUser(ctx context.Context, userID, todoID int64) (*schemas.Todo, error) {
	queryString := "SELECT " + todoColumns + " FROM todos WHERE id = $1 AND user_id = $2"
	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, todoID, userID)
	return scanTodoRow(row)
}

func (repo *PostgresTodoRepository) Create(ctx context.Context, todo *schemas.Todo) (*schemas.Todo, error) {
	queryString := "INSERT INTO todos (user_id, title, description, completed, priority, category, due_date, " +
		"tags, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) RETURNING " + todoColumns

	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, todo.UserID, todo.Title, todo.Description,
		todo.Completed, todo.Priority, todo.Category, todo.DueDate, todo.Tags, todo.CreatedAt)
	return scanTodoRow(row)
}

func (repo *PostgresTodoRepository) Update(ctx context.Context, todo *schemas.Todo) (*schemas.Todo, error) {
	queryString := "UPDATE todos SET title = $1, description = $2, completed = $3, priority = $4, category = $5, " +
		"due_date = $6, tags = $7, updated_at = $8 WHERE id = $9 AND user_id = $10 RETURNING " + todoColumns

	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, todo.Title, todo.Description, todo.Completed,
		todo.Priority, todo.Category, todo.DueDate, todo.Tags, todo.UpdatedAt, todo.ID, todo.UserID)
	return scanTodoRow(row)
}

func (repo *PostgresTodoRepository) Delete(ctx context.Context, userID, todoID int64) error {
	queryString := "DELETE FROM todos WHERE id = $1 AND user_id = $2"
	tag, err := repo.DatabaseManager.GetPool().Exec(ctx, queryString, todoID, userID)
	if err != nil {
		return fmt.Errorf("error deleting todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTodoRow(row pgx.Row) (*schemas.Todo, error) {
	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying todo: %w", err)
	}
	return todo, nil
}

func scanTodo(row pgx.Row) (*schemas.Todo, error) {
	todo := &schemas.Todo{}
	if err := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Description, &todo.Completed, &todo.Priority,
		&todo.Category, &todo.DueDate, &todo.Tags, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		return nil, err
	}
	return todo, nil
}
