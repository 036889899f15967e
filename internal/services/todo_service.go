package services

import (
	"context"
	"errors"
	"time"

	"calendar-server/internal/repositories"
	"calendar-server/internal/schemas"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoService implements the todo use cases for one owner at a time.
type TodoService struct {
	todos repositories.TodoRepository
	now   func() time.Time
}

// NewTodoService constructs a TodoService.
func NewTodoService(todos repositories.TodoRepository) *TodoService {
	return &TodoService{todos: todos, now: time.Now}
}

func (s *TodoService) ListTodos(ctx context.Context, userID int64) ([]*schemas.Todo, error) {
	return s.todos.ListForUser(ctx, userID)
}

// CreateTodo fills defaults for the omitted fields and stores the todo.
func (s *TodoService) CreateTodo(ctx context.Context, userID int64, req *schemas.TodoCreateRequest) (*schemas.Todo, error) {
	todo := &schemas.Todo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    stringOr(req.Priority, schemas.DefaultTodoPriority),
		Category:    stringOr(req.Category, schemas.DefaultTodoCategory),
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		CreatedAt:   s.now().UTC(),
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	return s.todos.Create(ctx, todo)
}

func (s *TodoService) GetTodo(ctx context.Context, userID, todoID int64) (*schemas.Todo, error) {
	todo, err := s.todos.GetForUser(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

// UpdateTodo applies the fields present in req.
func (s *TodoService) UpdateTodo(ctx context.Context, userID, todoID int64, req *schemas.TodoUpdateRequest) (*schemas.Todo, error) {
	todo, err := s.GetTodo(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = req.Description
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}
	if req.Priority != nil {
		todo.Priority = *req.Priority
	}
	if req.Category != nil {
		todo.Category = *req.Category
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
	}
	if req.Tags != nil {
		todo.Tags = req.Tags
	}
	todo.UpdatedAt = s.now().UTC()

	updated, err := s.todos.Update(ctx, todo)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	if err := s.todos.Delete(ctx, userID, todoID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return nil
}
