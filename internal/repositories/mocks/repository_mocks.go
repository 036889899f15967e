package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"calendar-server/internal/schemas"
)

// MockUserRepository is a testify mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*schemas.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*schemas.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*schemas.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*schemas.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (*schemas.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*schemas.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, email, username, passwordHash string) (*schemas.User, error) {
	args := m.Called(ctx, email, username, passwordHash)
	user, _ := args.Get(0).(*schemas.User)
	return user, args.Error(1)
}

// MockEventRepository is a testify mock of repositories.EventRepository.
// Create and Update also accept a function as return value, which is called with the arguments.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) ListForUser(ctx context.Context, userID int64) ([]*schemas.Event, error) {
	args := m.Called(ctx, userID)
	events, _ := args.Get(0).([]*schemas.Event)
	return events, args.Error(1)
}

func (m *MockEventRepository) GetForUser(ctx context.Context, userID, eventID int64) (*schemas.Event, error) {
	args := m.Called(ctx, userID, eventID)
	event, _ := args.Get(0).(*schemas.Event)
	return event, args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, event *schemas.Event) (*schemas.Event, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, *schemas.Event) (*schemas.Event, error)); ok {
		return fn(ctx, event)
	}
	created, _ := args.Get(0).(*schemas.Event)
	return created, args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *schemas.Event) (*schemas.Event, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, *schemas.Event) (*schemas.Event, error)); ok {
		return fn(ctx, event)
	}
	updated, _ := args.Get(0).(*schemas.Event)
	return updated, args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, userID, eventID int64) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

// MockTodoRepository is a testify mock of repositories.TodoRepository.
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) ListForUser(ctx context.Context, userID int64) ([]*schemas.Todo, error) {
	args := m.Called(ctx, userID)
	todos, _ := args.Get(0).([]*schemas.Todo)
	return todos, args.Error(1)
}

func (m *MockTodoRepository) GetForUser(ctx context.Context, userID, todoID int64) (*schemas.Todo, error) {
	args := m.Called(ctx, userID, todoID)
	todo, _ := args.Get(0).(*schemas.Todo)
	return todo, args.Error(1)
}

func (m *MockTodoRepository) Create(ctx context.Context, todo *schemas.Todo) (*schemas.Todo, error) {
	args := m.Called(ctx, todo)
	if fn, ok := args.Get(0).(func(context.Context, *schemas.Todo) (*schemas.Todo, error)); ok {
		return fn(ctx, todo)
	}
	created, _ := args.Get(0).(*schemas.Todo)
	return created, args.Error(1)
}

func (m *MockTodoRepository) Update(ctx context.Context, todo *schemas.Todo) (*schemas.Todo, error) {
	args := m.Called(ctx, todo)
	if fn, ok := args.Get(0).(func(context.Context, *schemas.Todo) (*schemas.Todo, error)); ok {
		return fn(ctx, todo)
	}
	updated, _ := args.Get(0).(*schemas.Todo)
	return updated, args.Error(1)
}

func (m *MockTodoRepository) Delete(ctx context.Context, userID, todoID int64) error {
	args := m.Called(ctx, userID, todoID)
	return args.Error(0)
}
