// Package repositories wraps the SQL queries of the services behind small interfaces.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"calendar-server/internal/managers"
	"calendar-server/internal/schemas"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

const userColumns = "id, email, username, hashed_password, is_active, created_at, updated_at"

// UserRepository is the user directory consumed by the auth core and the context resolver.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*schemas.User, error)
	FindByUsername(ctx context.Context, username string) (*schemas.User, error)
	FindByID(ctx context.Context, userID int64) (*schemas.User, error)
	Insert(ctx context.Context, email, username, passwordHash string) (*schemas.User, error)
}

// PostgresUserRepository implements UserRepository on the users table.
type PostgresUserRepository struct {
	DatabaseManager managers.DatabaseMgr
}

// NewUserRepository returns a UserRepository backed by the given database manager.
func NewUserRepository(databaseManager managers.DatabaseMgr) UserRepository {
	return &PostgresUserRepository{DatabaseManager: databaseManager}
}

func (repo *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*schemas.User, error) {
	queryString := "SELECT " + userColumns + " FROM users WHERE email = $1"
	return repo.findOne(ctx, queryString, email)
}

func (repo *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*schemas.User, error) {
	queryString := "SELECT " + userColumns + " FROM users WHERE username = $1"
	return repo.findOne(ctx, queryString, username)
}

func (repo *PostgresUserRepository) FindByID(ctx context.Context, userID int64) (*schemas.User, error) {
	queryString := "SELECT " + userColumns + " FROM users WHERE id = $1"
	return repo.findOne(ctx, queryString, userID)
}

// Insert creates an active user. A unique violation on email or username returns ErrDuplicate.
func (repo *PostgresUserRepository) Insert(ctx context.Context, email, username, passwordHash string) (*schemas.User, error) {
	queryString := "INSERT INTO users (email, username, hashed_password, is_active, created_at, updated_at) " +
		"VALUES ($1, $2, $3, TRUE, $4, $4) RETURNING " + userColumns

	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, email, username, passwordHash, time.Now().UTC())
	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	return user, nil
}

func (repo *PostgresUserRepository) findOne(ctx context.Context, queryString string, arg interface{}) (*schemas.User, error) {
	row := repo.DatabaseManager.GetPool().QueryRow(ctx, queryString, arg)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (*schemas.User, error) {
	user := &schemas.User{}
	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.HashedPassword, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
