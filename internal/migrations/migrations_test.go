package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubMigrateUp(t *testing.T, stub func(ctx context.Context, db *sql.DB, fsys fs.FS) (int, error)) {
	orig := migrateUp
	migrateUp = stub
	t.Cleanup(func() { migrateUp = orig })
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(Migrations, Dir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := fs.ReadFile(Migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "-- +goose Down")
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS users")
}

func TestUpPassesMigrationRoot(t *testing.T) {
	var names []string
	stubMigrateUp(t, func(ctx context.Context, db *sql.DB, fsys fs.FS) (int, error) {
		var err error
		names, err = fs.Glob(fsys, "*.sql")
		return len(names), err
	})

	require.NoError(t, Up(context.Background(), nil))
	assert.Contains(t, names, "00001_init.sql")
}

func TestMigrationStatementsAreRerunnable(t *testing.T) {
	content, err := fs.ReadFile(Migrations, Dir+"/00001_init.sql")
	require.NoError(t, err)

	creates := regexp.MustCompile(`CREATE (TABLE|INDEX) (\w+ ){0,3}`).FindAllString(string(content), -1)
	require.NotEmpty(t, creates)
	for _, statement := range creates {
		assert.Contains(t, statement, "IF NOT EXISTS")
	}
}

func TestUpWrapsError(t *testing.T) {
	boom := errors.New("boom")
	stubMigrateUp(t, func(ctx context.Context, db *sql.DB, fsys fs.FS) (int, error) {
		return 0, boom
	})

	err := Up(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}
