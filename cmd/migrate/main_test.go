package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionOf(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE carts (id uuid);
ALTER TABLE carts ADD COLUMN status text;

-- +migrate Down
DROP TABLE carts;
`
	t.Run("Up", func(t *testing.T) {
		up := sectionOf(content, "Up")
		assert.Contains(t, up, "CREATE TABLE carts")
		assert.Contains(t, up, "ALTER TABLE carts")
		assert.NotContains(t, up, "DROP TABLE carts")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Down", func(t *testing.T) {
		down := sectionOf(content, "Down")
		assert.Contains(t, down, "DROP TABLE carts")
		assert.NotContains(t, down, "CREATE TABLE carts")
	})
}

func TestApplyPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "20250101_init.sql"
	filePath := filepath.Join(tmpDir, fileName)

	content := "-- +migrate Up\nCREATE TABLE carts (id uuid);"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec("CREATE TABLE carts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, applyPending(db, []string{filePath}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPending_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "20250101_init.sql"
	filePath := filepath.Join(tmpDir, fileName)
	require.NoError(t, os.WriteFile(filePath, []byte("-- +migrate Up\nSELECT 1;"), 0644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, applyPending(db, []string{filePath}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRollbackLast(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "20250101_init.sql"
	filePath := filepath.Join(tmpDir, fileName)
	require.NoError(t, os.WriteFile(filePath,
		[]byte("-- +migrate Up\nCREATE TABLE carts (id uuid);\n-- +migrate Down\nDROP TABLE carts;"), 0644))

	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(fileName))

	mock.ExpectExec("DROP TABLE carts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectExec("DELETE FROM schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, rollbackLast(db, []string{filePath}))
	require.NoError(t, mock.ExpectationsWereMet())
}
