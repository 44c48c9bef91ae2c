package cmd

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/database"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &database.DB{DB: sqlx.NewDb(db, "mysql")}, mock
}

func TestMissingTablesReportsAbsentTables(t *testing.T) {
	db, mock := newMockDB(t)

	for _, table := range []string{"users", "customers", "jewelry", "sales", "sale_items", "rates"} {
		rows := sqlmock.NewRows([]string{"table_name"})
		if table != "sales" {
			rows.AddRow(table)
		}
		mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
			WithArgs(table).
			WillReturnRows(rows)
	}

	missing, err := missingTables(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"sales"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingTablesSurfacesQueryErrors(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
		WithArgs("users").
		WillReturnError(errors.New("connection reset"))

	_, err := missingTables(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking table users")
}
