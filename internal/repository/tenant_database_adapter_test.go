package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"mellowise-loader/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance backed by sqlmock for adapter tests.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestTenantGetByName(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTenantDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "type", "created_at", "updated_at"}).
		AddRow("01HTENANT", "Mellowise Demo", "demo", now, now)

	query := `SELECT id, name, type, created_at, updated_at FROM tenants WHERE name = $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Mellowise Demo").WillReturnRows(rows)

	result, err := repo.GetByName(context.Background(), "Mellowise Demo")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "01HTENANT", result.ID)
	assert.Equal(t, "Mellowise Demo", result.Name)
	assert.Equal(t, "demo", result.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantGetByName_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTenantDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "name", "type", "created_at", "updated_at"})
	query := `SELECT id, name, type, created_at, updated_at FROM tenants WHERE name = $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("Missing").WillReturnRows(rows)

	result, err := repo.GetByName(context.Background(), "Missing")

	// Absence is not an error: the bootstrapper creates the tenant when nil.
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTenant(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewTenantDatabaseAdapter(db)

	tenant := domain.NewTenant("Mellowise Demo", "demo")

	mock.ExpectExec(`INSERT INTO tenants`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveTenant(context.Background(), tenant)

	require.NoError(t, err)
	assert.NotEmpty(t, tenant.ID, "SaveTenant should assign a surrogate ID")
	assert.NoError(t, mock.ExpectationsWereMet())
}
