package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"mellowise-loader/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamTypeGetByNameAndTenantID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExamTypeDatabaseAdapter(db)

	scoring, err := json.Marshal(domain.DefaultLSATScoringConfig())
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "tenant_id", "name", "description", "scoring_config", "created_at", "updated_at"}).
		AddRow("01HEXAM", "01HTENANT", "LSAT", "Law School Admission Test", scoring, now, now)

	query := `SELECT id, tenant_id, name, description, scoring_config, created_at, updated_at
	          FROM exam_types WHERE tenant_id = $1 AND name = $2`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("01HTENANT", "LSAT").WillReturnRows(rows)

	result, err := repo.GetByNameAndTenantID(context.Background(), "LSAT", "01HTENANT")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "01HEXAM", result.ID)
	assert.Equal(t, "LSAT", result.Name)
	assert.Equal(t, 100, result.ScoringConfig.TotalQuestions)
	assert.Equal(t, [2]int{1, 10}, result.ScoringConfig.DifficultyRange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamTypeGetByNameAndTenantID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExamTypeDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "name", "description", "scoring_config", "created_at", "updated_at"})
	mock.ExpectQuery(`SELECT id, tenant_id, name, description, scoring_config`).
		WithArgs("01HTENANT", "GMAT").
		WillReturnRows(rows)

	result, err := repo.GetByNameAndTenantID(context.Background(), "GMAT", "01HTENANT")

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveExamType(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExamTypeDatabaseAdapter(db)

	examType := domain.NewExamType("01HTENANT", "LSAT", "Law School Admission Test", domain.DefaultLSATScoringConfig())

	mock.ExpectExec(`INSERT INTO exam_types`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveExamType(context.Background(), examType)

	require.NoError(t, err)
	assert.NotEmpty(t, examType.ID, "SaveExamType should assign a surrogate ID")
	assert.NoError(t, mock.ExpectationsWereMet())
}
