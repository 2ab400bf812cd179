package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mellowise-loader/internal/domain"
	"mellowise-loader/internal/repository/models"
	"mellowise-loader/internal/util"
)

// ExamTypeDatabaseAdapter implements domain.ExamTypeRepository using sqlx
type ExamTypeDatabaseAdapter struct {
	db DBTX
}

// NewExamTypeDatabaseAdapter creates a new instance of ExamTypeDatabaseAdapter
func NewExamTypeDatabaseAdapter(db DBTX) domain.ExamTypeRepository {
	return &ExamTypeDatabaseAdapter{db: db}
}

// GetByNameAndTenantID retrieves an exam type by name within a tenant.
// Returns nil without an error when no exam type exists.
func (a *ExamTypeDatabaseAdapter) GetByNameAndTenantID(ctx context.Context, name, tenantID string) (*domain.ExamType, error) {
	var modelExamType models.ExamType
	query := `SELECT id, tenant_id, name, description, scoring_config, created_at, updated_at
	          FROM exam_types WHERE tenant_id = $1 AND name = $2`
	err := a.db.GetContext(ctx, &modelExamType, query, tenantID, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam type %s for tenant %s: %w", name, tenantID, err)
	}
	return convertToDomainExamType(&modelExamType)
}

// SaveExamType persists a new exam type
func (a *ExamTypeDatabaseAdapter) SaveExamType(ctx context.Context, examType *domain.ExamType) error {
	modelExamType, err := convertToModelExamType(examType)
	if err != nil {
		return err
	}
	modelExamType.ID = util.NewULID()
	modelExamType.CreatedAt = time.Now()
	modelExamType.UpdatedAt = time.Now()

	query := `INSERT INTO exam_types (id, tenant_id, name, description, scoring_config, created_at, updated_at)
              VALUES (:id, :tenant_id, :name, :description, :scoring_config, :created_at, :updated_at)`
	_, err = a.db.NamedExecContext(ctx, query, modelExamType)
	if err != nil {
		return fmt.Errorf("failed to save exam type %s: %w", examType.Name, err)
	}
	examType.ID = modelExamType.ID
	examType.CreatedAt = modelExamType.CreatedAt
	examType.UpdatedAt = modelExamType.UpdatedAt
	return nil
}

// Helper functions for converting between domain and model types
func convertToDomainExamType(examType *models.ExamType) (*domain.ExamType, error) {
	var scoring domain.ScoringConfig
	if len(examType.ScoringConfig) > 0 {
		if err := json.Unmarshal(examType.ScoringConfig, &scoring); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scoring config for exam type %s: %w", examType.ID, err)
		}
	}
	return &domain.ExamType{
		ID:            examType.ID,
		TenantID:      examType.TenantID,
		Name:          examType.Name,
		Description:   examType.Description.String,
		ScoringConfig: scoring,
		CreatedAt:     examType.CreatedAt,
		UpdatedAt:     examType.UpdatedAt,
	}, nil
}

func convertToModelExamType(examType *domain.ExamType) (*models.ExamType, error) {
	scoringJSON, err := json.Marshal(examType.ScoringConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoring config for exam type %s: %w", examType.Name, err)
	}
	return &models.ExamType{
		ID:            examType.ID,
		TenantID:      examType.TenantID,
		Name:          examType.Name,
		Description:   util.StringToNullString(examType.Description),
		ScoringConfig: scoringJSON,
		CreatedAt:     examType.CreatedAt,
		UpdatedAt:     examType.UpdatedAt,
	}, nil
}
