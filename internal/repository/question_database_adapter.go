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

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// ExistsByQuestionID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ExistsByQuestionID(ctx context.Context, tenantID, questionID string) (bool, error) {
	var id string
	query := `SELECT id FROM questions WHERE tenant_id = $1 AND question_id = $2 LIMIT 1`
	err := a.db.GetContext(ctx, &id, query, tenantID, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existence of question %s: %w", questionID, err)
	}
	return true, nil
}

// SaveQuestion implements domain.QuestionRepository. A unique constraint
// violation on (tenant_id, question_id) is surfaced as a domain
// duplicate-question error so the loader can count it and continue.
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	modelQuestion, err := convertToModelQuestion(question)
	if err != nil {
		return err
	}
	modelQuestion.ID = util.NewULID()
	modelQuestion.CreatedAt = time.Now()
	modelQuestion.UpdatedAt = time.Now()

	query := `INSERT INTO questions (
		id, tenant_id, exam_type_id, question_id, section, subsection,
		difficulty_level, content, metadata, created_at, updated_at
	) VALUES (
		:id, :tenant_id, :exam_type_id, :question_id, :section, :subsection,
		:difficulty_level, :content, :metadata, :created_at, :updated_at
	)`
	_, err = a.db.NamedExecContext(ctx, query, modelQuestion)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.NewDuplicateQuestionError(question.QuestionID)
		}
		return fmt.Errorf("failed to save question %s: %w", question.QuestionID, err)
	}
	question.ID = modelQuestion.ID
	question.CreatedAt = modelQuestion.CreatedAt
	question.UpdatedAt = modelQuestion.UpdatedAt
	return nil
}

// CountBySection implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountBySection(ctx context.Context, tenantID string) ([]domain.SectionCount, error) {
	var rows []struct {
		Section    string `db:"section"`
		Subsection string `db:"subsection"`
		Count      int    `db:"count"`
	}
	query := `SELECT section, subsection, COUNT(*) AS count
	          FROM questions WHERE tenant_id = $1
	          GROUP BY section, subsection
	          ORDER BY section, subsection`
	err := a.db.SelectContext(ctx, &rows, query, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.SectionCount{}, nil
		}
		return nil, fmt.Errorf("failed to count questions by section: %w", err)
	}

	counts := make([]domain.SectionCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.SectionCount{
			Section:    row.Section,
			Subsection: row.Subsection,
			Count:      row.Count,
		}
	}
	return counts, nil
}

// CountByTenant implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM questions WHERE tenant_id = $1`
	err := a.db.GetContext(ctx, &count, query, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions for tenant %s: %w", tenantID, err)
	}
	return count, nil
}

// Helper functions for converting between domain and model types
func convertToModelQuestion(question *domain.Question) (*models.Question, error) {
	contentJSON, err := json.Marshal(question.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content for question %s: %w", question.QuestionID, err)
	}
	metadata := question.Metadata
	if metadata.Tags == nil {
		metadata.Tags = []string{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata for question %s: %w", question.QuestionID, err)
	}
	return &models.Question{
		ID:              question.ID,
		TenantID:        question.TenantID,
		ExamTypeID:      question.ExamTypeID,
		QuestionID:      question.QuestionID,
		Section:         question.Section,
		Subsection:      question.Subsection,
		DifficultyLevel: question.Difficulty,
		Content:         contentJSON,
		Metadata:        metadataJSON,
	}, nil
}
