package models

import (
	"database/sql"
	"time"
)

// Tenant row in the tenants table.
type Tenant struct {
	ID        string         `db:"id"` // ULID
	Name      string         `db:"name"`
	Type      sql.NullString `db:"type"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// ExamType row in the exam_types table. ScoringConfig is an opaque jsonb
// document owned by the main application.
type ExamType struct {
	ID            string         `db:"id"` // ULID
	TenantID      string         `db:"tenant_id"`
	Name          string         `db:"name"`
	Description   sql.NullString `db:"description"`
	ScoringConfig JSONB          `db:"scoring_config"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (ExamType) TableName() string {
	return "exam_types"
}

// Question row in the questions table. QuestionID is the natural key,
// unique per tenant; ID is the surrogate key.
type Question struct {
	ID              string    `db:"id"` // ULID
	TenantID        string    `db:"tenant_id"`
	ExamTypeID      string    `db:"exam_type_id"`
	QuestionID      string    `db:"question_id"`
	Section         string    `db:"section"`
	Subsection      string    `db:"subsection"`
	DifficultyLevel int       `db:"difficulty_level"`
	Content         JSONB     `db:"content"`
	Metadata        JSONB     `db:"metadata"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}
