package domain

import "time"

// Tenant represents an isolated customer/workspace scope. Tenants are
// created once by the bootstrapper and never mutated or deleted by the
// loader.
type Tenant struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTenant creates a new Tenant instance
func NewTenant(name, tenantType string) *Tenant {
	now := time.Now()
	return &Tenant{
		Name:      name,
		Type:      tenantType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the tenant
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return NewInvalidInputError("tenant name is required")
	}
	return nil
}

// ScoringConfig is the free-form scoring/timing configuration attached to an
// exam type. The loader writes it once at bootstrap and never interprets it.
type ScoringConfig struct {
	TotalQuestions  int      `json:"total_questions"`
	TimeLimit       int      `json:"time_limit"` // minutes
	Sections        []string `json:"sections"`
	DifficultyRange [2]int   `json:"difficulty_range"`
	PointsFormula   string   `json:"points_formula"`
}

// DefaultLSATScoringConfig returns the scoring configuration installed when
// the LSAT exam type is first created.
func DefaultLSATScoringConfig() ScoringConfig {
	return ScoringConfig{
		TotalQuestions:  100,
		TimeLimit:       210, // 3.5 hours
		Sections:        []string{"Logical Reasoning", "Reading Comprehension", "Writing Sample"},
		DifficultyRange: [2]int{MinDifficulty, MaxDifficulty},
		PointsFormula:   "10 + (difficulty-1) * 5",
	}
}

// ExamType represents a named grouping of questions under a tenant.
type ExamType struct {
	ID            string
	TenantID      string
	Name          string
	Description   string
	ScoringConfig ScoringConfig
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExamType creates a new ExamType instance
func NewExamType(tenantID, name, description string, scoring ScoringConfig) *ExamType {
	now := time.Now()
	return &ExamType{
		TenantID:      tenantID,
		Name:          name,
		Description:   description,
		ScoringConfig: scoring,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate validates the exam type
func (e *ExamType) Validate() error {
	if e.TenantID == "" {
		return NewInvalidInputError("tenant ID is required")
	}
	if e.Name == "" {
		return NewInvalidInputError("exam type name is required")
	}
	return nil
}
