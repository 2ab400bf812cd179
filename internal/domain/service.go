package domain

import "context"

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	// GetByName retrieves a tenant by its unique name, nil if absent
	GetByName(ctx context.Context, name string) (*Tenant, error)

	// SaveTenant persists a new tenant
	SaveTenant(ctx context.Context, tenant *Tenant) error
}

// ExamTypeRepository defines the interface for exam type persistence
type ExamTypeRepository interface {
	// GetByNameAndTenantID retrieves an exam type by name within a tenant, nil if absent
	GetByNameAndTenantID(ctx context.Context, name, tenantID string) (*ExamType, error)

	// SaveExamType persists a new exam type
	SaveExamType(ctx context.Context, examType *ExamType) error
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ExistsByQuestionID reports whether a question with the natural key
	// already exists within the tenant
	ExistsByQuestionID(ctx context.Context, tenantID, questionID string) (bool, error)

	// SaveQuestion persists a new question
	SaveQuestion(ctx context.Context, question *Question) error

	// CountBySection returns persisted counts grouped by section/subsection
	// for the tenant
	CountBySection(ctx context.Context, tenantID string) ([]SectionCount, error)

	// CountByTenant returns the total persisted question count for the tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}

// BootstrapService ensures the tenant and exam type rows exist before any
// questions are loaded. Safe to call repeatedly.
type BootstrapService interface {
	EnsureTarget(ctx context.Context) (LoadTarget, error)
}

// LoaderService performs the idempotent load of a question sequence.
type LoaderService interface {
	LoadQuestions(ctx context.Context, target LoadTarget, questions []*Question) LoadStats
}

// SummaryService reports persisted counts for post-run verification.
type SummaryService interface {
	Report(ctx context.Context, target LoadTarget, stats LoadStats) (*Summary, error)
}
