package service

import (
	"context"

	"mellowise-loader/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTenantRepository implements domain.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) GetByName(ctx context.Context, name string) (*domain.Tenant, error) {
	args := m.Called(ctx, name)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

// MockExamTypeRepository implements domain.ExamTypeRepository
type MockExamTypeRepository struct {
	mock.Mock
}

func (m *MockExamTypeRepository) GetByNameAndTenantID(ctx context.Context, name, tenantID string) (*domain.ExamType, error) {
	args := m.Called(ctx, name, tenantID)
	var examType *domain.ExamType
	if args.Get(0) != nil {
		examType = args.Get(0).(*domain.ExamType)
	}
	return examType, args.Error(1)
}

func (m *MockExamTypeRepository) SaveExamType(ctx context.Context, examType *domain.ExamType) error {
	args := m.Called(ctx, examType)
	return args.Error(0)
}

// MockQuestionRepository implements domain.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ExistsByQuestionID(ctx context.Context, tenantID, questionID string) (bool, error) {
	args := m.Called(ctx, tenantID, questionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) CountBySection(ctx context.Context, tenantID string) ([]domain.SectionCount, error) {
	args := m.Called(ctx, tenantID)
	var counts []domain.SectionCount
	if args.Get(0) != nil {
		counts = args.Get(0).([]domain.SectionCount)
	}
	return counts, args.Error(1)
}

func (m *MockQuestionRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	args := m.Called(ctx, tenantID)
	return args.Int(0), args.Error(1)
}
