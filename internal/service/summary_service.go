package service

import (
	"context"

	"mellowise-loader/internal/domain"

	"go.uber.org/zap"
)

// summaryService implements domain.SummaryService.
type summaryService struct {
	questionRepo domain.QuestionRepository
	logger       *zap.Logger
}

// NewSummaryService creates a new instance of summaryService.
func NewSummaryService(questionRepo domain.QuestionRepository, logger *zap.Logger) domain.SummaryService {
	return &summaryService{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// Report queries persisted counts for the tenant and logs them alongside
// the run counters. Read-only; stored state is never affected.
func (s *summaryService) Report(ctx context.Context, target domain.LoadTarget, stats domain.LoadStats) (*domain.Summary, error) {
	sections, err := s.questionRepo.CountBySection(ctx, target.TenantID)
	if err != nil {
		return nil, domain.NewStorageError("failed to count questions by section", err)
	}
	total, err := s.questionRepo.CountByTenant(ctx, target.TenantID)
	if err != nil {
		return nil, domain.NewStorageError("failed to count questions for tenant", err)
	}

	for _, sc := range sections {
		s.logger.Info("Section count",
			zap.String("section", sc.Section),
			zap.String("subsection", sc.Subsection),
			zap.Int("count", sc.Count),
		)
	}
	s.logger.Info("Run summary",
		zap.Int("files_processed", stats.FilesProcessed),
		zap.Int("migrated", stats.Migrated),
		zap.Int("skipped", stats.Skipped),
		zap.Int("errors", stats.Errors),
		zap.Int("total_stored", total),
	)

	return &domain.Summary{Sections: sections, Total: total}, nil
}
