package service

import (
	"context"

	"mellowise-loader/internal/config"
	"mellowise-loader/internal/domain"

	"go.uber.org/zap"
)

// SplitBatches divides questions into contiguous, order-preserving groups
// of at most batchSize, the last possibly smaller. Any batch size yields
// the same final stored state; batching only exists to keep individual
// passes small. A batchSize below 1 is treated as 1.
func SplitBatches(questions []*domain.Question, batchSize int) [][]*domain.Question {
	if batchSize < 1 {
		batchSize = 1
	}
	if len(questions) == 0 {
		return nil
	}
	batches := make([][]*domain.Question, 0, (len(questions)+batchSize-1)/batchSize)
	for start := 0; start < len(questions); start += batchSize {
		end := start + batchSize
		if end > len(questions) {
			end = len(questions)
		}
		batches = append(batches, questions[start:end])
	}
	return batches
}

// loaderService implements domain.LoaderService.
type loaderService struct {
	questionRepo domain.QuestionRepository
	cfg          *config.Config
	logger       *zap.Logger
}

// NewLoaderService creates a new instance of loaderService.
func NewLoaderService(
	questionRepo domain.QuestionRepository,
	cfg *config.Config,
	logger *zap.Logger,
) domain.LoaderService {
	return &loaderService{
		questionRepo: questionRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// LoadQuestions loads the sequence into the target scope, one record at a
// time: validate, check existence by (tenant, question_id), insert only if
// absent. Existing rows are never touched, so a rerun over the same source
// is a no-op. Per-record failures are counted and the run continues.
func (s *loaderService) LoadQuestions(ctx context.Context, target domain.LoadTarget, questions []*domain.Question) domain.LoadStats {
	var stats domain.LoadStats

	batches := SplitBatches(questions, s.cfg.Loader.BatchSize)
	for i, batch := range batches {
		s.logger.Info("Processing batch",
			zap.Int("batch", i+1),
			zap.Int("total_batches", len(batches)),
			zap.Int("size", len(batch)),
		)
		for _, question := range batch {
			s.loadQuestion(ctx, target, question, &stats)
		}
	}

	s.logger.Info("Load run finished",
		zap.Int("migrated", stats.Migrated),
		zap.Int("skipped", stats.Skipped),
		zap.Int("errors", stats.Errors),
	)
	return stats
}

func (s *loaderService) loadQuestion(ctx context.Context, target domain.LoadTarget, question *domain.Question, stats *domain.LoadStats) {
	if err := question.Validate(); err != nil {
		s.logger.Error("Invalid question",
			zap.String("question_id", question.QuestionID),
			zap.Error(err),
		)
		stats.Errors++
		return
	}

	exists, err := s.questionRepo.ExistsByQuestionID(ctx, target.TenantID, question.QuestionID)
	if err != nil {
		s.logger.Error("Failed to check question existence",
			zap.String("question_id", question.QuestionID),
			zap.Error(err),
		)
		stats.Errors++
		return
	}
	if exists {
		s.logger.Debug("Question already exists, skipping",
			zap.String("question_id", question.QuestionID),
		)
		stats.Skipped++
		return
	}

	question.TenantID = target.TenantID
	question.ExamTypeID = target.ExamTypeID
	question.Metadata.Source = s.cfg.Loader.Source

	if err := s.questionRepo.SaveQuestion(ctx, question); err != nil {
		// A duplicate here means another writer raced the existence check.
		// Both duplicates and storage failures are per-record errors; the
		// run continues and can simply be re-invoked in full.
		s.logger.Error("Failed to save question",
			zap.String("question_id", question.QuestionID),
			zap.Error(err),
		)
		stats.Errors++
		return
	}

	s.logger.Debug("Migrated question",
		zap.String("question_id", question.QuestionID),
		zap.String("section", question.Section),
	)
	stats.Migrated++
}
