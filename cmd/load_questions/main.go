package main

import (
	"context"
	"fmt" // For initial error printing before logger is up
	"os"

	"mellowise-loader/internal/config"
	"mellowise-loader/internal/database"
	"mellowise-loader/internal/domain"
	"mellowise-loader/internal/logger"
	"mellowise-loader/internal/repository"
	"mellowise-loader/internal/service"
	"mellowise-loader/internal/source"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question migration run",
		zap.String("tenant", cfg.Loader.TenantName),
		zap.String("exam_type", cfg.Loader.ExamTypeName),
		zap.String("questions_dir", cfg.Loader.QuestionsDir),
		zap.Int("batch_size", cfg.Loader.BatchSize),
	)

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Postgres database", zap.Error(err))
	}
	defer db.Close()
	log.Info("Successfully connected to Postgres database.")

	tenantRepo := repository.NewTenantDatabaseAdapter(db)
	examTypeRepo := repository.NewExamTypeDatabaseAdapter(db)
	questionRepo := repository.NewQuestionDatabaseAdapter(db)

	bootstrapSvc := service.NewBootstrapService(tenantRepo, examTypeRepo, cfg, log)
	loaderSvc := service.NewLoaderService(questionRepo, cfg, log)
	summarySvc := service.NewSummaryService(questionRepo, log)

	ctx := context.Background()

	// Setup errors are fatal: nothing can be loaded without a valid target.
	target, err := bootstrapSvc.EnsureTarget(ctx)
	if err != nil {
		log.Fatal("Bootstrap failed", zap.Error(err))
	}

	reader := source.NewReader(log)
	result, err := reader.ReadDir(cfg.Loader.QuestionsDir)
	if err != nil {
		log.Fatal("Failed to read questions directory", zap.Error(err))
	}
	log.Info("Loaded source corpus",
		zap.Int("files", result.FilesProcessed),
		zap.Int("questions", len(result.Questions)),
	)

	stats := loaderSvc.LoadQuestions(ctx, target, result.Questions)
	stats.FilesProcessed = result.FilesProcessed
	stats.Errors += result.FileErrors

	summary, err := summarySvc.Report(ctx, target, stats)
	if err != nil {
		log.Error("Failed to build summary report", zap.Error(err))
		printStatistics(stats, -1)
		return
	}

	printStatistics(stats, summary.Total)
}

// printStatistics writes the human-readable run report to stdout, separate
// from the structured logs. Callers decide success by the error count.
func printStatistics(stats domain.LoadStats, total int) {
	fmt.Println("============================================================")
	fmt.Println("Migration Complete!")
	fmt.Println("============================================================")
	fmt.Printf("Files processed:    %d\n", stats.FilesProcessed)
	fmt.Printf("Questions migrated: %d\n", stats.Migrated)
	fmt.Printf("Questions skipped:  %d\n", stats.Skipped)
	fmt.Printf("Errors:             %d\n", stats.Errors)
	if total >= 0 {
		fmt.Printf("Questions stored:   %d\n", total)
	}
	if stats.Errors == 0 {
		fmt.Println("All questions successfully migrated!")
	} else {
		fmt.Printf("Migration completed with %d errors\n", stats.Errors)
	}
}
