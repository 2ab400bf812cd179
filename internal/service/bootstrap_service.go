package service

import (
	"context"

	"mellowise-loader/internal/config"
	"mellowise-loader/internal/domain"

	"go.uber.org/zap"
)

// lsatDescription is attached to the LSAT exam type when it is first created.
const lsatDescription = "Law School Admission Test"

// bootstrapService implements domain.BootstrapService.
type bootstrapService struct {
	tenantRepo   domain.TenantRepository
	examTypeRepo domain.ExamTypeRepository
	cfg          *config.Config
	logger       *zap.Logger
}

// NewBootstrapService creates a new instance of bootstrapService.
func NewBootstrapService(
	tenantRepo domain.TenantRepository,
	examTypeRepo domain.ExamTypeRepository,
	cfg *config.Config,
	logger *zap.Logger,
) domain.BootstrapService {
	return &bootstrapService{
		tenantRepo:   tenantRepo,
		examTypeRepo: examTypeRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// EnsureTarget ensures the configured tenant and exam type exist, creating
// either that is missing, and returns their identifiers. Lookups are by
// name, so repeat calls never create duplicates. Any failure here is a
// setup error and fatal for the run.
func (s *bootstrapService) EnsureTarget(ctx context.Context) (domain.LoadTarget, error) {
	tenant, err := s.tenantRepo.GetByName(ctx, s.cfg.Loader.TenantName)
	if err != nil {
		return domain.LoadTarget{}, domain.NewSetupError("failed to look up tenant", err)
	}
	if tenant == nil {
		tenant = domain.NewTenant(s.cfg.Loader.TenantName, s.cfg.Loader.TenantType)
		if err := tenant.Validate(); err != nil {
			return domain.LoadTarget{}, domain.NewSetupError("invalid tenant configuration", err)
		}
		if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
			return domain.LoadTarget{}, domain.NewSetupError("failed to create tenant", err)
		}
		s.logger.Info("Created tenant",
			zap.String("id", tenant.ID),
			zap.String("name", tenant.Name),
		)
	} else {
		s.logger.Info("Using existing tenant",
			zap.String("id", tenant.ID),
			zap.String("name", tenant.Name),
		)
	}

	examType, err := s.examTypeRepo.GetByNameAndTenantID(ctx, s.cfg.Loader.ExamTypeName, tenant.ID)
	if err != nil {
		return domain.LoadTarget{}, domain.NewSetupError("failed to look up exam type", err)
	}
	if examType == nil {
		description := ""
		if s.cfg.Loader.ExamTypeName == "LSAT" {
			description = lsatDescription
		}
		examType = domain.NewExamType(tenant.ID, s.cfg.Loader.ExamTypeName, description, domain.DefaultLSATScoringConfig())
		if err := examType.Validate(); err != nil {
			return domain.LoadTarget{}, domain.NewSetupError("invalid exam type configuration", err)
		}
		if err := s.examTypeRepo.SaveExamType(ctx, examType); err != nil {
			return domain.LoadTarget{}, domain.NewSetupError("failed to create exam type", err)
		}
		s.logger.Info("Created exam type",
			zap.String("id", examType.ID),
			zap.String("name", examType.Name),
		)
	} else {
		s.logger.Info("Using existing exam type",
			zap.String("id", examType.ID),
			zap.String("name", examType.Name),
		)
	}

	return domain.LoadTarget{TenantID: tenant.ID, ExamTypeID: examType.ID}, nil
}
