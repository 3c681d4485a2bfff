package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/repositories"
	"github.com/pear-vc/demoday-engine/pkg/seed"
)

// SeedSummary reports what an administrative seed or reset inserted.
type SeedSummary struct {
	Message            string `json:"message"`
	Companies          int    `json:"companies"`
	Founders           int    `json:"founders"`
	ConnectionRequests int    `json:"connectionRequests,omitempty"`
}

// AdminService performs administrative seeding and resets. These are the
// only paths that may insert connection requests with a non-default
// initial status.
type AdminService interface {
	// Seed populates an empty store with the demo dataset. A store that
	// already has companies is left untouched.
	Seed(ctx context.Context) (*SeedSummary, error)

	// Reset wipes all records and re-seeds companies, founders and sample
	// connection requests.
	Reset(ctx context.Context) (*SeedSummary, error)
}

type adminService struct {
	companyRepo       repositories.CompanyRepository
	connectionRepo    repositories.ConnectionRepository
	connectionService ConnectionService
	dataset           *seed.Dataset
	logger            *zap.Logger
}

// NewAdminService creates a new admin service with dependencies. A nil
// dataset selects the built-in demo directory.
func NewAdminService(
	companyRepo repositories.CompanyRepository,
	connectionRepo repositories.ConnectionRepository,
	connectionService ConnectionService,
	dataset *seed.Dataset,
	logger *zap.Logger,
) AdminService {
	if dataset == nil {
		dataset = seed.Default()
	}
	return &adminService{
		companyRepo:       companyRepo,
		connectionRepo:    connectionRepo,
		connectionService: connectionService,
		dataset:           dataset,
		logger:            logger,
	}
}

func (s *adminService) Seed(ctx context.Context) (*SeedSummary, error) {
	count, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing companies: %w", err)
	}
	if count > 0 {
		return &SeedSummary{
			Message:   "Database already seeded",
			Companies: count,
		}, nil
	}

	companies, founders, err := s.seedDirectory(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Database seeded",
		zap.Int("companies", companies),
		zap.Int("founders", founders))

	return &SeedSummary{
		Message:   "Database seeded successfully",
		Companies: companies,
		Founders:  founders,
	}, nil
}

func (s *adminService) Reset(ctx context.Context) (*SeedSummary, error) {
	if err := s.connectionRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear connection requests: %w", err)
	}
	if err := s.companyRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear companies: %w", err)
	}

	companies, founders, err := s.seedDirectory(ctx)
	if err != nil {
		return nil, err
	}

	samples := seed.SampleConnectionRequests()
	for _, request := range samples {
		if err := s.connectionService.SeedInsert(ctx, request); err != nil {
			return nil, fmt.Errorf("failed to seed connection request: %w", err)
		}
	}

	s.logger.Info("Database reset and seeded",
		zap.Int("companies", companies),
		zap.Int("founders", founders),
		zap.Int("connection_requests", len(samples)))

	return &SeedSummary{
		Message:            "Database reset and seeded successfully",
		Companies:          companies,
		Founders:           founders,
		ConnectionRequests: len(samples),
	}, nil
}

func (s *adminService) seedDirectory(ctx context.Context) (int, int, error) {
	companies := s.dataset.Companies
	for _, company := range companies {
		if err := s.companyRepo.Create(ctx, company); err != nil {
			return 0, 0, fmt.Errorf("failed to seed company %s: %w", company.ID, err)
		}
	}

	founders := s.dataset.Founders
	for _, founder := range founders {
		if err := s.companyRepo.CreateFounder(ctx, founder); err != nil {
			return 0, 0, fmt.Errorf("failed to seed founder %s: %w", founder.ID, err)
		}
	}

	return len(companies), len(founders), nil
}
