// Package services implements the business logic of the demo day platform.
package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/repositories"
	"github.com/pear-vc/demoday-engine/pkg/seed"
)

// CompanyService defines read access to the company directory.
type CompanyService interface {
	// List returns all companies, featured first. Reads fail open: if the
	// store is unreachable the static demo dataset is returned so browsing
	// keeps working.
	List(ctx context.Context) []*models.Company

	// Get returns a company with founders populated, or
	// apperrors.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Company, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
	logger      *zap.Logger
}

// NewCompanyService creates a new company service with dependencies.
func NewCompanyService(companyRepo repositories.CompanyRepository, logger *zap.Logger) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (s *companyService) List(ctx context.Context) []*models.Company {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Company store unavailable, serving fallback dataset", zap.Error(err))
		return seed.Companies()
	}
	if companies == nil {
		companies = []*models.Company{}
	}
	return companies
}

func (s *companyService) Get(ctx context.Context, id string) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err == nil {
		return company, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	}

	// Storage failure: fall back to the static dataset before giving up.
	s.logger.Warn("Company store unavailable, checking fallback dataset",
		zap.String("company_id", id),
		zap.Error(err))
	for _, c := range seed.Companies() {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
