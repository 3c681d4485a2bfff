package services

import (
	"context"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/repositories"
)

// mockCompanyRepository is a configurable mock for testing company-facing
// services.
type mockCompanyRepository struct {
	companies []*models.Company
	count     int

	createErr error
	getErr    error
	listErr   error
	countErr  error
	deleteErr error

	// Capture inputs for verification
	createdCompanies []*models.Company
	createdFounders  []*models.Founder
	deleteAllCalls   int
}

func (m *mockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.createdCompanies = append(m.createdCompanies, company)
	return nil
}

func (m *mockCompanyRepository) CreateFounder(ctx context.Context, founder *models.Founder) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.createdFounders = append(m.createdFounders, founder)
	return nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, c := range m.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.companies, nil
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockCompanyRepository) DeleteAll(ctx context.Context) error {
	m.deleteAllCalls++
	return m.deleteErr
}

var _ repositories.CompanyRepository = (*mockCompanyRepository)(nil)

// mockConnectionRepository is a configurable mock for testing the
// connection lifecycle service.
type mockConnectionRepository struct {
	requests []*models.ConnectionRequest
	stats    *models.ConnectionStats

	insertErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
	statsErr  error

	// Capture inputs for verification
	insertedRequests []*models.ConnectionRequest
	capturedID       string
	capturedUpdate   *repositories.ConnectionUpdate
	deleteAllCalls   int
}

func (m *mockConnectionRepository) Insert(ctx context.Context, request *models.ConnectionRequest) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedRequests = append(m.insertedRequests, request)
	m.requests = append(m.requests, request)
	return nil
}

func (m *mockConnectionRepository) GetByID(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, r := range m.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockConnectionRepository) List(ctx context.Context) ([]*models.ConnectionRequest, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.requests, nil
}

func (m *mockConnectionRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.ConnectionRequest, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var matched []*models.ConnectionRequest
	for _, r := range m.requests {
		if r.CompanyID == companyID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (m *mockConnectionRepository) ListByInvestor(ctx context.Context, investorID string) ([]*models.ConnectionRequest, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var matched []*models.ConnectionRequest
	for _, r := range m.requests {
		if r.InvestorID == investorID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (m *mockConnectionRepository) Update(ctx context.Context, id string, update *repositories.ConnectionUpdate) (*models.ConnectionRequest, error) {
	m.capturedID = id
	m.capturedUpdate = update
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	for _, r := range m.requests {
		if r.ID != id {
			continue
		}
		if update.Status != nil {
			r.Status = *update.Status
		}
		if update.PearNotes != nil {
			r.PearNotes = *update.PearNotes
		}
		if update.FounderResponse != nil {
			r.FounderResponse = *update.FounderResponse
		}
		if update.ReviewedAt != nil {
			r.ReviewedAt = update.ReviewedAt
		}
		if update.RespondedAt != nil {
			r.RespondedAt = update.RespondedAt
		}
		return r, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockConnectionRepository) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *mockConnectionRepository) DeleteAll(ctx context.Context) error {
	m.deleteAllCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.requests = nil
	return nil
}

func (m *mockConnectionRepository) Stats(ctx context.Context) (*models.ConnectionStats, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.stats, nil
}

var _ repositories.ConnectionRepository = (*mockConnectionRepository)(nil)
