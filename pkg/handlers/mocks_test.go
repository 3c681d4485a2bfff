package handlers

import (
	"context"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/services"
)

// mockCompanyService is a configurable mock for handler tests.
type mockCompanyService struct {
	companies []*models.Company
	getErr    error
}

func (m *mockCompanyService) List(ctx context.Context) []*models.Company {
	return m.companies
}

func (m *mockCompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
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

var _ services.CompanyService = (*mockCompanyService)(nil)

// mockConnectionService is a configurable mock for handler tests.
type mockConnectionService struct {
	request      *models.ConnectionRequest
	requests     []*models.ConnectionRequest
	stats        *models.ConnectionStats
	notification *services.Notification

	createErr error
	getErr    error
	listErr   error
	updateErr error
	statsErr  error

	// Capture inputs for verification
	capturedCreate *services.CreateConnectionInput
	capturedID     string
	capturedUpdate *services.UpdateConnectionInput
	listCompanyID  string
	listInvestorID string
}

func (m *mockConnectionService) Create(ctx context.Context, input *services.CreateConnectionInput) (*models.ConnectionRequest, error) {
	m.capturedCreate = input
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.request, nil
}

func (m *mockConnectionService) Get(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	m.capturedID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.request, nil
}

func (m *mockConnectionService) List(ctx context.Context) ([]*models.ConnectionRequest, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.requests, nil
}

func (m *mockConnectionService) ListByCompany(ctx context.Context, companyID string) ([]*models.ConnectionRequest, error) {
	m.listCompanyID = companyID
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.requests, nil
}

func (m *mockConnectionService) ListByInvestor(ctx context.Context, investorID string) ([]*models.ConnectionRequest, error) {
	m.listInvestorID = investorID
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.requests, nil
}

func (m *mockConnectionService) Update(ctx context.Context, id string, input *services.UpdateConnectionInput) (*models.ConnectionRequest, *services.Notification, error) {
	m.capturedID = id
	m.capturedUpdate = input
	if m.updateErr != nil {
		return nil, nil, m.updateErr
	}
	return m.request, m.notification, nil
}

func (m *mockConnectionService) Stats(ctx context.Context) (*models.ConnectionStats, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.stats, nil
}

func (m *mockConnectionService) SeedInsert(ctx context.Context, request *models.ConnectionRequest) error {
	return m.createErr
}

var _ services.ConnectionService = (*mockConnectionService)(nil)

// mockSearchService is a configurable mock for handler tests.
type mockSearchService struct {
	result        *services.SearchResult
	capturedQuery string
}

func (m *mockSearchService) Search(ctx context.Context, query string) *services.SearchResult {
	m.capturedQuery = query
	return m.result
}

var _ services.SearchService = (*mockSearchService)(nil)

// mockAdminService is a configurable mock for handler tests.
type mockAdminService struct {
	summary  *services.SeedSummary
	seedErr  error
	resetErr error

	seedCalls  int
	resetCalls int
}

func (m *mockAdminService) Seed(ctx context.Context) (*services.SeedSummary, error) {
	m.seedCalls++
	if m.seedErr != nil {
		return nil, m.seedErr
	}
	return m.summary, nil
}

func (m *mockAdminService) Reset(ctx context.Context) (*services.SeedSummary, error) {
	m.resetCalls++
	if m.resetErr != nil {
		return nil, m.resetErr
	}
	return m.summary, nil
}

var _ services.AdminService = (*mockAdminService)(nil)
