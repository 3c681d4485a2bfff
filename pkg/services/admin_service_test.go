package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/seed"
)

func newTestAdminService(companyRepo *mockCompanyRepository, connectionRepo *mockConnectionRepository) AdminService {
	connectionService := newTestConnectionService(connectionRepo, time.Now())
	return NewAdminService(companyRepo, connectionRepo, connectionService, nil, zap.NewNop())
}

func TestAdminServiceSeedPopulatesEmptyStore(t *testing.T) {
	companyRepo := &mockCompanyRepository{}
	svc := newTestAdminService(companyRepo, &mockConnectionRepository{})

	summary, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Companies != len(seed.Companies()) {
		t.Errorf("Companies = %d, want %d", summary.Companies, len(seed.Companies()))
	}
	if summary.Founders != len(seed.Founders()) {
		t.Errorf("Founders = %d, want %d", summary.Founders, len(seed.Founders()))
	}
	if len(companyRepo.createdCompanies) != len(seed.Companies()) {
		t.Errorf("expected %d inserts, got %d", len(seed.Companies()), len(companyRepo.createdCompanies))
	}
}

func TestAdminServiceSeedIsIdempotent(t *testing.T) {
	companyRepo := &mockCompanyRepository{count: 6}
	svc := newTestAdminService(companyRepo, &mockConnectionRepository{})

	summary, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Message != "Database already seeded" {
		t.Errorf("Message = %q", summary.Message)
	}
	if len(companyRepo.createdCompanies) != 0 {
		t.Errorf("seeded store must not be touched, got %d inserts", len(companyRepo.createdCompanies))
	}
}

func TestAdminServiceResetWipesAndReseeds(t *testing.T) {
	companyRepo := &mockCompanyRepository{count: 6}
	connectionRepo := &mockConnectionRepository{}
	svc := newTestAdminService(companyRepo, connectionRepo)

	summary, err := svc.Reset(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if companyRepo.deleteAllCalls != 1 || connectionRepo.deleteAllCalls != 1 {
		t.Error("expected both stores to be wiped once")
	}
	if summary.ConnectionRequests != len(seed.SampleConnectionRequests()) {
		t.Errorf("ConnectionRequests = %d, want %d",
			summary.ConnectionRequests, len(seed.SampleConnectionRequests()))
	}
	if len(connectionRepo.insertedRequests) != len(seed.SampleConnectionRequests()) {
		t.Errorf("expected %d sample inserts, got %d",
			len(seed.SampleConnectionRequests()), len(connectionRepo.insertedRequests))
	}
}

func TestAdminServiceSeedUsesCustomDataset(t *testing.T) {
	companyRepo := &mockCompanyRepository{}
	connectionRepo := &mockConnectionRepository{}
	connectionService := newTestConnectionService(connectionRepo, time.Now())
	dataset := &seed.Dataset{
		Companies: []*models.Company{{ID: "acme", Name: "Acme Robotics"}},
		Founders:  []*models.Founder{{ID: "acme-f1", Name: "Dana Reyes", CompanyID: "acme"}},
	}
	svc := NewAdminService(companyRepo, connectionRepo, connectionService, dataset, zap.NewNop())

	summary, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Companies != 1 || summary.Founders != 1 {
		t.Errorf("summary = %+v, want 1 company and 1 founder", summary)
	}
	if len(companyRepo.createdCompanies) != 1 || companyRepo.createdCompanies[0].ID != "acme" {
		t.Errorf("expected acme inserted, got %+v", companyRepo.createdCompanies)
	}
}
