package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/seed"
)

func TestCompanyServiceList(t *testing.T) {
	repo := &mockCompanyRepository{companies: []*models.Company{
		{ID: "c1", Name: "Innovate Solutions"},
		{ID: "c2", Name: "LedgerPay"},
	}}
	svc := NewCompanyService(repo, zap.NewNop())

	companies := svc.List(context.Background())
	if len(companies) != 2 {
		t.Errorf("expected 2 companies, got %d", len(companies))
	}
}

func TestCompanyServiceListFallsBackOnStorageFailure(t *testing.T) {
	repo := &mockCompanyRepository{listErr: errors.New("connection refused")}
	svc := NewCompanyService(repo, zap.NewNop())

	companies := svc.List(context.Background())

	if len(companies) != len(seed.Companies()) {
		t.Errorf("expected the fallback dataset (%d companies), got %d",
			len(seed.Companies()), len(companies))
	}
}

func TestCompanyServiceListNeverReturnsNil(t *testing.T) {
	svc := NewCompanyService(&mockCompanyRepository{}, zap.NewNop())

	if companies := svc.List(context.Background()); companies == nil {
		t.Error("expected an empty slice, got nil")
	}
}

func TestCompanyServiceGet(t *testing.T) {
	repo := &mockCompanyRepository{companies: []*models.Company{{ID: "c1", Name: "Innovate Solutions"}}}
	svc := NewCompanyService(repo, zap.NewNop())

	company, err := svc.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.Name != "Innovate Solutions" {
		t.Errorf("unexpected company %q", company.Name)
	}

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompanyServiceGetFallsBackOnStorageFailure(t *testing.T) {
	repo := &mockCompanyRepository{getErr: errors.New("connection refused")}
	svc := NewCompanyService(repo, zap.NewNop())

	fallbackID := seed.Companies()[0].ID
	company, err := svc.Get(context.Background(), fallbackID)
	if err != nil {
		t.Fatalf("expected fallback hit, got %v", err)
	}
	if company.ID != fallbackID {
		t.Errorf("expected %q, got %q", fallbackID, company.ID)
	}

	if _, err := svc.Get(context.Background(), "missing-everywhere"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
