package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
)

// memoryCompanyRepository is a process-local CompanyRepository for demos
// and tests. It holds deep copies so callers can't mutate stored state.
type memoryCompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]*models.Company
	founders  map[string][]*models.Founder // keyed by company ID
}

// NewMemoryCompanyRepository creates an in-memory CompanyRepository.
func NewMemoryCompanyRepository() CompanyRepository {
	return &memoryCompanyRepository{
		companies: make(map[string]*models.Company),
		founders:  make(map[string][]*models.Founder),
	}
}

var _ CompanyRepository = (*memoryCompanyRepository)(nil)

func (r *memoryCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.companies[company.ID]; exists {
		return apperrors.ErrConflict
	}

	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
	}

	stored := copyCompany(company)
	stored.Founders = nil
	r.companies[company.ID] = stored
	return nil
}

func (r *memoryCompanyRepository) CreateFounder(ctx context.Context, founder *models.Founder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.companies[founder.CompanyID]; !exists {
		return apperrors.ErrNotFound
	}

	if founder.CreatedAt.IsZero() {
		founder.CreatedAt = time.Now()
	}

	stored := *founder
	r.founders[founder.CompanyID] = append(r.founders[founder.CompanyID], &stored)
	return nil
}

func (r *memoryCompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, ok := r.companies[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	result := copyCompany(company)
	result.Founders = copyFounders(r.founders[id])
	return result, nil
}

func (r *memoryCompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companies := make([]*models.Company, 0, len(r.companies))
	for id, c := range r.companies {
		result := copyCompany(c)
		result.Founders = copyFounders(r.founders[id])
		companies = append(companies, result)
	}

	// Featured first, then newest first within each group.
	sort.SliceStable(companies, func(i, j int) bool {
		if companies[i].Featured != companies[j].Featured {
			return companies[i].Featured
		}
		return companies[i].CreatedAt.After(companies[j].CreatedAt)
	})

	return companies, nil
}

func (r *memoryCompanyRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.companies), nil
}

func (r *memoryCompanyRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies = make(map[string]*models.Company)
	r.founders = make(map[string][]*models.Founder)
	return nil
}

func copyCompany(c *models.Company) *models.Company {
	result := *c
	result.Tags = append([]string(nil), c.Tags...)
	if result.Tags == nil {
		result.Tags = []string{}
	}
	return &result
}

func copyFounders(founders []*models.Founder) []*models.Founder {
	result := make([]*models.Founder, len(founders))
	for i, f := range founders {
		copied := *f
		result[i] = &copied
	}
	return result
}
