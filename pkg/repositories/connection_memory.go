package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
)

// memoryConnectionRepository is a process-local ConnectionRepository for
// demos and tests.
type memoryConnectionRepository struct {
	mu       sync.RWMutex
	requests map[string]*models.ConnectionRequest
}

// NewMemoryConnectionRepository creates an in-memory ConnectionRepository.
func NewMemoryConnectionRepository() ConnectionRepository {
	return &memoryConnectionRepository{
		requests: make(map[string]*models.ConnectionRequest),
	}
}

var _ ConnectionRepository = (*memoryConnectionRepository)(nil)

func (r *memoryConnectionRepository) Insert(ctx context.Context, request *models.ConnectionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[request.ID]; exists {
		return apperrors.ErrConflict
	}

	r.requests[request.ID] = copyConnection(request)
	return nil
}

func (r *memoryConnectionRepository) GetByID(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return copyConnection(request), nil
}

func (r *memoryConnectionRepository) List(ctx context.Context) ([]*models.ConnectionRequest, error) {
	return r.filtered(func(*models.ConnectionRequest) bool { return true }), nil
}

func (r *memoryConnectionRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.ConnectionRequest, error) {
	return r.filtered(func(req *models.ConnectionRequest) bool {
		return req.CompanyID == companyID
	}), nil
}

func (r *memoryConnectionRepository) ListByInvestor(ctx context.Context, investorID string) ([]*models.ConnectionRequest, error) {
	return r.filtered(func(req *models.ConnectionRequest) bool {
		return req.InvestorID == investorID
	}), nil
}

func (r *memoryConnectionRepository) Update(ctx context.Context, id string, update *ConnectionUpdate) (*models.ConnectionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if update.Status != nil {
		request.Status = *update.Status
	}
	if update.PearNotes != nil {
		request.PearNotes = *update.PearNotes
	}
	if update.FounderResponse != nil {
		request.FounderResponse = *update.FounderResponse
	}
	if update.ReviewedAt != nil {
		t := *update.ReviewedAt
		request.ReviewedAt = &t
	}
	if update.RespondedAt != nil {
		t := *update.RespondedAt
		request.RespondedAt = &t
	}

	return copyConnection(request), nil
}

func (r *memoryConnectionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.requests, id)
	return nil
}

func (r *memoryConnectionRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = make(map[string]*models.ConnectionRequest)
	return nil
}

func (r *memoryConnectionRepository) Stats(ctx context.Context) (*models.ConnectionStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &models.ConnectionStats{Total: len(r.requests)}
	for _, req := range r.requests {
		switch req.Status {
		case models.StatusUnreviewed:
			stats.Unreviewed++
		case models.StatusReviewed:
			stats.Reviewed++
		case models.StatusAccepted:
			stats.Accepted++
		case models.StatusDeclined:
			stats.Declined++
		}
	}
	return stats, nil
}

func (r *memoryConnectionRepository) filtered(keep func(*models.ConnectionRequest) bool) []*models.ConnectionRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var requests []*models.ConnectionRequest
	for _, req := range r.requests {
		if keep(req) {
			requests = append(requests, copyConnection(req))
		}
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	return requests
}

func copyConnection(request *models.ConnectionRequest) *models.ConnectionRequest {
	result := *request
	result.Interests = append([]string(nil), request.Interests...)
	if result.Interests == nil {
		result.Interests = []string{}
	}
	if request.ReviewedAt != nil {
		t := *request.ReviewedAt
		result.ReviewedAt = &t
	}
	if request.RespondedAt != nil {
		t := *request.RespondedAt
		result.RespondedAt = &t
	}
	return &result
}
