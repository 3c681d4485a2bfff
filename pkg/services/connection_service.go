package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/repositories"
	"github.com/pear-vc/demoday-engine/pkg/security"
)

// CreateConnectionInput carries the fields an investor submits when
// requesting a connection to a company.
type CreateConnectionInput struct {
	InvestorID       string
	InvestorName     string
	InvestorEmail    string
	InvestorFirm     string
	InvestorLinkedIn string
	CompanyID        string
	CompanyName      string
	Message          string
	Interests        []string
	CheckSize        string
	Timeline         string
}

// UpdateConnectionInput is the sparse update accepted by the review flow.
// Nil fields are left untouched.
type UpdateConnectionInput struct {
	Status          *models.ConnectionStatus
	PearNotes       *string
	FounderResponse *string
}

// ConnectionService governs the connection request lifecycle. All status
// writes flow through the transition function; the repository never
// applies a raw status on its own.
type ConnectionService interface {
	// Create validates and persists a new request with status unreviewed.
	// Missing required fields are reported via apperrors.ValidationError.
	Create(ctx context.Context, input *CreateConnectionInput) (*models.ConnectionRequest, error)

	// Get returns a request or apperrors.ErrNotFound.
	Get(ctx context.Context, id string) (*models.ConnectionRequest, error)

	// List returns all requests, newest first.
	List(ctx context.Context) ([]*models.ConnectionRequest, error)

	// ListByCompany returns requests for one company.
	ListByCompany(ctx context.Context, companyID string) ([]*models.ConnectionRequest, error)

	// ListByInvestor returns requests from one investor.
	ListByInvestor(ctx context.Context, investorID string) ([]*models.ConnectionRequest, error)

	// Update applies a review action. Status changes are validated against
	// the transition table and carry their timestamp side effects. On a
	// transition to accepted, the returned Notification holds the pre-filled
	// e-mail for the investor; it is nil otherwise.
	Update(ctx context.Context, id string, input *UpdateConnectionInput) (*models.ConnectionRequest, *Notification, error)

	// Stats returns counts grouped by status.
	Stats(ctx context.Context) (*models.ConnectionStats, error)

	// SeedInsert persists a request as-is, including a non-default initial
	// status. Administrative seeding only; client-facing creation must use
	// Create.
	SeedInsert(ctx context.Context, request *models.ConnectionRequest) error
}

type connectionService struct {
	connectionRepo repositories.ConnectionRepository
	logger         *zap.Logger
	now            func() time.Time
}

// NewConnectionService creates a new connection service with dependencies.
func NewConnectionService(connectionRepo repositories.ConnectionRepository, logger *zap.Logger) ConnectionService {
	return &connectionService{
		connectionRepo: connectionRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *connectionService) Create(ctx context.Context, input *CreateConnectionInput) (*models.ConnectionRequest, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"investorName", input.InvestorName},
		{"investorEmail", input.InvestorEmail},
		{"companyId", input.CompanyID},
		{"companyName", input.CompanyName},
		{"message", input.Message},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	for _, interest := range input.Interests {
		if !models.IsValidInterest(interest) {
			return nil, fmt.Errorf("%w: unknown interest %q", apperrors.ErrInvalidInput, interest)
		}
	}

	// Free text is screened before it reaches the store. Detection is
	// logged for the audit trail but does not block the request.
	for _, hit := range security.CheckFields(map[string]string{"message": input.Message}) {
		s.logger.Warn("Injection pattern in connection request field",
			zap.String("field", hit.FieldName),
			zap.String("fingerprint", hit.Fingerprint))
	}

	investorID := input.InvestorID
	if investorID == "" {
		investorID = "guest"
	}
	interests := input.Interests
	if interests == nil {
		interests = []string{}
	}

	request := &models.ConnectionRequest{
		ID:               models.NewConnectionRequestID(),
		InvestorID:       investorID,
		InvestorName:     input.InvestorName,
		InvestorEmail:    input.InvestorEmail,
		InvestorFirm:     input.InvestorFirm,
		InvestorLinkedIn: input.InvestorLinkedIn,
		CompanyID:        input.CompanyID,
		CompanyName:      input.CompanyName,
		Message:          input.Message,
		Interests:        interests,
		CheckSize:        input.CheckSize,
		Timeline:         input.Timeline,
		Status:           models.StatusUnreviewed,
		CreatedAt:        s.now(),
	}

	if err := s.connectionRepo.Insert(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to persist connection request: %w", err)
	}

	s.logger.Info("Connection request created",
		zap.String("request_id", request.ID),
		zap.String("company_id", request.CompanyID),
		zap.String("investor_id", request.InvestorID))

	return request, nil
}

func (s *connectionService) Get(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	return s.connectionRepo.GetByID(ctx, id)
}

func (s *connectionService) List(ctx context.Context) ([]*models.ConnectionRequest, error) {
	return s.connectionRepo.List(ctx)
}

func (s *connectionService) ListByCompany(ctx context.Context, companyID string) ([]*models.ConnectionRequest, error) {
	return s.connectionRepo.ListByCompany(ctx, companyID)
}

func (s *connectionService) ListByInvestor(ctx context.Context, investorID string) ([]*models.ConnectionRequest, error) {
	return s.connectionRepo.ListByInvestor(ctx, investorID)
}

func (s *connectionService) Update(ctx context.Context, id string, input *UpdateConnectionInput) (*models.ConnectionRequest, *Notification, error) {
	current, err := s.connectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	update := &repositories.ConnectionUpdate{
		PearNotes:       input.PearNotes,
		FounderResponse: input.FounderResponse,
	}

	if input.Status != nil && *input.Status != current.Status {
		effects, err := models.Transition(current.Status, *input.Status, s.now())
		if err != nil {
			return nil, nil, err
		}
		update.Status = input.Status
		update.ReviewedAt = effects.ReviewedAt
		update.RespondedAt = effects.RespondedAt
	}

	updated, err := s.connectionRepo.Update(ctx, id, update)
	if err != nil {
		return nil, nil, err
	}

	var notification *Notification
	if update.Status != nil && *update.Status == models.StatusAccepted {
		notification = ComposeAcceptanceEmail(updated)
	}

	if update.Status != nil {
		s.logger.Info("Connection request transitioned",
			zap.String("request_id", id),
			zap.String("from", string(current.Status)),
			zap.String("to", string(*update.Status)))
	}

	return updated, notification, nil
}

func (s *connectionService) Stats(ctx context.Context) (*models.ConnectionStats, error) {
	return s.connectionRepo.Stats(ctx)
}

func (s *connectionService) SeedInsert(ctx context.Context, request *models.ConnectionRequest) error {
	if !request.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, request.Status)
	}
	if request.ID == "" {
		request.ID = models.NewConnectionRequestID()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = s.now()
	}
	return s.connectionRepo.Insert(ctx, request)
}
