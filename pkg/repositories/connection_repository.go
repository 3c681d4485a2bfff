package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/database"
	"github.com/pear-vc/demoday-engine/pkg/models"
)

// ConnectionUpdate is an explicit sparse field set for partial updates.
// Only non-nil fields are written; absent fields are left untouched, so a
// caller can never accidentally clear a field it did not mean to change.
type ConnectionUpdate struct {
	Status          *models.ConnectionStatus
	PearNotes       *string
	FounderResponse *string
	ReviewedAt      *time.Time
	RespondedAt     *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u *ConnectionUpdate) IsEmpty() bool {
	return u.Status == nil && u.PearNotes == nil && u.FounderResponse == nil &&
		u.ReviewedAt == nil && u.RespondedAt == nil
}

// ConnectionRepository provides data access for connection requests.
//
// The repository is a dumb store: it applies whatever fields it is handed.
// Status legality and timestamp side effects are decided by the service
// layer through the transition function; nothing below it may write a raw
// status.
type ConnectionRepository interface {
	// Insert persists a request whose ID, CreatedAt and Status have
	// already been assigned by the caller.
	Insert(ctx context.Context, request *models.ConnectionRequest) error
	// GetByID returns a request or apperrors.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.ConnectionRequest, error)
	// List returns all requests, newest first.
	List(ctx context.Context) ([]*models.ConnectionRequest, error)
	// ListByCompany returns requests whose companyId matches exactly.
	ListByCompany(ctx context.Context, companyID string) ([]*models.ConnectionRequest, error)
	// ListByInvestor returns requests whose investorId matches exactly.
	ListByInvestor(ctx context.Context, investorID string) ([]*models.ConnectionRequest, error)
	// Update applies the non-nil fields of update and returns the updated
	// record, or apperrors.ErrNotFound.
	Update(ctx context.Context, id string, update *ConnectionUpdate) (*models.ConnectionRequest, error)
	// Delete removes a request. Not exposed through the lifecycle; kept as
	// a store primitive for administrative cleanup.
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every request.
	DeleteAll(ctx context.Context) error
	// Stats returns counts grouped by current status.
	Stats(ctx context.Context) (*models.ConnectionStats, error)
}

type connectionRepository struct {
	db *database.DB
}

// NewConnectionRepository creates a PostgreSQL-backed ConnectionRepository.
func NewConnectionRepository(db *database.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

var _ ConnectionRepository = (*connectionRepository)(nil)

const connectionColumns = `
	id, investor_id, investor_name, investor_email, investor_firm,
	investor_linkedin, company_id, company_name, message, interests,
	check_size, timeline, status, pear_notes, founder_response,
	created_at, reviewed_at, responded_at`

func (r *connectionRepository) Insert(ctx context.Context, request *models.ConnectionRequest) error {
	query := `
		INSERT INTO connection_requests (
			id, investor_id, investor_name, investor_email, investor_firm,
			investor_linkedin, company_id, company_name, message, interests,
			check_size, timeline, status, pear_notes, founder_response, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.InvestorID,
		request.InvestorName,
		request.InvestorEmail,
		nullString(request.InvestorFirm),
		nullString(request.InvestorLinkedIn),
		request.CompanyID,
		request.CompanyName,
		request.Message,
		textArray(request.Interests),
		nullString(request.CheckSize),
		nullString(request.Timeline),
		string(request.Status),
		nullString(request.PearNotes),
		nullString(request.FounderResponse),
		request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert connection request: %w", err)
	}

	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	query := `SELECT ` + connectionColumns + ` FROM connection_requests WHERE id = $1`

	request, err := scanConnection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get connection request: %w", err)
	}

	return request, nil
}

func (r *connectionRepository) List(ctx context.Context) ([]*models.ConnectionRequest, error) {
	query := `SELECT ` + connectionColumns + ` FROM connection_requests ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *connectionRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.ConnectionRequest, error) {
	query := `SELECT ` + connectionColumns + ` FROM connection_requests WHERE company_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, companyID)
}

func (r *connectionRepository) ListByInvestor(ctx context.Context, investorID string) ([]*models.ConnectionRequest, error) {
	query := `SELECT ` + connectionColumns + ` FROM connection_requests WHERE investor_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, investorID)
}

func (r *connectionRepository) Update(ctx context.Context, id string, update *ConnectionUpdate) (*models.ConnectionRequest, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var setClauses []string
	var values []any
	paramIndex := 1

	addClause := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, paramIndex))
		values = append(values, value)
		paramIndex++
	}

	if update.Status != nil {
		addClause("status", string(*update.Status))
	}
	if update.PearNotes != nil {
		addClause("pear_notes", *update.PearNotes)
	}
	if update.FounderResponse != nil {
		addClause("founder_response", *update.FounderResponse)
	}
	if update.ReviewedAt != nil {
		addClause("reviewed_at", *update.ReviewedAt)
	}
	if update.RespondedAt != nil {
		addClause("responded_at", *update.RespondedAt)
	}

	values = append(values, id)
	query := fmt.Sprintf(
		`UPDATE connection_requests SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), paramIndex, connectionColumns,
	)

	request, err := scanConnection(r.db.QueryRow(ctx, query, values...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update connection request: %w", err)
	}

	return request, nil
}

func (r *connectionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM connection_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete connection request: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *connectionRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM connection_requests`); err != nil {
		return fmt.Errorf("failed to delete connection requests: %w", err)
	}
	return nil
}

func (r *connectionRepository) Stats(ctx context.Context) (*models.ConnectionStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'unreviewed') AS unreviewed,
			COUNT(*) FILTER (WHERE status = 'reviewed') AS reviewed,
			COUNT(*) FILTER (WHERE status = 'accepted') AS accepted,
			COUNT(*) FILTER (WHERE status = 'declined') AS declined
		FROM connection_requests`

	stats := &models.ConnectionStats{}
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Unreviewed, &stats.Reviewed, &stats.Accepted, &stats.Declined,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query connection stats: %w", err)
	}

	return stats, nil
}

func (r *connectionRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.ConnectionRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query connection requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.ConnectionRequest
	for rows.Next() {
		request, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate connection requests: %w", err)
	}

	return requests, nil
}

func scanConnection(row rowScanner) (*models.ConnectionRequest, error) {
	request := &models.ConnectionRequest{}
	var firm, linkedIn, checkSize, timeline, pearNotes, founderResponse *string
	var status string
	err := row.Scan(
		&request.ID, &request.InvestorID, &request.InvestorName,
		&request.InvestorEmail, &firm, &linkedIn, &request.CompanyID,
		&request.CompanyName, &request.Message, &request.Interests,
		&checkSize, &timeline, &status, &pearNotes, &founderResponse,
		&request.CreatedAt, &request.ReviewedAt, &request.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	request.InvestorFirm = deref(firm)
	request.InvestorLinkedIn = deref(linkedIn)
	request.CheckSize = deref(checkSize)
	request.Timeline = deref(timeline)
	request.PearNotes = deref(pearNotes)
	request.FounderResponse = deref(founderResponse)
	request.Status = models.ConnectionStatus(status)
	if request.Interests == nil {
		request.Interests = []string{}
	}
	return request, nil
}
