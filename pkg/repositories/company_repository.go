// Package repositories provides data access for the demo day platform.
// Each repository has a PostgreSQL implementation and an in-memory
// implementation; the backend is chosen once at process start.
package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
	"github.com/pear-vc/demoday-engine/pkg/database"
	"github.com/pear-vc/demoday-engine/pkg/models"
)

// CompanyRepository provides data access for companies and their founders.
type CompanyRepository interface {
	// Create inserts a company. Founders are inserted separately via
	// CreateFounder; the company's Founders slice is ignored here.
	Create(ctx context.Context, company *models.Company) error
	// CreateFounder inserts a founder linked to an existing company.
	CreateFounder(ctx context.Context, founder *models.Founder) error
	// GetByID returns a company with its founders populated, or
	// apperrors.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Company, error)
	// List returns all companies with founders populated, featured first,
	// then newest first within each group.
	List(ctx context.Context) ([]*models.Company, error)
	// Count returns the number of companies.
	Count(ctx context.Context) (int, error)
	// DeleteAll removes every company and, via cascade, every founder.
	DeleteAll(ctx context.Context) error
}

type companyRepository struct {
	db *database.DB
}

// NewCompanyRepository creates a PostgreSQL-backed CompanyRepository.
func NewCompanyRepository(db *database.DB) CompanyRepository {
	return &companyRepository{db: db}
}

var _ CompanyRepository = (*companyRepository)(nil)

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (
			id, name, tagline, logo, description, industry, stage, batch,
			location, website, video_url, pitch_deck_url, tags, featured, image
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		company.ID,
		company.Name,
		company.Tagline,
		nullString(company.Logo),
		company.Description,
		company.Industry,
		company.Stage,
		company.Batch,
		company.Location,
		nullString(company.Website),
		nullString(company.VideoURL),
		nullString(company.PitchDeckURL),
		textArray(company.Tags),
		company.Featured,
		nullString(company.Image),
	).Scan(&company.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (r *companyRepository) CreateFounder(ctx context.Context, founder *models.Founder) error {
	query := `
		INSERT INTO founders (
			id, name, title, photo, bio, linkedin, twitter, company_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		founder.ID,
		founder.Name,
		founder.Title,
		nullString(founder.Photo),
		founder.Bio,
		nullString(founder.LinkedIn),
		nullString(founder.Twitter),
		founder.CompanyID,
	).Scan(&founder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create founder: %w", err)
	}

	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	query := `
		SELECT id, name, tagline, logo, description, industry, stage, batch,
		       location, website, video_url, pitch_deck_url, tags, featured,
		       image, created_at
		FROM companies
		WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	founders, err := r.foundersByCompany(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	company.Founders = founders[id]
	if company.Founders == nil {
		company.Founders = []*models.Founder{}
	}

	return company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]*models.Company, error) {
	query := `
		SELECT id, name, tagline, logo, description, industry, stage, batch,
		       location, website, video_url, pitch_deck_url, tags, featured,
		       image, created_at
		FROM companies
		ORDER BY featured DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	var ids []string
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
		ids = append(ids, company.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}

	founders, err := r.foundersByCompany(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		c.Founders = founders[c.ID]
		if c.Founders == nil {
			c.Founders = []*models.Founder{}
		}
	}

	return companies, nil
}

func (r *companyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}

func (r *companyRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM companies`); err != nil {
		return fmt.Errorf("failed to delete companies: %w", err)
	}
	return nil
}

// foundersByCompany loads founders for the given company IDs in one query.
func (r *companyRepository) foundersByCompany(ctx context.Context, companyIDs []string) (map[string][]*models.Founder, error) {
	result := make(map[string][]*models.Founder)
	if len(companyIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, name, title, photo, bio, linkedin, twitter, company_id, created_at
		FROM founders
		WHERE company_id = ANY($1)
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query founders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f := &models.Founder{}
		var photo, linkedIn, twitter *string
		if err := rows.Scan(&f.ID, &f.Name, &f.Title, &photo, &f.Bio, &linkedIn, &twitter, &f.CompanyID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan founder: %w", err)
		}
		f.Photo = deref(photo)
		f.LinkedIn = deref(linkedIn)
		f.Twitter = deref(twitter)
		result[f.CompanyID] = append(result[f.CompanyID], f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate founders: %w", err)
	}

	return result, nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*models.Company, error) {
	c := &models.Company{}
	var logo, website, videoURL, pitchDeckURL, image *string
	err := row.Scan(
		&c.ID, &c.Name, &c.Tagline, &logo, &c.Description, &c.Industry,
		&c.Stage, &c.Batch, &c.Location, &website, &videoURL, &pitchDeckURL,
		&c.Tags, &c.Featured, &image, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Logo = deref(logo)
	c.Website = deref(website)
	c.VideoURL = deref(videoURL)
	c.PitchDeckURL = deref(pitchDeckURL)
	c.Image = deref(image)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
