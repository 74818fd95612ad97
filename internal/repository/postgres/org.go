package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

const orgColumns = `id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(logo_url, ''),
	COALESCE(description, ''), status, created_by, created_at, updated_at`

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `INSERT INTO organizations (name, email, phone, logo_url, description, status, created_by, created_at, updated_at)
	          VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, now(), now())
	          RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, org.Name, org.Email, org.Phone, org.LogoURL, org.Description, org.Status, org.CreatedBy).
		Scan(&org.ID, &createdAt)
	if err != nil {
		return err
	}
	org.CreatedOn = createdAt.Format(dateFormat)
	org.UpdatedOn = org.CreatedOn
	return nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`
	return scanOrg(r.db.QueryRowContext(ctx, query, id))
}

func (r *organizationRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE created_by = $1 ORDER BY created_at DESC`
	return r.queryOrgs(ctx, query, ownerID)
}

func (r *organizationRepository) List(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error) {
	if status != "" {
		query := `SELECT ` + orgColumns + ` FROM organizations WHERE status = $1 ORDER BY created_at DESC`
		return r.queryOrgs(ctx, query, status)
	}
	query := `SELECT ` + orgColumns + ` FROM organizations ORDER BY created_at DESC`
	return r.queryOrgs(ctx, query)
}

func (r *organizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	query := `UPDATE organizations
	          SET name = $1, email = NULLIF($2, ''), phone = NULLIF($3, ''), logo_url = NULLIF($4, ''),
	              description = NULLIF($5, ''), updated_at = now()
	          WHERE id = $6 RETURNING updated_at`
	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, org.Name, org.Email, org.Phone, org.LogoURL, org.Description, org.ID).
		Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	org.UpdatedOn = updatedAt.Format(dateFormat)
	return nil
}

func (r *organizationRepository) Activate(ctx context.Context, id int64) (*domain.Organization, error) {
	query := `UPDATE organizations SET status = 'ACTIVE', updated_at = now()
	          WHERE id = $1 AND status = 'PENDING'
	          RETURNING ` + orgColumns
	return scanOrg(r.db.QueryRowContext(ctx, query, id))
}

func (r *organizationRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrgStatus) (*domain.Organization, error) {
	query := `UPDATE organizations SET status = $1, updated_at = now() WHERE id = $2
	          RETURNING ` + orgColumns
	return scanOrg(r.db.QueryRowContext(ctx, query, status, id))
}

func (r *organizationRepository) queryOrgs(ctx context.Context, query string, args ...any) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		var createdBy sql.NullInt64
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&org.ID, &org.Name, &org.Email, &org.Phone, &org.LogoURL,
			&org.Description, &org.Status, &createdBy, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		org.CreatedBy = createdBy.Int64
		org.CreatedOn = createdAt.Format(dateFormat)
		org.UpdatedOn = updatedAt.Format(dateFormat)
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func scanOrg(row *sql.Row) (*domain.Organization, error) {
	org := &domain.Organization{}
	var createdBy sql.NullInt64
	var createdAt, updatedAt time.Time
	err := row.Scan(&org.ID, &org.Name, &org.Email, &org.Phone, &org.LogoURL,
		&org.Description, &org.Status, &createdBy, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	org.CreatedBy = createdBy.Int64
	org.CreatedOn = createdAt.Format(dateFormat)
	org.UpdatedOn = updatedAt.Format(dateFormat)
	return org, nil
}
