package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type certificateRepository struct {
	db *sql.DB
}

func NewCertificateRepository(db *sql.DB) repository.CertificateRepository {
	return &certificateRepository{db: db}
}

const certColumns = `id, user_id, title, COALESCE(issuer, ''), COALESCE(issue_date::text, ''), COALESCE(expiry_date::text, ''),
	file_url, COALESCE(note, ''), created_at, updated_at`

func (r *certificateRepository) Create(ctx context.Context, cert *domain.Certificate) error {
	query := `INSERT INTO volunteer_certificates (user_id, title, issuer, issue_date, expiry_date, file_url, note, created_at, updated_at)
	          VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, '')::date, NULLIF($5, '')::date, $6, NULLIF($7, ''), now(), now())
	          RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		cert.UserID, cert.Title, cert.Issuer, cert.IssueDate, cert.ExpiryDate, cert.FileURL, cert.Note).
		Scan(&cert.ID, &createdAt)
	if err != nil {
		return err
	}
	cert.CreatedOn = createdAt.Format(dateFormat)
	cert.UpdatedOn = cert.CreatedOn
	return nil
}

func (r *certificateRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Certificate, error) {
	query := `SELECT ` + certColumns + ` FROM volunteer_certificates WHERE id = $1 AND user_id = $2`
	return scanCertificate(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *certificateRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Certificate, error) {
	query := `SELECT ` + certColumns + ` FROM volunteer_certificates WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []domain.Certificate
	for rows.Next() {
		var cert domain.Certificate
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&cert.ID, &cert.UserID, &cert.Title, &cert.Issuer, &cert.IssueDate, &cert.ExpiryDate,
			&cert.FileURL, &cert.Note, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		cert.CreatedOn = createdAt.Format(dateFormat)
		cert.UpdatedOn = updatedAt.Format(dateFormat)
		certs = append(certs, cert)
	}
	return certs, rows.Err()
}

func (r *certificateRepository) Update(ctx context.Context, cert *domain.Certificate) error {
	query := `UPDATE volunteer_certificates
	          SET title = $1, issuer = NULLIF($2, ''), issue_date = NULLIF($3, '')::date,
	              expiry_date = NULLIF($4, '')::date, file_url = $5, note = NULLIF($6, ''), updated_at = now()
	          WHERE id = $7 AND user_id = $8 RETURNING updated_at`
	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		cert.Title, cert.Issuer, cert.IssueDate, cert.ExpiryDate, cert.FileURL, cert.Note, cert.ID, cert.UserID).
		Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	cert.UpdatedOn = updatedAt.Format(dateFormat)
	return nil
}

func (r *certificateRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM volunteer_certificates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanCertificate(row *sql.Row) (*domain.Certificate, error) {
	cert := &domain.Certificate{}
	var createdAt, updatedAt time.Time
	err := row.Scan(&cert.ID, &cert.UserID, &cert.Title, &cert.Issuer, &cert.IssueDate, &cert.ExpiryDate,
		&cert.FileURL, &cert.Note, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	cert.CreatedOn = createdAt.Format(dateFormat)
	cert.UpdatedOn = updatedAt.Format(dateFormat)
	return cert, nil
}
