package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (role, email, phone, password_hash, first_name, last_name, status, created_at, updated_at)
	          VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, now(), now()) RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, u.Role, u.Email, u.Phone, u.PasswordHash, u.FirstName, u.LastName, u.Status).
		Scan(&u.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	u.CreatedOn = createdAt.Format(dateFormat)
	u.UpdatedOn = u.CreatedOn
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, role, COALESCE(email, ''), COALESCE(phone, ''), password_hash,
	                 COALESCE(first_name, ''), COALESCE(last_name, ''), status, created_at, updated_at
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	// Emails are matched case-insensitively; phone numbers verbatim.
	ident := identifier
	if strings.Contains(ident, "@") {
		ident = strings.ToLower(ident)
	}
	query := `SELECT id, role, COALESCE(email, ''), COALESCE(phone, ''), password_hash,
	                 COALESCE(first_name, ''), COALESCE(last_name, ''), status, created_at, updated_at
	          FROM users WHERE LOWER(email) = $1 OR phone = $2`
	return r.scanUser(r.db.QueryRowContext(ctx, query, ident, identifier))
}

func (r *userRepository) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	query := `UPDATE users SET status = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
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

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdAt, updatedAt time.Time
	err := row.Scan(&u.ID, &u.Role, &u.Email, &u.Phone, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.CreatedOn = createdAt.Format(dateFormat)
	u.UpdatedOn = updatedAt.Format(dateFormat)
	return u, nil
}
