package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) IsActiveStaff(ctx context.Context, orgID, userID int64) (bool, error) {
	query := `SELECT EXISTS (
	            SELECT 1 FROM org_members WHERE org_id = $1 AND user_id = $2 AND status = 'ACTIVE'
	          )`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, orgID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *memberRepository) ListByOrg(ctx context.Context, orgID int64) ([]domain.OrgMember, error) {
	query := `SELECT m.id, m.org_id, m.user_id, m.org_role, m.status, m.created_at,
	                 COALESCE(u.email, ''), COALESCE(u.phone, ''), COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
	          FROM org_members m
	          JOIN users u ON u.id = m.user_id
	          WHERE m.org_id = $1 AND m.status = 'ACTIVE'
	          ORDER BY m.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.OrgMember
	for rows.Next() {
		var m domain.OrgMember
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.OrgID, &m.UserID, &m.OrgRole, &m.Status, &createdAt,
			&m.Email, &m.Phone, &m.FirstName, &m.LastName); err != nil {
			return nil, err
		}
		m.CreatedOn = createdAt.Format(dateFormat)
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *memberRepository) Suspend(ctx context.Context, orgID, userID int64) (*domain.OrgMember, error) {
	query := `UPDATE org_members SET status = 'SUSPENDED', updated_at = now()
	          WHERE org_id = $1 AND user_id = $2
	          RETURNING id, org_id, user_id, org_role, status, created_at`
	m := &domain.OrgMember{}
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, orgID, userID).
		Scan(&m.ID, &m.OrgID, &m.UserID, &m.OrgRole, &m.Status, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	m.CreatedOn = createdAt.Format(dateFormat)
	return m, nil
}
