package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type staffApplicationRepository struct {
	db *sql.DB
}

func NewStaffApplicationRepository(db *sql.DB) repository.StaffApplicationRepository {
	return &staffApplicationRepository{db: db}
}

func (r *staffApplicationRepository) Create(ctx context.Context, app *domain.StaffApplication) error {
	query := `INSERT INTO org_staff_applications (org_id, user_id, status, message, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), now(), now()) RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, app.OrgID, app.UserID, app.Status, app.Message).
		Scan(&app.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	app.CreatedOn = createdAt.Format(dateFormat)
	app.UpdatedOn = app.CreatedOn
	return nil
}

func (r *staffApplicationRepository) GetByOrgAndUser(ctx context.Context, orgID, userID int64) (*domain.StaffApplication, error) {
	query := `SELECT id, org_id, user_id, status, COALESCE(message, ''), decided_by, decided_at,
	                 COALESCE(decision_note, ''), created_at, updated_at
	          FROM org_staff_applications WHERE org_id = $1 AND user_id = $2`
	app := &domain.StaffApplication{}
	var decidedBy sql.NullInt64
	var decidedAt sql.NullTime
	var createdAt, updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, orgID, userID).Scan(
		&app.ID, &app.OrgID, &app.UserID, &app.Status, &app.Message,
		&decidedBy, &decidedAt, &app.DecisionNote, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if decidedBy.Valid {
		app.DecidedBy = &decidedBy.Int64
	}
	if decidedAt.Valid {
		app.DecidedAt = &decidedAt.Time
	}
	app.CreatedOn = createdAt.Format(dateFormat)
	app.UpdatedOn = updatedAt.Format(dateFormat)
	return app, nil
}

func (r *staffApplicationRepository) CancelPending(ctx context.Context, orgID, userID int64) (*domain.StaffApplication, error) {
	query := `UPDATE org_staff_applications SET status = 'CANCELLED', updated_at = now()
	          WHERE org_id = $1 AND user_id = $2 AND status = 'PENDING'
	          RETURNING id, org_id, user_id, status`
	app := &domain.StaffApplication{}
	err := r.db.QueryRowContext(ctx, query, orgID, userID).
		Scan(&app.ID, &app.OrgID, &app.UserID, &app.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *staffApplicationRepository) ListByOrg(ctx context.Context, orgID int64, status domain.ApplicationStatus) ([]domain.StaffApplication, error) {
	query := `SELECT a.id, a.org_id, a.user_id, a.status, COALESCE(a.message, ''), COALESCE(a.decision_note, ''), a.created_at,
	                 COALESCE(u.email, ''), COALESCE(u.phone, ''), COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
	          FROM org_staff_applications a
	          JOIN users u ON u.id = a.user_id
	          WHERE a.org_id = $1 AND ($2 = '' OR a.status = $2)
	          ORDER BY a.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.StaffApplication
	for rows.Next() {
		var app domain.StaffApplication
		var createdAt time.Time
		if err := rows.Scan(&app.ID, &app.OrgID, &app.UserID, &app.Status, &app.Message, &app.DecisionNote, &createdAt,
			&app.Email, &app.Phone, &app.FirstName, &app.LastName); err != nil {
			return nil, err
		}
		app.CreatedOn = createdAt.Format(dateFormat)
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// Decide couples the decision record and the membership table: the status
// update and, on approval, the membership upsert commit together or not at
// all. Callers never observe an APPROVED application without an ACTIVE
// membership.
func (r *staffApplicationRepository) Decide(ctx context.Context, orgID, appID, deciderID int64, decision domain.Decision, note string) (*domain.StaffApplication, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var status domain.ApplicationStatus
	var userID int64
	err = tx.QueryRowContext(ctx,
		`SELECT status, user_id FROM org_staff_applications WHERE id = $1 AND org_id = $2 FOR UPDATE`,
		appID, orgID).Scan(&status, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if status != domain.ApplicationStatusPending {
		return nil, repository.ErrNotPending
	}

	app := &domain.StaffApplication{}
	var decidedAt time.Time
	err = tx.QueryRowContext(ctx,
		`UPDATE org_staff_applications
		 SET status = $1, decided_by = $2, decided_at = now(), decision_note = NULLIF($3, ''), updated_at = now()
		 WHERE id = $4
		 RETURNING id, org_id, user_id, status, COALESCE(decision_note, ''), decided_at`,
		decision, deciderID, note, appID).
		Scan(&app.ID, &app.OrgID, &app.UserID, &app.Status, &app.DecisionNote, &decidedAt)
	if err != nil {
		return nil, err
	}
	app.DecidedBy = &deciderID
	app.DecidedAt = &decidedAt

	if decision == domain.ApplicationStatusApproved {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO org_members (org_id, user_id, org_role, status, created_at, updated_at)
			 VALUES ($1, $2, 'STAFF', 'ACTIVE', now(), now())
			 ON CONFLICT (org_id, user_id) DO UPDATE SET status = 'ACTIVE', updated_at = now()`,
			orgID, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return app, nil
}
