package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type eventApplicationRepository struct {
	db *sql.DB
}

func NewEventApplicationRepository(db *sql.DB) repository.EventApplicationRepository {
	return &eventApplicationRepository{db: db}
}

func (r *eventApplicationRepository) Create(ctx context.Context, app *domain.EventApplication) error {
	query := `INSERT INTO event_applications (event_id, user_id, status, message, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), now(), now()) RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, app.EventID, app.UserID, app.Status, app.Message).
		Scan(&app.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	app.CreatedOn = createdAt.Format(dateFormat)
	return nil
}

func (r *eventApplicationRepository) CancelPending(ctx context.Context, eventID, userID int64) (*domain.EventApplication, error) {
	query := `UPDATE event_applications SET status = 'CANCELLED', updated_at = now()
	          WHERE event_id = $1 AND user_id = $2 AND status = 'PENDING'
	          RETURNING id, event_id, user_id, status`
	app := &domain.EventApplication{}
	err := r.db.QueryRowContext(ctx, query, eventID, userID).
		Scan(&app.ID, &app.EventID, &app.UserID, &app.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *eventApplicationRepository) ListByEvent(ctx context.Context, eventID int64, status domain.ApplicationStatus) ([]domain.EventApplication, error) {
	query := `SELECT a.id, a.event_id, a.user_id, a.status, COALESCE(a.message, ''), COALESCE(a.decision_note, ''), a.created_at,
	                 COALESCE(u.email, ''), COALESCE(u.phone, ''), COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
	          FROM event_applications a
	          JOIN users u ON u.id = a.user_id
	          WHERE a.event_id = $1 AND ($2 = '' OR a.status = $2)
	          ORDER BY a.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, eventID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.EventApplication
	for rows.Next() {
		var app domain.EventApplication
		var createdAt time.Time
		if err := rows.Scan(&app.ID, &app.EventID, &app.UserID, &app.Status, &app.Message, &app.DecisionNote, &createdAt,
			&app.Email, &app.Phone, &app.FirstName, &app.LastName); err != nil {
			return nil, err
		}
		app.CreatedOn = createdAt.Format(dateFormat)
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *eventApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.MyApplication, error) {
	query := `SELECT a.id, a.status, a.created_at, e.id, e.title, e.start_at, o.name
	          FROM event_applications a
	          JOIN events e ON e.id = a.event_id
	          JOIN organizations o ON o.id = e.org_id
	          WHERE a.user_id = $1
	          ORDER BY a.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.MyApplication
	for rows.Next() {
		var app domain.MyApplication
		var createdAt time.Time
		if err := rows.Scan(&app.ApplicationID, &app.Status, &createdAt,
			&app.EventID, &app.EventTitle, &app.StartAt, &app.OrgName); err != nil {
			return nil, err
		}
		app.CreatedOn = createdAt.Format(dateFormat)
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *eventApplicationRepository) CountApproved(ctx context.Context, eventID int64) (int32, error) {
	query := `SELECT COUNT(*) FROM event_applications WHERE event_id = $1 AND status = 'APPROVED'`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *eventApplicationRepository) HasApproved(ctx context.Context, eventID, userID int64) (bool, error) {
	query := `SELECT EXISTS (
	            SELECT 1 FROM event_applications WHERE event_id = $1 AND user_id = $2 AND status = 'APPROVED'
	          )`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Decide serializes concurrent approvals against the same event by locking
// the events row first, then rechecking capacity against a fresh APPROVED
// count. Two managers approving the last slot at once cannot both succeed.
func (r *eventApplicationRepository) Decide(ctx context.Context, eventID, appID, deciderID int64, decision domain.Decision, note string) (*domain.EventApplication, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var capacity int32
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(capacity, 0) FROM events WHERE id = $1 FOR UPDATE`, eventID).
		Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var status domain.ApplicationStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM event_applications WHERE id = $1 AND event_id = $2`,
		appID, eventID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if status != domain.ApplicationStatusPending {
		return nil, repository.ErrNotPending
	}

	if decision == domain.ApplicationStatusApproved && capacity > 0 {
		var approved int32
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM event_applications WHERE event_id = $1 AND status = 'APPROVED'`,
			eventID).Scan(&approved)
		if err != nil {
			return nil, err
		}
		if approved >= capacity {
			return nil, repository.ErrCapacityFull
		}
	}

	app := &domain.EventApplication{}
	var decidedAt time.Time
	err = tx.QueryRowContext(ctx,
		`UPDATE event_applications
		 SET status = $1, decided_by = $2, decided_at = now(), decision_note = NULLIF($3, ''), updated_at = now()
		 WHERE id = $4
		 RETURNING id, event_id, user_id, status, COALESCE(decision_note, ''), decided_at`,
		decision, deciderID, note, appID).
		Scan(&app.ID, &app.EventID, &app.UserID, &app.Status, &app.DecisionNote, &decidedAt)
	if err != nil {
		return nil, err
	}
	app.DecidedBy = &deciderID
	app.DecidedAt = &decidedAt

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return app, nil
}

func (r *eventApplicationRepository) History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	query := `SELECT e.id, e.title, e.start_at, o.name, a.status,
	                 COALESCE(t.status, ''), t.check_in_at
	          FROM event_applications a
	          JOIN events e ON e.id = a.event_id
	          JOIN organizations o ON o.id = e.org_id
	          LEFT JOIN event_attendance t ON t.event_id = a.event_id AND t.user_id = a.user_id
	          WHERE a.user_id = $1 AND a.status = 'APPROVED' AND e.status = 'COMPLETED'
	          ORDER BY e.start_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var checkInAt sql.NullTime
		if err := rows.Scan(&entry.EventID, &entry.EventTitle, &entry.StartAt, &entry.OrgName,
			&entry.ApplicationStatus, &entry.AttendanceStatus, &checkInAt); err != nil {
			return nil, err
		}
		if checkInAt.Valid {
			entry.CheckInAt = &checkInAt.Time
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
