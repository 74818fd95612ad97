package postgres

import (
	"context"
	"database/sql"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, att *domain.Attendance) error {
	query := `INSERT INTO event_attendance (event_id, user_id, status, check_in_at, note, marked_by, marked_at)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, now())
	          ON CONFLICT (event_id, user_id)
	          DO UPDATE SET status = $3, check_in_at = $4, note = NULLIF($5, ''), marked_by = $6, marked_at = now()
	          RETURNING id, marked_at`
	return r.db.QueryRowContext(ctx, query,
		att.EventID, att.UserID, att.Status, att.CheckInAt, att.Note, att.MarkedBy).
		Scan(&att.ID, &att.MarkedAt)
}

func (r *attendanceRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Attendance, error) {
	query := `SELECT t.id, t.event_id, t.user_id, t.status, t.check_in_at, COALESCE(t.note, ''), t.marked_by, t.marked_at,
	                 COALESCE(u.email, ''), COALESCE(u.first_name, ''), COALESCE(u.last_name, '')
	          FROM event_attendance t
	          JOIN users u ON u.id = t.user_id
	          WHERE t.event_id = $1
	          ORDER BY t.marked_at DESC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		var att domain.Attendance
		var checkInAt sql.NullTime
		if err := rows.Scan(&att.ID, &att.EventID, &att.UserID, &att.Status, &checkInAt, &att.Note,
			&att.MarkedBy, &att.MarkedAt, &att.Email, &att.FirstName, &att.LastName); err != nil {
			return nil, err
		}
		if checkInAt.Valid {
			att.CheckInAt = &checkInAt.Time
		}
		records = append(records, att)
	}
	return records, rows.Err()
}
