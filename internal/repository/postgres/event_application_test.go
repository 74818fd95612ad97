package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

func TestEventApplicationRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO event_applications`).
		WithArgs(int64(5), int64(10), domain.ApplicationStatusPending, "").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewEventApplicationRepository(db)
	app := &domain.EventApplication{EventID: 5, UserID: 10, Status: domain.ApplicationStatusPending}
	err = repo.Create(context.Background(), app)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventApplicationRepository_Decide_Approve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	decidedAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(capacity, 0\) FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(int32(3)))
	mock.ExpectQuery(`SELECT status FROM event_applications WHERE id = \$1 AND event_id = \$2`).
		WithArgs(int64(7), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_applications WHERE event_id = \$1 AND status = 'APPROVED'`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int32(2)))
	mock.ExpectQuery(`UPDATE event_applications`).
		WithArgs(domain.ApplicationStatusApproved, int64(1), "welcome", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "status", "decision_note", "decided_at"}).
			AddRow(int64(7), int64(5), int64(10), "APPROVED", "welcome", decidedAt))
	mock.ExpectCommit()

	repo := NewEventApplicationRepository(db)
	app, err := repo.Decide(context.Background(), 5, 7, 1, domain.ApplicationStatusApproved, "welcome")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApproved, app.Status)
	assert.Equal(t, int64(1), *app.DecidedBy)
	assert.Equal(t, "welcome", app.DecisionNote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventApplicationRepository_Decide_CapacityFull(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(capacity, 0\) FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(int32(2)))
	mock.ExpectQuery(`SELECT status FROM event_applications WHERE id = \$1 AND event_id = \$2`).
		WithArgs(int64(7), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_applications WHERE event_id = \$1 AND status = 'APPROVED'`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int32(2)))
	mock.ExpectRollback()

	repo := NewEventApplicationRepository(db)
	_, err = repo.Decide(context.Background(), 5, 7, 1, domain.ApplicationStatusApproved, "")
	assert.ErrorIs(t, err, repository.ErrCapacityFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventApplicationRepository_Decide_NotPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(capacity, 0\) FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(int32(0)))
	mock.ExpectQuery(`SELECT status FROM event_applications WHERE id = \$1 AND event_id = \$2`).
		WithArgs(int64(7), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CANCELLED"))
	mock.ExpectRollback()

	repo := NewEventApplicationRepository(db)
	_, err = repo.Decide(context.Background(), 5, 7, 1, domain.ApplicationStatusRejected, "")
	assert.ErrorIs(t, err, repository.ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventApplicationRepository_Decide_RejectSkipsCapacityCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	decidedAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(capacity, 0\) FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(int32(1)))
	mock.ExpectQuery(`SELECT status FROM event_applications WHERE id = \$1 AND event_id = \$2`).
		WithArgs(int64(7), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING"))
	mock.ExpectQuery(`UPDATE event_applications`).
		WithArgs(domain.ApplicationStatusRejected, int64(1), "", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "status", "decision_note", "decided_at"}).
			AddRow(int64(7), int64(5), int64(10), "REJECTED", "", decidedAt))
	mock.ExpectCommit()

	repo := NewEventApplicationRepository(db)
	app, err := repo.Decide(context.Background(), 5, 7, 1, domain.ApplicationStatusRejected, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusRejected, app.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventApplicationRepository_CancelPending_NoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE event_applications SET status = 'CANCELLED'`).
		WithArgs(int64(5), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "status"}))

	repo := NewEventApplicationRepository(db)
	_, err = repo.CancelPending(context.Background(), 5, 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
