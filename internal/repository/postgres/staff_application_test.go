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

func TestStaffApplicationRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO org_staff_applications`).
		WithArgs(int64(2), int64(10), domain.ApplicationStatusPending, "let me in").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewStaffApplicationRepository(db)
	app := &domain.StaffApplication{OrgID: 2, UserID: 10, Status: domain.ApplicationStatusPending, Message: "let me in"}
	err = repo.Create(context.Background(), app)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffApplicationRepository_Decide_ApproveUpsertsMembership(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	decidedAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status, user_id FROM org_staff_applications WHERE id = \$1 AND org_id = \$2 FOR UPDATE`).
		WithArgs(int64(4), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "user_id"}).AddRow("PENDING", int64(10)))
	mock.ExpectQuery(`UPDATE org_staff_applications`).
		WithArgs(domain.ApplicationStatusApproved, int64(1), "", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id", "user_id", "status", "decision_note", "decided_at"}).
			AddRow(int64(4), int64(2), int64(10), "APPROVED", "", decidedAt))
	mock.ExpectExec(`INSERT INTO org_members`).
		WithArgs(int64(2), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewStaffApplicationRepository(db)
	app, err := repo.Decide(context.Background(), 2, 4, 1, domain.ApplicationStatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApproved, app.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffApplicationRepository_Decide_RejectSkipsMembership(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	decidedAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status, user_id FROM org_staff_applications WHERE id = \$1 AND org_id = \$2 FOR UPDATE`).
		WithArgs(int64(4), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "user_id"}).AddRow("PENDING", int64(10)))
	mock.ExpectQuery(`UPDATE org_staff_applications`).
		WithArgs(domain.ApplicationStatusRejected, int64(1), "not now", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "org_id", "user_id", "status", "decision_note", "decided_at"}).
			AddRow(int64(4), int64(2), int64(10), "REJECTED", "not now", decidedAt))
	mock.ExpectCommit()

	repo := NewStaffApplicationRepository(db)
	app, err := repo.Decide(context.Background(), 2, 4, 1, domain.ApplicationStatusRejected, "not now")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusRejected, app.Status)
	assert.Equal(t, "not now", app.DecisionNote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffApplicationRepository_Decide_NotPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status, user_id FROM org_staff_applications WHERE id = \$1 AND org_id = \$2 FOR UPDATE`).
		WithArgs(int64(4), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "user_id"}).AddRow("APPROVED", int64(10)))
	mock.ExpectRollback()

	repo := NewStaffApplicationRepository(db)
	_, err = repo.Decide(context.Background(), 2, 4, 1, domain.ApplicationStatusApproved, "")
	assert.ErrorIs(t, err, repository.ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffApplicationRepository_Decide_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status, user_id FROM org_staff_applications WHERE id = \$1 AND org_id = \$2 FOR UPDATE`).
		WithArgs(int64(4), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "user_id"}))
	mock.ExpectRollback()

	repo := NewStaffApplicationRepository(db)
	_, err = repo.Decide(context.Background(), 2, 4, 1, domain.ApplicationStatusApproved, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
