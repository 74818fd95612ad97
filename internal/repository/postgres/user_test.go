package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub-backend/internal/repository"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "role", "email", "phone", "password_hash",
		"first_name", "last_name", "status", "created_at", "updated_at",
	})
}

func TestUserRepository_GetByIdentifier_Email(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	// Email lookup lowercases the identifier, phone argument stays verbatim.
	mock.ExpectQuery(`SELECT .+ FROM users WHERE LOWER\(email\) = \$1 OR phone = \$2`).
		WithArgs("vol@test.com", "Vol@Test.com").
		WillReturnRows(userRows().
			AddRow(int64(10), "USER", "vol@test.com", "", "hash", "Ann", "Lee", "ACTIVE", now, now))

	repo := NewUserRepository(db)
	user, err := repo.GetByIdentifier(context.Background(), "Vol@Test.com")
	require.NoError(t, err)
	assert.Equal(t, int64(10), user.ID)
	assert.Equal(t, "vol@test.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByIdentifier_Phone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE LOWER\(email\) = \$1 OR phone = \$2`).
		WithArgs("+15551234", "+15551234").
		WillReturnRows(userRows().
			AddRow(int64(11), "USER", "", "+15551234", "hash", "Bo", "Kim", "ACTIVE", now, now))

	repo := NewUserRepository(db)
	user, err := repo.GetByIdentifier(context.Background(), "+15551234")
	require.NoError(t, err)
	assert.Equal(t, "+15551234", user.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(userRows())

	repo := NewUserRepository(db)
	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET status = \$1`).
		WithArgs("SUSPENDED", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewUserRepository(db)
	err = repo.UpdateStatus(context.Background(), 99, "SUSPENDED")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
