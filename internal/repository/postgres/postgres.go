package postgres

import (
	"database/sql"

	"volunteerhub-backend/internal/repository"

	"github.com/lib/pq"
)

const dateFormat = "2006-01-02"

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrganizationRepository
	repository.MemberRepository
	repository.StaffApplicationRepository
	repository.EventRepository
	repository.EventApplicationRepository
	repository.AttendanceRepository
	repository.CertificateRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                         db,
		UserRepository:             NewUserRepository(db),
		OrganizationRepository:     NewOrganizationRepository(db),
		MemberRepository:           NewMemberRepository(db),
		StaffApplicationRepository: NewStaffApplicationRepository(db),
		EventRepository:            NewEventRepository(db),
		EventApplicationRepository: NewEventApplicationRepository(db),
		AttendanceRepository:       NewAttendanceRepository(db),
		CertificateRepository:      NewCertificateRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The sole case where a driver error becomes a
// domain conflict.
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
