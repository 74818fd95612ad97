package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockOrgRepo struct {
	mock.Mock
}

func (m *MockOrgRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrgRepo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrgRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Organization, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrgRepo) List(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrgRepo) Update(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrgRepo) Activate(ctx context.Context, id int64) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrgRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrgStatus) (*domain.Organization, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) IsActiveStaff(ctx context.Context, orgID, userID int64) (bool, error) {
	args := m.Called(ctx, orgID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepo) ListByOrg(ctx context.Context, orgID int64) ([]domain.OrgMember, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrgMember), args.Error(1)
}

func (m *MockMemberRepo) Suspend(ctx context.Context, orgID, userID int64) (*domain.OrgMember, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrgMember), args.Error(1)
}

type MockStaffAppRepo struct {
	mock.Mock
}

func (m *MockStaffAppRepo) Create(ctx context.Context, app *domain.StaffApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockStaffAppRepo) GetByOrgAndUser(ctx context.Context, orgID, userID int64) (*domain.StaffApplication, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffApplication), args.Error(1)
}

func (m *MockStaffAppRepo) CancelPending(ctx context.Context, orgID, userID int64) (*domain.StaffApplication, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffApplication), args.Error(1)
}

func (m *MockStaffAppRepo) ListByOrg(ctx context.Context, orgID int64, status domain.ApplicationStatus) ([]domain.StaffApplication, error) {
	args := m.Called(ctx, orgID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffApplication), args.Error(1)
}

func (m *MockStaffAppRepo) Decide(ctx context.Context, orgID, appID, deciderID int64, decision domain.Decision, note string) (*domain.StaffApplication, error) {
	args := m.Called(ctx, orgID, appID, deciderID, decision, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffApplication), args.Error(1)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepo) GetWithOrg(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepo) ListByOrg(ctx context.Context, orgID int64) ([]domain.Event, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepo) UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) (*domain.Event, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) CompletePastEvents(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventAppRepo struct {
	mock.Mock
}

func (m *MockEventAppRepo) Create(ctx context.Context, app *domain.EventApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockEventAppRepo) CancelPending(ctx context.Context, eventID, userID int64) (*domain.EventApplication, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventApplication), args.Error(1)
}

func (m *MockEventAppRepo) ListByEvent(ctx context.Context, eventID int64, status domain.ApplicationStatus) ([]domain.EventApplication, error) {
	args := m.Called(ctx, eventID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventApplication), args.Error(1)
}

func (m *MockEventAppRepo) ListByUser(ctx context.Context, userID int64) ([]domain.MyApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MyApplication), args.Error(1)
}

func (m *MockEventAppRepo) CountApproved(ctx context.Context, eventID int64) (int32, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockEventAppRepo) HasApproved(ctx context.Context, eventID, userID int64) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventAppRepo) Decide(ctx context.Context, eventID, appID, deciderID int64, decision domain.Decision, note string) (*domain.EventApplication, error) {
	args := m.Called(ctx, eventID, appID, deciderID, decision, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventApplication), args.Error(1)
}

func (m *MockEventAppRepo) History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) Upsert(ctx context.Context, att *domain.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockAttendanceRepo) ListByEvent(ctx context.Context, eventID int64) ([]domain.Attendance, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}

type MockCertificateRepo struct {
	mock.Mock
}

func (m *MockCertificateRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockCertificateRepo) GetByID(ctx context.Context, id, userID int64) (*domain.Certificate, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Certificate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepo) Update(ctx context.Context, cert *domain.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockCertificateRepo) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEventDecision(to string, event *domain.Event, app *domain.EventApplication) {
	m.Called(to, event, app)
}

func (m *MockEmailService) SendStaffDecision(to string, org *domain.Organization, app *domain.StaffApplication) {
	m.Called(to, org, app)
}
