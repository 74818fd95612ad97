package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
	"volunteerhub-backend/internal/service"
)

func newApplicationFixture() (*MockEventAppRepo, *MockEventRepo, *MockMemberRepo, *MockUserRepo, *MockEmailService, service.ApplicationService) {
	appRepo := new(MockEventAppRepo)
	eventRepo := new(MockEventRepo)
	memberRepo := new(MockMemberRepo)
	userRepo := new(MockUserRepo)
	email := new(MockEmailService)
	svc := service.NewApplicationService(appRepo, eventRepo, memberRepo, userRepo, email)
	return appRepo, eventRepo, memberRepo, userRepo, email, svc
}

func openEvent(ownerID int64, capacity int32) *domain.Event {
	return &domain.Event{
		ID:        5,
		OrgID:     2,
		Title:     "Beach Cleanup",
		StartAt:   time.Now().Add(24 * time.Hour),
		Capacity:  capacity,
		Status:    domain.EventStatusPublished,
		OrgStatus: domain.OrgStatusActive,
		OrgOwner:  ownerID,
	}
}

func TestApplicationService_Apply(t *testing.T) {
	ctx := context.Background()
	volunteer := domain.Actor{ID: 10, Role: domain.RoleUser}

	t.Run("Success", func(t *testing.T) {
		appRepo, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(1, 3), nil).Once()
		appRepo.On("CountApproved", ctx, int64(5)).Return(int32(1), nil).Once()
		appRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.EventApplication) bool {
			return a.EventID == 5 && a.UserID == 10 && a.Status == domain.ApplicationStatusPending
		})).Return(nil).Once()

		app, err := svc.Apply(ctx, volunteer, 5, "happy to help")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		appRepo.AssertExpectations(t)
	})

	t.Run("EventNotFound", func(t *testing.T) {
		_, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Apply(ctx, volunteer, 5, "")
		assert.Equal(t, service.ErrEventNotFound, err)
	})

	t.Run("AdminCannotApply", func(t *testing.T) {
		_, _, _, _, _, svc := newApplicationFixture()
		admin := domain.Actor{ID: 1, Role: domain.RoleOrgAdmin}

		_, err := svc.Apply(ctx, admin, 5, "")
		assert.Equal(t, service.ErrForbidden, err)
	})

	t.Run("SuperadminCannotApply", func(t *testing.T) {
		_, _, _, _, _, svc := newApplicationFixture()
		admin := domain.Actor{ID: 42, Role: domain.RoleSuperadmin}

		_, err := svc.Apply(ctx, admin, 5, "")
		assert.Equal(t, service.ErrForbidden, err)
	})

	t.Run("OrgNotActiveLooksLikeMissing", func(t *testing.T) {
		_, eventRepo, _, _, _, svc := newApplicationFixture()
		event := openEvent(1, 0)
		event.OrgStatus = domain.OrgStatusSuspended
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(event, nil).Once()

		_, err := svc.Apply(ctx, volunteer, 5, "")
		assert.Equal(t, service.ErrEventNotFound, err)
	})

	t.Run("NotPublished", func(t *testing.T) {
		_, eventRepo, _, _, _, svc := newApplicationFixture()
		event := openEvent(1, 0)
		event.Status = domain.EventStatusDraft
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(event, nil).Once()

		_, err := svc.Apply(ctx, volunteer, 5, "")
		assert.Equal(t, service.ErrEventNotOpen, err)
	})

	t.Run("AlreadyStarted", func(t *testing.T) {
		_, eventRepo, _, _, _, svc := newApplicationFixture()
		event := openEvent(1, 0)
		event.StartAt = time.Now().Add(-time.Hour)
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(event, nil).Once()

		_, err := svc.Apply(ctx, volunteer, 5, "")
		assert.Equal(t, service.ErrEventStarted, err)
	})

	t.Run("CapacityFull", func(t *testing.T) {
		appRepo, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(1, 2), nil).Once()
		appRepo.On("CountApproved", ctx, int64(5)).Return(int32(2), nil).Once()

		_, err := svc.Apply(ctx, volunteer, 5, "")
		assert.Equal(t, service.ErrCapacityFull, err)
	})

	t.Run("UnlimitedCapacitySkipsCount", func(t *testing.T) {
		appRepo, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(1, 0), nil).Once()
		appRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		_, err := svc.Apply(ctx, volunteer, 5, "")
		assert.NoError(t, err)
		appRepo.AssertNotCalled(t, "CountApproved", ctx, int64(5))
	})

	t.Run("Duplicate", func(t *testing.T) {
		appRepo, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(1, 0), nil).Once()
		appRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := svc.Apply(ctx, volunteer, 5, "")
		assert.Equal(t, service.ErrAlreadyApplied, err)
	})
}

func TestApplicationService_Cancel(t *testing.T) {
	ctx := context.Background()
	volunteer := domain.Actor{ID: 10, Role: domain.RoleUser}

	t.Run("Success", func(t *testing.T) {
		appRepo, _, _, _, _, svc := newApplicationFixture()
		cancelled := &domain.EventApplication{ID: 1, EventID: 5, UserID: 10, Status: domain.ApplicationStatusCancelled}
		appRepo.On("CancelPending", ctx, int64(5), int64(10)).Return(cancelled, nil).Once()

		app, err := svc.Cancel(ctx, volunteer, 5)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusCancelled, app.Status)
	})

	t.Run("NoPending", func(t *testing.T) {
		appRepo, _, _, _, _, svc := newApplicationFixture()
		appRepo.On("CancelPending", ctx, int64(5), int64(10)).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Cancel(ctx, volunteer, 5)
		assert.Equal(t, service.ErrNoPendingApplication, err)
	})
}

func TestApplicationService_Decide(t *testing.T) {
	ctx := context.Background()
	owner := domain.Actor{ID: 1, Role: domain.RoleOrgAdmin}

	t.Run("ApproveSendsEmail", func(t *testing.T) {
		appRepo, eventRepo, _, userRepo, email, svc := newApplicationFixture()
		event := openEvent(1, 3)
		decided := &domain.EventApplication{ID: 7, EventID: 5, UserID: 10, Status: domain.ApplicationStatusApproved}
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(event, nil).Once()
		appRepo.On("Decide", ctx, int64(5), int64(7), int64(1), domain.ApplicationStatusApproved, "welcome").
			Return(decided, nil).Once()
		userRepo.On("GetByID", ctx, int64(10)).Return(&domain.User{ID: 10, Email: "vol@test.com"}, nil).Once()
		email.On("SendEventDecision", "vol@test.com", event, decided).Once()

		app, err := svc.Decide(ctx, owner, 5, 7, domain.ApplicationStatusApproved, "welcome")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApproved, app.Status)
		email.AssertExpectations(t)
	})

	t.Run("Forbidden", func(t *testing.T) {
		_, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(99, 0), nil).Once()

		_, err := svc.Decide(ctx, owner, 5, 7, domain.ApplicationStatusRejected, "")
		assert.Equal(t, service.ErrForbidden, err)
	})

	t.Run("InvalidDecision", func(t *testing.T) {
		_, _, _, _, _, svc := newApplicationFixture()
		_, err := svc.Decide(ctx, owner, 5, 7, domain.ApplicationStatusCancelled, "")
		var svcErr *service.Error
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "VALIDATION", svcErr.Code)
	})

	t.Run("CapacityFullFromRepo", func(t *testing.T) {
		appRepo, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(1, 1), nil).Once()
		appRepo.On("Decide", ctx, int64(5), int64(7), int64(1), domain.ApplicationStatusApproved, "").
			Return(nil, repository.ErrCapacityFull).Once()

		_, err := svc.Decide(ctx, owner, 5, 7, domain.ApplicationStatusApproved, "")
		assert.Equal(t, service.ErrCapacityFull, err)
	})

	t.Run("NotPending", func(t *testing.T) {
		appRepo, eventRepo, _, _, _, svc := newApplicationFixture()
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(1, 0), nil).Once()
		appRepo.On("Decide", ctx, int64(5), int64(7), int64(1), domain.ApplicationStatusRejected, "").
			Return(nil, repository.ErrNotPending).Once()

		_, err := svc.Decide(ctx, owner, 5, 7, domain.ApplicationStatusRejected, "")
		assert.Equal(t, service.ErrApplicationNotPending, err)
	})

	t.Run("SuperadminAllowed", func(t *testing.T) {
		appRepo, eventRepo, _, userRepo, _, svc := newApplicationFixture()
		admin := domain.Actor{ID: 42, Role: domain.RoleSuperadmin}
		decided := &domain.EventApplication{ID: 7, EventID: 5, UserID: 10, Status: domain.ApplicationStatusRejected}
		eventRepo.On("GetWithOrg", ctx, int64(5)).Return(openEvent(1, 0), nil).Once()
		appRepo.On("Decide", ctx, int64(5), int64(7), int64(42), domain.ApplicationStatusRejected, "").
			Return(decided, nil).Once()
		userRepo.On("GetByID", ctx, int64(10)).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Decide(ctx, admin, 5, 7, domain.ApplicationStatusRejected, "")
		assert.NoError(t, err)
	})
}
