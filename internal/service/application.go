package service

import (
	"context"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type applicationService struct {
	appRepo    repository.EventApplicationRepository
	eventRepo  repository.EventRepository
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
	email      EmailService

	now func() time.Time
}

func NewApplicationService(
	appRepo repository.EventApplicationRepository,
	eventRepo repository.EventRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	email EmailService,
) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		eventRepo:  eventRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		email:      email,
		now:        time.Now,
	}
}

// Apply runs the guard chain in order: event exists under an active org,
// is published, has not started, and has room. The uniqueness constraint
// catches the duplicate case at insert time rather than via a racy
// pre-check.
func (s *applicationService) Apply(ctx context.Context, actor domain.Actor, eventID int64, message string) (*domain.EventApplication, error) {
	// Only volunteers apply; admins manage events, they do not join them.
	if actor.Role != domain.RoleUser {
		return nil, ErrForbidden
	}
	event, err := s.eventRepo.GetWithOrg(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.OrgStatus != domain.OrgStatusActive {
		return nil, ErrEventNotFound
	}
	if event.Status != domain.EventStatusPublished {
		return nil, ErrEventNotOpen
	}
	if !event.StartAt.After(s.now()) {
		return nil, ErrEventStarted
	}

	if event.Capacity > 0 {
		approved, err := s.appRepo.CountApproved(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if approved >= event.Capacity {
			return nil, ErrCapacityFull
		}
	}

	app := &domain.EventApplication{
		EventID: eventID,
		UserID:  actor.ID,
		Status:  domain.ApplicationStatusPending,
		Message: message,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationService) Cancel(ctx context.Context, actor domain.Actor, eventID int64) (*domain.EventApplication, error) {
	if actor.Role != domain.RoleUser {
		return nil, ErrForbidden
	}
	app, err := s.appRepo.CancelPending(ctx, eventID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPendingApplication
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationService) ListByEvent(ctx context.Context, actor domain.Actor, eventID int64, status domain.ApplicationStatus) ([]domain.EventApplication, bool, error) {
	event, err := s.eventRepo.GetWithOrg(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrEventNotFound
		}
		return nil, false, err
	}
	if err := s.requireManagerOrStaff(ctx, actor, event); err != nil {
		return nil, false, err
	}
	apps, err := s.appRepo.ListByEvent(ctx, eventID, status)
	if err != nil {
		return nil, false, err
	}
	// Staff who are not the owner may look but not decide.
	readOnly := !actor.CanManageOrg(event.OrgOwner)
	return apps, readOnly, nil
}

func (s *applicationService) Decide(ctx context.Context, actor domain.Actor, eventID, appID int64, decision domain.Decision, note string) (*domain.EventApplication, error) {
	if decision != domain.ApplicationStatusApproved && decision != domain.ApplicationStatusRejected {
		return nil, Invalid("decision must be APPROVED or REJECTED")
	}

	event, err := s.eventRepo.GetWithOrg(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !actor.CanManageOrg(event.OrgOwner) {
		return nil, ErrForbidden
	}

	app, err := s.appRepo.Decide(ctx, eventID, appID, actor.ID, decision, note)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrApplicationNotFound
		case errors.Is(err, repository.ErrNotPending):
			return nil, ErrApplicationNotPending
		case errors.Is(err, repository.ErrCapacityFull):
			return nil, ErrCapacityFull
		default:
			return nil, err
		}
	}

	if applicant, err := s.userRepo.GetByID(ctx, app.UserID); err == nil && applicant.Email != "" {
		s.email.SendEventDecision(applicant.Email, event, app)
	}
	return app, nil
}

func (s *applicationService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.MyApplication, error) {
	return s.appRepo.ListByUser(ctx, actor.ID)
}

func (s *applicationService) History(ctx context.Context, actor domain.Actor) ([]domain.HistoryEntry, error) {
	return s.appRepo.History(ctx, actor.ID)
}

func (s *applicationService) requireManagerOrStaff(ctx context.Context, actor domain.Actor, event *domain.Event) error {
	if actor.CanManageOrg(event.OrgOwner) {
		return nil
	}
	isStaff, err := s.memberRepo.IsActiveStaff(ctx, event.OrgID, actor.ID)
	if err != nil {
		return err
	}
	if !isStaff {
		return ErrForbidden
	}
	return nil
}
