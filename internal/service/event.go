package service

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type eventService struct {
	eventRepo  repository.EventRepository
	orgRepo    repository.OrganizationRepository
	memberRepo repository.MemberRepository
}

func NewEventService(
	eventRepo repository.EventRepository,
	orgRepo repository.OrganizationRepository,
	memberRepo repository.MemberRepository,
) EventService {
	return &eventService{
		eventRepo:  eventRepo,
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
	}
}

func (s *eventService) Create(ctx context.Context, actor domain.Actor, in EventInput) (*domain.Event, error) {
	if in.Title == "" {
		return nil, Invalid("event title is required")
	}
	if in.StartAt.IsZero() {
		return nil, Invalid("event start time is required")
	}
	if in.EndAt != nil && in.EndAt.Before(in.StartAt) {
		return nil, ErrInvalidEventWindow
	}
	if in.Capacity < 0 {
		return nil, Invalid("capacity must not be negative")
	}

	org, err := s.orgRepo.GetByID(ctx, in.OrgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	if !actor.CanManageOrg(org.CreatedBy) {
		return nil, ErrForbidden
	}
	if org.Status != domain.OrgStatusActive {
		return nil, ErrOrgNotActive
	}

	event := &domain.Event{
		OrgID:       in.OrgID,
		CreatedBy:   actor.ID,
		Title:       in.Title,
		Description: in.Description,
		BannerURL:   in.BannerURL,
		Category:    in.Category,
		City:        in.City,
		Address:     in.Address,
		Lat:         in.Lat,
		Lng:         in.Lng,
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		Capacity:    in.Capacity,
		Status:      domain.EventStatusDraft,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns the event when it is publicly visible, or when the actor
// manages the owning organization. Draft and cancelled events stay hidden
// from everyone else, indistinguishable from missing ones.
func (s *eventService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error) {
	event, err := s.getWithOrg(ctx, id)
	if err != nil {
		return nil, err
	}

	visible := event.Status == domain.EventStatusPublished || event.Status == domain.EventStatusCompleted
	if visible && event.OrgStatus == domain.OrgStatusActive {
		return event, nil
	}
	if actor.CanManageOrg(event.OrgOwner) {
		return event, nil
	}
	isStaff, err := s.memberRepo.IsActiveStaff(ctx, event.OrgID, actor.ID)
	if err != nil {
		return nil, err
	}
	if isStaff {
		return event, nil
	}
	return nil, ErrEventNotFound
}

func (s *eventService) ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	return s.eventRepo.ListPublished(ctx, filter)
}

func (s *eventService) ListByOrg(ctx context.Context, actor domain.Actor, orgID int64) ([]domain.Event, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	if !actor.CanManageOrg(org.CreatedBy) {
		isStaff, err := s.memberRepo.IsActiveStaff(ctx, orgID, actor.ID)
		if err != nil {
			return nil, err
		}
		if !isStaff {
			return nil, ErrForbidden
		}
	}
	return s.eventRepo.ListByOrg(ctx, orgID)
}

func (s *eventService) Publish(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error) {
	event, err := s.getWithOrg(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageOrg(event.OrgOwner) {
		return nil, ErrForbidden
	}
	if event.Status != domain.EventStatusDraft {
		return nil, Invalid("event is not DRAFT")
	}
	// A suspended org must not surface new events.
	if event.OrgStatus != domain.OrgStatusActive {
		return nil, ErrOrgNotActive
	}
	return s.eventRepo.UpdateStatus(ctx, id, domain.EventStatusPublished)
}

func (s *eventService) Cancel(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error) {
	event, err := s.getWithOrg(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageOrg(event.OrgOwner) {
		return nil, ErrForbidden
	}
	if event.Status != domain.EventStatusDraft && event.Status != domain.EventStatusPublished {
		return nil, Invalid("only draft or published events can be cancelled")
	}
	return s.eventRepo.UpdateStatus(ctx, id, domain.EventStatusCancelled)
}

func (s *eventService) Complete(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error) {
	return s.transition(ctx, actor, id, domain.EventStatusPublished, domain.EventStatusCompleted)
}

// IsStaff reports whether the actor may act in a staff capacity on the
// event, which includes the owner and superadmins.
func (s *eventService) IsStaff(ctx context.Context, actor domain.Actor, id int64) (bool, error) {
	event, err := s.getWithOrg(ctx, id)
	if err != nil {
		return false, err
	}
	if actor.CanManageOrg(event.OrgOwner) {
		return true, nil
	}
	return s.memberRepo.IsActiveStaff(ctx, event.OrgID, actor.ID)
}

func (s *eventService) transition(ctx context.Context, actor domain.Actor, id int64, from, to domain.EventStatus) (*domain.Event, error) {
	event, err := s.getWithOrg(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageOrg(event.OrgOwner) {
		return nil, ErrForbidden
	}
	if event.Status != from {
		return nil, Invalid("event is not " + string(from))
	}
	return s.eventRepo.UpdateStatus(ctx, id, to)
}

func (s *eventService) getWithOrg(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetWithOrg(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}
