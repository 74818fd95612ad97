package service

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type staffService struct {
	orgRepo    repository.OrganizationRepository
	memberRepo repository.MemberRepository
	staffRepo  repository.StaffApplicationRepository
	userRepo   repository.UserRepository
	email      EmailService
}

func NewStaffService(
	orgRepo repository.OrganizationRepository,
	memberRepo repository.MemberRepository,
	staffRepo repository.StaffApplicationRepository,
	userRepo repository.UserRepository,
	email EmailService,
) StaffService {
	return &staffService{
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		staffRepo:  staffRepo,
		userRepo:   userRepo,
		email:      email,
	}
}

func (s *staffService) Apply(ctx context.Context, actor domain.Actor, orgID int64, message string) (*domain.StaffApplication, error) {
	// Only volunteers apply for staff positions.
	if actor.Role != domain.RoleUser {
		return nil, ErrForbidden
	}
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	if org.Status != domain.OrgStatusActive {
		return nil, ErrOrgNotActive
	}

	isStaff, err := s.memberRepo.IsActiveStaff(ctx, orgID, actor.ID)
	if err != nil {
		return nil, err
	}
	if isStaff {
		return nil, ErrAlreadyStaff
	}

	app := &domain.StaffApplication{
		OrgID:   orgID,
		UserID:  actor.ID,
		Status:  domain.ApplicationStatusPending,
		Message: message,
	}
	if err := s.staffRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return app, nil
}

func (s *staffService) Cancel(ctx context.Context, actor domain.Actor, orgID int64) (*domain.StaffApplication, error) {
	if actor.Role != domain.RoleUser {
		return nil, ErrForbidden
	}
	app, err := s.staffRepo.CancelPending(ctx, orgID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPendingApplication
		}
		return nil, err
	}
	return app, nil
}

func (s *staffService) Mine(ctx context.Context, actor domain.Actor, orgID int64) (*domain.StaffApplication, error) {
	app, err := s.staffRepo.GetByOrgAndUser(ctx, orgID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *staffService) List(ctx context.Context, actor domain.Actor, orgID int64, status domain.ApplicationStatus) ([]domain.StaffApplication, bool, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrOrgNotFound
		}
		return nil, false, err
	}
	canManage := actor.CanManageOrg(org.CreatedBy)
	if !canManage {
		isStaff, err := s.memberRepo.IsActiveStaff(ctx, orgID, actor.ID)
		if err != nil {
			return nil, false, err
		}
		if !isStaff {
			return nil, false, ErrForbidden
		}
	}
	apps, err := s.staffRepo.ListByOrg(ctx, orgID, status)
	if err != nil {
		return nil, false, err
	}
	return apps, !canManage, nil
}

func (s *staffService) IsStaff(ctx context.Context, actor domain.Actor, orgID int64) (bool, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrOrgNotFound
		}
		return false, err
	}
	if actor.CanManageOrg(org.CreatedBy) {
		return true, nil
	}
	return s.memberRepo.IsActiveStaff(ctx, orgID, actor.ID)
}

func (s *staffService) Decide(ctx context.Context, actor domain.Actor, orgID, appID int64, decision domain.Decision, note string) (*domain.StaffApplication, error) {
	if decision != domain.ApplicationStatusApproved && decision != domain.ApplicationStatusRejected {
		return nil, Invalid("decision must be APPROVED or REJECTED")
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	if !actor.CanManageOrg(org.CreatedBy) {
		return nil, ErrForbidden
	}

	app, err := s.staffRepo.Decide(ctx, orgID, appID, actor.ID, decision, note)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrApplicationNotFound
		case errors.Is(err, repository.ErrNotPending):
			return nil, ErrApplicationNotPending
		default:
			return nil, err
		}
	}

	if applicant, err := s.userRepo.GetByID(ctx, app.UserID); err == nil && applicant.Email != "" {
		s.email.SendStaffDecision(applicant.Email, org, app)
	}
	return app, nil
}
