package service

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type orgService struct {
	orgRepo    repository.OrganizationRepository
	memberRepo repository.MemberRepository
}

func NewOrgService(orgRepo repository.OrganizationRepository, memberRepo repository.MemberRepository) OrgService {
	return &orgService{
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
	}
}

func (s *orgService) Create(ctx context.Context, actor domain.Actor, in OrgInput) (*domain.Organization, error) {
	if actor.Role != domain.RoleOrgAdmin && !actor.IsSuperadmin() {
		return nil, ErrForbidden
	}
	if in.Name == "" {
		return nil, Invalid("organization name is required")
	}

	org := &domain.Organization{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		LogoURL:     in.LogoURL,
		Description: in.Description,
		Status:      domain.OrgStatusPending,
		CreatedBy:   actor.ID,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Get returns the organization when it is ACTIVE, or when the actor owns it
// or is a superadmin. Non-active orgs stay hidden from everyone else,
// indistinguishable from missing ones.
func (s *orgService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Organization, error) {
	org, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.Status == domain.OrgStatusActive || actor.CanManageOrg(org.CreatedBy) {
		return org, nil
	}
	return nil, ErrOrgNotFound
}

func (s *orgService) getByID(ctx context.Context, id int64) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *orgService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Organization, error) {
	return s.orgRepo.ListByOwner(ctx, actor.ID)
}

func (s *orgService) Update(ctx context.Context, actor domain.Actor, id int64, in OrgInput) (*domain.Organization, error) {
	org, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageOrg(org.CreatedBy) {
		return nil, ErrForbidden
	}
	if in.Name == "" {
		return nil, Invalid("organization name is required")
	}

	org.Name = in.Name
	org.Email = in.Email
	org.Phone = in.Phone
	org.LogoURL = in.LogoURL
	org.Description = in.Description
	if err := s.orgRepo.Update(ctx, org); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *orgService) ListMembers(ctx context.Context, actor domain.Actor, orgID int64) ([]domain.OrgMember, error) {
	org, err := s.getByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.requireManagerOrStaff(ctx, actor, org); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByOrg(ctx, orgID)
}

func (s *orgService) SuspendMember(ctx context.Context, actor domain.Actor, orgID, userID int64) (*domain.OrgMember, error) {
	org, err := s.getByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageOrg(org.CreatedBy) {
		return nil, ErrForbidden
	}
	member, err := s.memberRepo.Suspend(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// requireManagerOrStaff admits the owner, a superadmin, or an active staff
// member. Staff access is read-only at the call sites that use it.
func (s *orgService) requireManagerOrStaff(ctx context.Context, actor domain.Actor, org *domain.Organization) error {
	if actor.CanManageOrg(org.CreatedBy) {
		return nil
	}
	isStaff, err := s.memberRepo.IsActiveStaff(ctx, org.ID, actor.ID)
	if err != nil {
		return err
	}
	if !isStaff {
		return ErrForbidden
	}
	return nil
}
