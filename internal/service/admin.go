package service

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type adminService struct {
	orgRepo repository.OrganizationRepository
}

func NewAdminService(orgRepo repository.OrganizationRepository) AdminService {
	return &adminService{orgRepo: orgRepo}
}

func (s *adminService) ListOrgs(ctx context.Context, actor domain.Actor, status domain.OrgStatus) ([]domain.Organization, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrForbidden
	}
	return s.orgRepo.List(ctx, status)
}

func (s *adminService) ApproveOrg(ctx context.Context, actor domain.Actor, orgID int64) (*domain.Organization, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrForbidden
	}
	org, err := s.orgRepo.Activate(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Distinguish a missing org from one in the wrong state.
			if _, getErr := s.orgRepo.GetByID(ctx, orgID); getErr == nil {
				return nil, ErrOrgNotPending
			}
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *adminService) SuspendOrg(ctx context.Context, actor domain.Actor, orgID int64) (*domain.Organization, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrForbidden
	}
	org, err := s.orgRepo.UpdateStatus(ctx, orgID, domain.OrgStatusSuspended)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return org, nil
}
