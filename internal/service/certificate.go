package service

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type certificateService struct {
	certRepo repository.CertificateRepository
}

func NewCertificateService(certRepo repository.CertificateRepository) CertificateService {
	return &certificateService{certRepo: certRepo}
}

func (s *certificateService) Create(ctx context.Context, actor domain.Actor, in CertificateInput) (*domain.Certificate, error) {
	if in.Title == "" {
		return nil, Invalid("certificate title is required")
	}
	if in.FileURL == "" {
		return nil, Invalid("certificate file URL is required")
	}

	cert := &domain.Certificate{
		UserID:     actor.ID,
		Title:      in.Title,
		Issuer:     in.Issuer,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		FileURL:    in.FileURL,
		Note:       in.Note,
	}
	if err := s.certRepo.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *certificateService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Certificate, error) {
	cert, err := s.certRepo.GetByID(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return cert, nil
}

func (s *certificateService) List(ctx context.Context, actor domain.Actor) ([]domain.Certificate, error) {
	return s.certRepo.ListByUser(ctx, actor.ID)
}

func (s *certificateService) Update(ctx context.Context, actor domain.Actor, id int64, in CertificateInput) (*domain.Certificate, error) {
	if in.Title == "" {
		return nil, Invalid("certificate title is required")
	}
	if in.FileURL == "" {
		return nil, Invalid("certificate file URL is required")
	}

	cert := &domain.Certificate{
		ID:         id,
		UserID:     actor.ID,
		Title:      in.Title,
		Issuer:     in.Issuer,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		FileURL:    in.FileURL,
		Note:       in.Note,
	}
	if err := s.certRepo.Update(ctx, cert); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return cert, nil
}

func (s *certificateService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if err := s.certRepo.Delete(ctx, id, actor.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCertificateNotFound
		}
		return err
	}
	return nil
}
