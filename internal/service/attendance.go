package service

import (
	"context"
	"errors"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type attendanceService struct {
	attRepo    repository.AttendanceRepository
	appRepo    repository.EventApplicationRepository
	eventRepo  repository.EventRepository
	memberRepo repository.MemberRepository
}

func NewAttendanceService(
	attRepo repository.AttendanceRepository,
	appRepo repository.EventApplicationRepository,
	eventRepo repository.EventRepository,
	memberRepo repository.MemberRepository,
) AttendanceService {
	return &attendanceService{
		attRepo:    attRepo,
		appRepo:    appRepo,
		eventRepo:  eventRepo,
		memberRepo: memberRepo,
	}
}

// Mark records attendance for a volunteer with an approved application.
// Repeated marks overwrite the previous record.
func (s *attendanceService) Mark(ctx context.Context, actor domain.Actor, eventID int64, in AttendanceInput) (*domain.Attendance, error) {
	switch in.Status {
	case domain.AttendancePresent, domain.AttendanceAbsent, domain.AttendanceLate, domain.AttendanceExcused:
	default:
		return nil, Invalid("invalid attendance status")
	}

	event, err := s.eventRepo.GetWithOrg(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if err := s.requireManagerOrStaff(ctx, actor, event); err != nil {
		return nil, err
	}

	approved, err := s.appRepo.HasApproved(ctx, eventID, in.UserID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, ErrNotApproved
	}

	att := &domain.Attendance{
		EventID:   eventID,
		UserID:    in.UserID,
		Status:    in.Status,
		CheckInAt: in.CheckInAt,
		Note:      in.Note,
		MarkedBy:  actor.ID,
	}
	if err := s.attRepo.Upsert(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) ListByEvent(ctx context.Context, actor domain.Actor, eventID int64) ([]domain.Attendance, error) {
	event, err := s.eventRepo.GetWithOrg(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if err := s.requireManagerOrStaff(ctx, actor, event); err != nil {
		return nil, err
	}
	return s.attRepo.ListByEvent(ctx, eventID)
}

func (s *attendanceService) requireManagerOrStaff(ctx context.Context, actor domain.Actor, event *domain.Event) error {
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
