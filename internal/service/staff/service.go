package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/acss-labs/acss-backend-go/internal/cache"
	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	eventRepo attendance.EventRepository
	snapshot  *cache.Snapshot
}

func NewStaffService(staffRepository staff.StaffRepository, eventRepository attendance.EventRepository, snapshot *cache.Snapshot) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepository,
		eventRepo:       eventRepository,
		snapshot:        snapshot,
	}
}

// Register implements staff.StaffService.
func (s *StaffServiceImpl) Register(ctx context.Context, req staff.RegisterStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if req.BadgeID != "" {
		_, err := s.StaffRepository.GetByBadgeID(ctx, req.BadgeID)
		if err == nil {
			return staff.StaffResponse{}, staff.ErrBadgeIDExists
		}
		if !errors.Is(err, staff.ErrStaffNotFound) {
			return staff.StaffResponse{}, fmt.Errorf("failed to check badge id: %w", err)
		}
	}

	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		Name:       req.Name,
		Department: req.Department,
		BadgeID:    req.BadgeID,
		Email:      req.Email,
		Position:   req.Position,
		Phone:      req.Phone,
		Status:     req.Status,
	})
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	s.reload(ctx)
	return staff.MapStaffToResponse(created), nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.MapStaffToResponse(member), nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, search string) (staff.ListStaffResponse, error) {
	roster, err := s.StaffRepository.List(ctx)
	if err != nil {
		return staff.ListStaffResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	out := staff.ListStaffResponse{Staff: []staff.StaffResponse{}}
	for _, member := range roster {
		if !member.Matches(search) {
			continue
		}
		out.Staff = append(out.Staff, staff.MapStaffToResponse(member))
	}
	out.TotalCount = len(out.Staff)
	return out, nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.StaffRepository.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.BadgeID != nil && *req.BadgeID != "" && *req.BadgeID != member.BadgeID {
		other, err := s.StaffRepository.GetByBadgeID(ctx, *req.BadgeID)
		if err == nil && other.ID != member.ID {
			return staff.StaffResponse{}, staff.ErrBadgeIDExists
		}
		if err != nil && !errors.Is(err, staff.ErrStaffNotFound) {
			return staff.StaffResponse{}, fmt.Errorf("failed to check badge id: %w", err)
		}
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&member.Name, req.Name)
	applyString(&member.Department, req.Department)
	applyString(&member.BadgeID, req.BadgeID)
	applyString(&member.Email, req.Email)
	applyString(&member.Position, req.Position)
	applyString(&member.Phone, req.Phone)
	applyString(&member.Status, req.Status)

	if err := s.StaffRepository.Update(ctx, member); err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	s.reload(ctx)
	return staff.MapStaffToResponse(member), nil
}

// ToggleStatus implements staff.StaffService.
func (s *StaffServiceImpl) ToggleStatus(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if member.Status == staff.StatusPresent {
		member.Status = staff.StatusAbsent
	} else {
		member.Status = staff.StatusPresent
	}

	if err := s.StaffRepository.Update(ctx, member); err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to toggle status: %w", err)
	}

	s.reload(ctx)
	return staff.MapStaffToResponse(member), nil
}

// Remove implements staff.StaffService. Members with attendance history are
// soft-removed so their events keep resolving; members without any history
// are deleted outright.
func (s *StaffServiceImpl) Remove(ctx context.Context, id string) error {
	member, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hasHistory, err := s.eventRepo.HasHistory(ctx, member.ID)
	if err != nil {
		return fmt.Errorf("failed to check attendance history: %w", err)
	}

	if hasHistory {
		err = s.StaffRepository.SoftRemove(ctx, member.ID)
	} else {
		err = s.StaffRepository.Delete(ctx, member.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to remove staff member: %w", err)
	}

	s.reload(ctx)
	return nil
}

func (s *StaffServiceImpl) reload(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	// Best effort: the cron refresh catches up if this one fails.
	_ = s.snapshot.Load(ctx)
}
