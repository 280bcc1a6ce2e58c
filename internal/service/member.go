package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
	activity   ActivityRecorder
	clock      membership.Clock
}

func NewMemberService(memberRepo repository.MemberRepository, activity ActivityRecorder, clock membership.Clock) MemberService {
	return &memberService{memberRepo: memberRepo, activity: activity, clock: clock}
}

func (s *memberService) Register(ctx context.Context, staff *domain.StaffMember, req RegisterMemberRequest) (*domain.Member, error) {
	if req.FullName == "" {
		return nil, domain.NewValidationError("full_name", "is required")
	}
	if req.Phone == "" {
		return nil, domain.NewValidationError("phone", "is required")
	}

	if req.Email != "" {
		existing, err := s.memberRepo.GetByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: looking up member: %v", domain.ErrStoreUnavailable, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, req.Email)
		}
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = s.clock.Now().Format(membership.DateLayout)
	}
	expiryDate := req.ExpiryDate
	if expiryDate == "" {
		expiryDate = membership.ComputeExpiry(req.Plan, startDate, s.clock)
	}

	member := &domain.Member{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		Plan:             req.Plan,
		StartDate:        startDate,
		ExpiryDate:       expiryDate,
		Status:           domain.StatusActive,
		Photo:            req.Photo,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: creating member: %v", domain.ErrStoreUnavailable, err)
	}

	s.activity.Record(ctx, staff, "Register Member",
		fmt.Sprintf("Registered %s on the %s plan (expires %s)", member.FullName, member.Plan, member.ExpiryDate),
		domain.ActivityCategoryAdmin)

	return member, nil
}

func (s *memberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refreshStatus(member)
	return member, nil
}

func (s *memberService) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		s.refreshStatus(&members[i])
	}
	return members, nil
}

// refreshStatus overwrites the advisory stored status with the value
// derived from the authoritative expiry date.
func (s *memberService) refreshStatus(member *domain.Member) {
	member.Status = membership.ResolveStatus(member.ExpiryDate, member.Plan, s.clock.Now())
}

func (s *memberService) Update(ctx context.Context, staff *domain.StaffMember, member *domain.Member) (*domain.Member, error) {
	if member.ID == "" {
		return nil, domain.NewValidationError("id", "is required")
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	s.refreshStatus(member)

	s.activity.Record(ctx, staff, "Update Member",
		fmt.Sprintf("Updated details for %s", member.FullName),
		domain.ActivityCategoryAdmin)

	return member, nil
}

func (s *memberService) Delete(ctx context.Context, staff *domain.StaffMember, id string) error {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, staff, "Delete Member",
		fmt.Sprintf("Removed member %s", member.FullName),
		domain.ActivityCategoryAdmin)

	return nil
}
