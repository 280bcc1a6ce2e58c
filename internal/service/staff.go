package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
	"github.com/CaL7598/Goodlife-gym/internal/security"
)

type staffService struct {
	staffRepo repository.StaffRepository
	tokens    security.TokenManager
	activity  ActivityRecorder
}

func NewStaffService(staffRepo repository.StaffRepository, tokens security.TokenManager, activity ActivityRecorder) StaffService {
	return &staffService{
		staffRepo: staffRepo,
		tokens:    tokens,
		activity:  activity,
	}
}

func (s *staffService) Login(ctx context.Context, email, password string) (*domain.StaffMember, string, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("looking up staff member: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(staff)
	if err != nil {
		return nil, "", fmt.Errorf("generating access token: %w", err)
	}

	s.activity.Record(ctx, staff, "Staff login", fmt.Sprintf("%s signed in", staff.Email), domain.ActivityCategoryAccess)
	return staff, token, nil
}

func (s *staffService) Create(ctx context.Context, actor *domain.StaffMember, staff *domain.StaffMember, password string) (*domain.StaffMember, error) {
	if !actor.HasPrivilege(domain.PrivilegeManageStaff) {
		return nil, domain.NewValidationError("privilege", "not allowed to manage staff")
	}
	if staff.Email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	staff.PasswordHash = string(hash)
	if staff.Role == "" {
		staff.Role = domain.RoleStaff
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, "Staff created",
		fmt.Sprintf("Added %s (%s) as %s", staff.FullName, staff.Email, staff.Role),
		domain.ActivityCategoryAdmin)
	return staff, nil
}

func (s *staffService) Get(ctx context.Context, id string) (*domain.StaffMember, error) {
	return s.staffRepo.GetByID(ctx, id)
}

func (s *staffService) List(ctx context.Context) ([]domain.StaffMember, error) {
	return s.staffRepo.List(ctx)
}

func (s *staffService) Update(ctx context.Context, actor *domain.StaffMember, staff *domain.StaffMember) (*domain.StaffMember, error) {
	if !actor.HasPrivilege(domain.PrivilegeManageStaff) && actor.ID != staff.ID {
		return nil, domain.NewValidationError("privilege", "not allowed to manage staff")
	}

	current, err := s.staffRepo.GetByID(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	// Password changes go through a dedicated flow, never the profile update.
	staff.PasswordHash = current.PasswordHash

	// Only staff managers may touch role and privileges.
	if !actor.HasPrivilege(domain.PrivilegeManageStaff) {
		staff.Role = current.Role
		staff.Privileges = current.Privileges
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, "Staff updated",
		fmt.Sprintf("Updated profile for %s", staff.Email),
		domain.ActivityCategoryAdmin)
	return staff, nil
}

func (s *staffService) Delete(ctx context.Context, actor *domain.StaffMember, id string) error {
	if !actor.HasPrivilege(domain.PrivilegeManageStaff) {
		return domain.NewValidationError("privilege", "not allowed to manage staff")
	}
	if actor.ID == id {
		return domain.NewValidationError("id", "cannot remove your own account")
	}

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff.Role == domain.RoleSuperAdmin {
		return domain.NewValidationError("id", "super admin accounts cannot be removed")
	}

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, "Staff removed",
		fmt.Sprintf("Removed %s (%s)", staff.FullName, staff.Email),
		domain.ActivityCategoryAdmin)
	return nil
}
