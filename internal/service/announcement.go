package service

import (
	"context"
	"fmt"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/membership"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	activity         ActivityRecorder
	clock            membership.Clock
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, activity ActivityRecorder, clock membership.Clock) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		activity:         activity,
		clock:            clock,
	}
}

func (s *announcementService) Publish(ctx context.Context, staff *domain.StaffMember, announcement *domain.Announcement) (*domain.Announcement, error) {
	if !staff.HasPrivilege(domain.PrivilegeManageAnnouncements) {
		return nil, domain.NewValidationError("privilege", "not allowed to manage announcements")
	}
	if announcement.Title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if announcement.Content == "" {
		return nil, domain.NewValidationError("content", "is required")
	}
	if announcement.Priority == "" {
		announcement.Priority = domain.PriorityMedium
	}
	if announcement.Date == "" {
		announcement.Date = s.clock.Now().Format(membership.DateLayout)
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, staff, "Announcement published",
		fmt.Sprintf("%q (%s priority)", announcement.Title, announcement.Priority),
		domain.ActivityCategoryAdmin)
	return announcement, nil
}

func (s *announcementService) List(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

func (s *announcementService) Delete(ctx context.Context, staff *domain.StaffMember, id string) error {
	if !staff.HasPrivilege(domain.PrivilegeManageAnnouncements) {
		return domain.NewValidationError("privilege", "not allowed to manage announcements")
	}
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, staff, "Announcement removed", fmt.Sprintf("Deleted announcement %s", id), domain.ActivityCategoryAdmin)
	return nil
}
