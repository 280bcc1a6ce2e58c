package service

import (
	"context"
	"fmt"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type communicationService struct {
	memberRepo repository.MemberRepository
	notifier   NotificationGateway
	activity   ActivityRecorder
}

func NewCommunicationService(memberRepo repository.MemberRepository, notifier NotificationGateway, activity ActivityRecorder) CommunicationService {
	return &communicationService{
		memberRepo: memberRepo,
		notifier:   notifier,
		activity:   activity,
	}
}

func (s *communicationService) SendToMember(ctx context.Context, staff *domain.StaffMember, memberID, subject, message string) error {
	if subject == "" {
		return domain.NewValidationError("subject", "is required")
	}
	if message == "" {
		return domain.NewValidationError("message", "is required")
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}

	if err := s.notifier.SendMessage(ctx, member, subject, message); err != nil {
		return fmt.Errorf("delivering message to %s: %w", member.FullName, err)
	}

	s.activity.Record(ctx, staff, "Message sent",
		fmt.Sprintf("Sent %q to %s", subject, member.FullName),
		domain.ActivityCategoryAdmin)
	return nil
}
