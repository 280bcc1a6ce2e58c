package service

import (
	"context"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/logger"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type activityRecorder struct {
	repo repository.ActivityLogRepository
}

// NewActivityRecorder returns a recorder backed by the activity log store.
// Failures to persist an entry are logged and swallowed so audit writes
// never fail the operation being audited.
func NewActivityRecorder(repo repository.ActivityLogRepository) ActivityRecorder {
	return &activityRecorder{repo: repo}
}

func (r *activityRecorder) Record(ctx context.Context, actor *domain.StaffMember, action, details string, category domain.ActivityCategory) {
	entry := &domain.ActivityLog{
		Action:    action,
		Details:   details,
		Timestamp: time.Now().Format(time.RFC3339),
		Category:  category,
	}
	if actor != nil {
		entry.UserRole = actor.Role
		entry.UserEmail = actor.Email
	} else {
		entry.UserRole = domain.RolePublic
	}

	if err := r.repo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to record activity", "action", action, "error", err)
	}
}
