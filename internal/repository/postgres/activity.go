package postgres

import (
	"context"
	"database/sql"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/google/uuid"
)

type activityLogRepository struct {
	db *sql.DB
}

func NewActivityLogRepository(db *sql.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, l *domain.ActivityLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	query := `INSERT INTO activity_logs (id, user_role, user_email, action, details, timestamp, category)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.UserRole, l.UserEmail, l.Action, l.Details, l.Timestamp, l.Category)
	return err
}

func (r *activityLogRepository) List(ctx context.Context, limit int32) ([]domain.ActivityLog, error) {
	query := `SELECT id, user_role, user_email, action, details, timestamp, category FROM activity_logs ORDER BY timestamp DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserRole, &l.UserEmail, &l.Action, &l.Details, &l.Timestamp, &l.Category); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
