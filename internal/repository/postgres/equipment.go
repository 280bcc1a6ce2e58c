package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/google/uuid"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.GymEquipment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().Format(time.RFC3339)
	e.CreatedAt = now
	e.UpdatedAt = now
	query := `INSERT INTO equipment (id, name, state, condition, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.State, e.Condition, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.GymEquipment, error) {
	e := &domain.GymEquipment{}
	var createdAt, updatedAt time.Time
	query := `SELECT id, name, state, condition, created_at, updated_at FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.State, &e.Condition, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e.CreatedAt = createdAt.Format(time.RFC3339)
	e.UpdatedAt = updatedAt.Format(time.RFC3339)
	return e, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.GymEquipment) error {
	e.UpdatedAt = time.Now().Format(time.RFC3339)
	query := `UPDATE equipment SET name=$1, state=$2, condition=$3, updated_at=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, e.Name, e.State, e.Condition, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.GymEquipment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, state, condition, created_at, updated_at FROM equipment ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.GymEquipment
	for rows.Next() {
		var e domain.GymEquipment
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&e.ID, &e.Name, &e.State, &e.Condition, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e.CreatedAt = createdAt.Format(time.RFC3339)
		e.UpdatedAt = updatedAt.Format(time.RFC3339)
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) CreateMaintenanceLog(ctx context.Context, l *domain.MaintenanceLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now().Format(time.RFC3339)
	query := `INSERT INTO maintenance_logs (id, equipment_name, description, date_time, staff_name, staff_email, created_at)
	          VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.EquipmentName, l.Description, l.DateTime, l.StaffName, l.StaffEmail, l.CreatedAt)
	return err
}

func (r *equipmentRepository) ListMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error) {
	query := `SELECT id, equipment_name, description, date_time, staff_name, COALESCE(staff_email, ''), created_at FROM maintenance_logs ORDER BY date_time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.MaintenanceLog
	for rows.Next() {
		var l domain.MaintenanceLog
		var createdAt time.Time
		if err := rows.Scan(&l.ID, &l.EquipmentName, &l.Description, &l.DateTime, &l.StaffName, &l.StaffEmail, &createdAt); err != nil {
			return nil, err
		}
		l.CreatedAt = createdAt.Format(time.RFC3339)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
