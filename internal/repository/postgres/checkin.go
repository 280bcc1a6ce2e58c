package postgres

import (
	"context"
	"database/sql"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/google/uuid"
)

type checkInRepository struct {
	db *sql.DB
}

func NewCheckInRepository(db *sql.DB) repository.CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) CreateClientCheckIn(ctx context.Context, c *domain.ClientCheckIn) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO client_checkins (id, full_name, phone, email, date, check_in_time, notes)
	          VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''))`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.FullName, c.Phone, c.Email, c.Date, c.CheckInTime, c.Notes)
	return err
}

func (r *checkInRepository) CheckOutClient(ctx context.Context, id, checkOutTime string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE client_checkins SET check_out_time = $1 WHERE id = $2`, checkOutTime, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *checkInRepository) ListClientCheckIns(ctx context.Context, date string) ([]domain.ClientCheckIn, error) {
	query := `SELECT id, full_name, phone, COALESCE(email, ''), date, check_in_time, COALESCE(check_out_time, ''), COALESCE(notes, '')
	          FROM client_checkins WHERE date = $1 ORDER BY check_in_time`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkIns []domain.ClientCheckIn
	for rows.Next() {
		var c domain.ClientCheckIn
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Date, &c.CheckInTime, &c.CheckOutTime, &c.Notes); err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}
	return checkIns, rows.Err()
}

func (r *checkInRepository) CreateAttendance(ctx context.Context, a *domain.AttendanceRecord) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	query := `INSERT INTO attendance (id, staff_email, staff_role, date, sign_in_time) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.StaffEmail, a.StaffRole, a.Date, a.SignInTime)
	return err
}

func (r *checkInRepository) SignOutAttendance(ctx context.Context, id, signOutTime string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE attendance SET sign_out_time = $1 WHERE id = $2`, signOutTime, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *checkInRepository) ListAttendance(ctx context.Context, date string) ([]domain.AttendanceRecord, error) {
	query := `SELECT id, staff_email, staff_role, date, sign_in_time, COALESCE(sign_out_time, '') FROM attendance WHERE date = $1 ORDER BY sign_in_time`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var a domain.AttendanceRecord
		if err := rows.Scan(&a.ID, &a.StaffEmail, &a.StaffRole, &a.Date, &a.SignInTime, &a.SignOutTime); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
