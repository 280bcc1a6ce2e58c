package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, full_name, email, role, COALESCE(position, ''), COALESCE(phone, ''), COALESCE(avatar, ''), privileges, password_hash, created_at`

func (r *staffRepository) Create(ctx context.Context, s *domain.StaffMember) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().Format(time.RFC3339)
	query := `INSERT INTO staff (id, full_name, email, role, position, phone, avatar, privileges, password_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.FullName, s.Email, s.Role, s.Position, s.Phone, s.Avatar,
		pq.Array(privilegeStrings(s.Privileges)), s.PasswordHash, s.CreatedAt)
	return err
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *staffRepository) scanOne(row *sql.Row) (*domain.StaffMember, error) {
	s := &domain.StaffMember{}
	var privileges []string
	var createdAt sql.NullTime
	err := row.Scan(&s.ID, &s.FullName, &s.Email, &s.Role, &s.Position, &s.Phone, &s.Avatar,
		pq.Array(&privileges), &s.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Privileges = toPrivileges(privileges)
	if createdAt.Valid {
		s.CreatedAt = createdAt.Time.Format(time.RFC3339)
	}
	return s, nil
}

func (r *staffRepository) Update(ctx context.Context, s *domain.StaffMember) error {
	query := `UPDATE staff SET full_name=$1, email=$2, role=$3, position=$4, phone=$5, avatar=$6, privileges=$7, password_hash=$8 WHERE id=$9`
	res, err := r.db.ExecContext(ctx, query,
		s.FullName, s.Email, s.Role, s.Position, s.Phone, s.Avatar,
		pq.Array(privilegeStrings(s.Privileges)), s.PasswordHash, s.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []domain.StaffMember
	for rows.Next() {
		var s domain.StaffMember
		var privileges []string
		var createdAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.Role, &s.Position, &s.Phone, &s.Avatar,
			pq.Array(&privileges), &s.PasswordHash, &createdAt); err != nil {
			return nil, err
		}
		s.Privileges = toPrivileges(privileges)
		if createdAt.Valid {
			s.CreatedAt = createdAt.Time.Format(time.RFC3339)
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func privilegeStrings(privileges []domain.Privilege) []string {
	out := make([]string, len(privileges))
	for i, p := range privileges {
		out[i] = string(p)
	}
	return out
}

func toPrivileges(values []string) []domain.Privilege {
	if len(values) == 0 {
		return nil
	}
	out := make([]domain.Privilege, len(values))
	for i, v := range values {
		out[i] = domain.Privilege(v)
	}
	return out
}
