package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/google/uuid"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, full_name, COALESCE(email, ''), phone, COALESCE(address, ''), COALESCE(emergency_contact, ''), plan, start_date, expiry_date, status, COALESCE(photo, ''), created_at`

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now().Format(time.RFC3339)
	query := `INSERT INTO members (id, full_name, email, phone, address, emergency_contact, plan, start_date, expiry_date, status, photo, created_at)
	          VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.FullName, m.Email, m.Phone, m.Address, m.EmergencyContact,
		m.Plan, m.StartDate, m.ExpiryDate, m.Status, m.Photo, m.CreatedAt)
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, m.Email)
	}
	return err
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *memberRepository) scanOne(row *sql.Row) (*domain.Member, error) {
	m := &domain.Member{}
	var createdAt sql.NullTime
	err := row.Scan(&m.ID, &m.FullName, &m.Email, &m.Phone, &m.Address, &m.EmergencyContact,
		&m.Plan, &m.StartDate, &m.ExpiryDate, &m.Status, &m.Photo, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if createdAt.Valid {
		m.CreatedAt = createdAt.Time.Format(time.RFC3339)
	}
	return m, nil
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET full_name=$1, email=NULLIF($2, ''), phone=$3, address=$4, emergency_contact=$5, plan=$6, start_date=$7, expiry_date=$8, status=$9, photo=$10 WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query,
		m.FullName, m.Email, m.Phone, m.Address, m.EmergencyContact,
		m.Plan, m.StartDate, m.ExpiryDate, m.Status, m.Photo, m.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY full_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		var createdAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.Phone, &m.Address, &m.EmergencyContact,
			&m.Plan, &m.StartDate, &m.ExpiryDate, &m.Status, &m.Photo, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			m.CreatedAt = createdAt.Time.Format(time.RFC3339)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
