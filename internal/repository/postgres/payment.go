package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/google/uuid"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, COALESCE(member_id, ''), member_name, amount, date, method, status, COALESCE(confirmed_by, ''),
	COALESCE(transaction_id, ''), COALESCE(momo_phone, ''), COALESCE(network, ''),
	is_pending_member, COALESCE(member_email, ''), COALESCE(member_phone, ''), COALESCE(member_address, ''),
	COALESCE(member_photo, ''), COALESCE(member_plan, ''), COALESCE(member_start_date, ''), COALESCE(member_expiry_date, '')`

func (r *paymentRepository) Create(ctx context.Context, p *domain.PaymentRecord) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO payments (id, member_id, member_name, amount, date, method, status, confirmed_by,
	              transaction_id, momo_phone, network,
	              is_pending_member, member_email, member_phone, member_address, member_photo, member_plan, member_start_date, member_expiry_date)
	          VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''),
	                  $12, NULLIF($13, ''), NULLIF($14, ''), NULLIF($15, ''), NULLIF($16, ''), NULLIF($17, ''), NULLIF($18, ''), NULLIF($19, ''))`
	snap := p.Pending
	if snap == nil {
		snap = &domain.PendingMember{}
	}
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.MemberID, p.MemberName, p.Amount, p.Date, p.Method, p.Status, p.ConfirmedBy,
		p.TransactionID, p.MomoPhone, p.Network,
		p.IsPendingMember, snap.Email, snap.Phone, snap.Address, snap.Photo,
		string(snap.Plan), snap.StartDate, snap.ExpiryDate)
	return err
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPayment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanPayment(scan func(dest ...any) error) (*domain.PaymentRecord, error) {
	p := &domain.PaymentRecord{}
	var email, phone, address, photo, plan, startDate, expiryDate string
	err := scan(&p.ID, &p.MemberID, &p.MemberName, &p.Amount, &p.Date, &p.Method, &p.Status, &p.ConfirmedBy,
		&p.TransactionID, &p.MomoPhone, &p.Network,
		&p.IsPendingMember, &email, &phone, &address, &photo, &plan, &startDate, &expiryDate)
	if err != nil {
		return nil, err
	}
	if p.IsPendingMember {
		p.Pending = &domain.PendingMember{
			FullName:   p.MemberName,
			Email:      email,
			Phone:      phone,
			Address:    address,
			Photo:      photo,
			Plan:       domain.SubscriptionPlan(plan),
			StartDate:  startDate,
			ExpiryDate: expiryDate,
		}
	}
	return p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.PaymentRecord) error {
	// The pending-member snapshot is immutable once written; only linkage
	// and state fields ever change.
	query := `UPDATE payments SET member_id=NULLIF($1, ''), status=$2, confirmed_by=NULLIF($3, '') WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, p.MemberID, p.Status, p.ConfirmedBy, p.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.PaymentRecord, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY date DESC`)
}

func (r *paymentRepository) ListPending(ctx context.Context) ([]domain.PaymentRecord, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE status = 'Pending' ORDER BY date DESC`)
}

func (r *paymentRepository) list(ctx context.Context, query string) ([]domain.PaymentRecord, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PaymentRecord
	for rows.Next() {
		p, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
