package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"

	"github.com/google/uuid"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().Format(time.RFC3339)
	query := `INSERT INTO expenses (id, item_name, description, amount, date_time, staff_name, staff_email, created_at)
	          VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.ItemName, e.Description, e.Amount, e.DateTime, e.StaffName, e.StaffEmail, e.CreatedAt)
	return err
}

func (r *expenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	query := `SELECT id, item_name, COALESCE(description, ''), amount, date_time, staff_name, COALESCE(staff_email, ''), created_at FROM expenses ORDER BY date_time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.ItemName, &e.Description, &e.Amount, &e.DateTime, &e.StaffName, &e.StaffEmail, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = createdAt.Format(time.RFC3339)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
