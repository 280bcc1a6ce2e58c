package service

import (
	"context"
	"fmt"
	"time"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	activity    ActivityRecorder
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, activity ActivityRecorder) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		activity:    activity,
	}
}

func (s *expenseService) Record(ctx context.Context, staff *domain.StaffMember, expense *domain.Expense) (*domain.Expense, error) {
	if expense.ItemName == "" {
		return nil, domain.NewValidationError("item_name", "is required")
	}
	if expense.Amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be a positive number")
	}

	if expense.DateTime == "" {
		expense.DateTime = time.Now().Format(time.RFC3339)
	}
	expense.StaffName = staff.FullName
	expense.StaffEmail = staff.Email

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, staff, "Expense recorded",
		fmt.Sprintf("%s - GHS %.2f", expense.ItemName, expense.Amount),
		domain.ActivityCategoryFinancial)
	return expense, nil
}

func (s *expenseService) List(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx)
}

func (s *expenseService) Delete(ctx context.Context, staff *domain.StaffMember, id string) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, staff, "Expense removed", fmt.Sprintf("Deleted expense %s", id), domain.ActivityCategoryFinancial)
	return nil
}
