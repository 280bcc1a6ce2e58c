package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

var memberRows = []string{"id", "full_name", "email", "phone", "address", "emergency_contact", "plan", "start_date", "expiry_date", "status", "photo", "created_at"}

func TestMemberRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		member := &domain.Member{
			FullName:   "Kofi Boateng",
			Email:      "kofi@example.com",
			Phone:      "+233201234567",
			Plan:       domain.PlanMonthly,
			StartDate:  "2024-06-10",
			ExpiryDate: "2024-07-10",
			Status:     domain.StatusActive,
		}

		mock.ExpectExec("INSERT INTO members").
			WithArgs(sqlmock.AnyArg(), member.FullName, member.Email, member.Phone, "", "",
				member.Plan, member.StartDate, member.ExpiryDate, member.Status, "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, member)
		assert.NoError(t, err)
		assert.NotEmpty(t, member.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		member := &domain.Member{FullName: "Kofi Boateng", Email: "kofi@example.com", Phone: "+233201234567"}

		mock.ExpectExec("INSERT INTO members").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, member)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestMemberRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(memberRows).
			AddRow("m-1", "Kofi Boateng", "kofi@example.com", "+233201234567", "", "",
				"Monthly", "2024-06-10", "2024-07-10", "active", "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
			WithArgs("m-1").
			WillReturnRows(rows)

		member, err := repo.GetByID(ctx, "m-1")
		assert.NoError(t, err)
		assert.Equal(t, "Kofi Boateng", member.FullName)
		assert.Equal(t, domain.PlanMonthly, member.Plan)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(memberRows))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemberRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("CaseInsensitive", func(t *testing.T) {
		rows := sqlmock.NewRows(memberRows).
			AddRow("m-1", "Kofi Boateng", "kofi@example.com", "+233201234567", "", "",
				"Monthly", "2024-06-10", "2024-07-10", "active", "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM members WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("KOFI@example.com").
			WillReturnRows(rows)

		member, err := repo.GetByEmail(ctx, "KOFI@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "m-1", member.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(memberRows))

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemberRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		member := &domain.Member{ID: "m-1", FullName: "Kofi Boateng", Phone: "+233201234567", Plan: domain.PlanMonthly}

		mock.ExpectExec("UPDATE members SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, member)
		assert.NoError(t, err)
	})

	t.Run("MissingRowNotFound", func(t *testing.T) {
		member := &domain.Member{ID: "missing", FullName: "Nobody"}

		mock.ExpectExec("UPDATE members SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, member)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemberRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM members WHERE id = \\$1").
			WithArgs("m-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "m-1"))
	})

	t.Run("MissingRowNotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM members WHERE id = \\$1").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrNotFound)
	})
}
