// Package goal contains goal-related use cases.
package goal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/domain/entity"
)

func testGoal(target string, start, end time.Time) *entity.Goal {
	return &entity.Goal{
		ID:           1,
		UserID:       1,
		CategoryID:   10,
		TargetAmount: decimal.RequireFromString(target),
		PeriodStart:  start,
		PeriodEnd:    end,
	}
}

func expense(categoryID int64, amount string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		UserID:     1,
		Kind:       entity.KindExpense,
		CategoryID: &categoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	}
}

func income(categoryID int64, amount string, date time.Time) *entity.Transaction {
	t := expense(categoryID, amount, date)
	t.Kind = entity.KindIncome
	return t
}

func TestSpentInPeriod(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	g := testGoal("500", start, end)

	t.Run("sums expenses in the category and window", func(t *testing.T) {
		spent := SpentInPeriod(g, []*entity.Transaction{
			expense(10, "100", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
			expense(10, "50.50", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)),
		})
		if !spent.Equal(decimal.RequireFromString("150.50")) {
			t.Errorf("expected 150.50, got %s", spent)
		}
	})

	t.Run("excludes income", func(t *testing.T) {
		spent := SpentInPeriod(g, []*entity.Transaction{
			expense(10, "100", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
			income(10, "2000", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
		})
		if !spent.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", spent)
		}
	})

	t.Run("counts negative amounts by absolute value regardless of kind", func(t *testing.T) {
		neg := income(10, "-75", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
		spent := SpentInPeriod(g, []*entity.Transaction{neg})
		if !spent.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected 75, got %s", spent)
		}
	})

	t.Run("excludes other categories", func(t *testing.T) {
		spent := SpentInPeriod(g, []*entity.Transaction{
			expense(99, "100", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
		})
		if !spent.IsZero() {
			t.Errorf("expected 0, got %s", spent)
		}
	})

	t.Run("excludes uncategorized transactions", func(t *testing.T) {
		tx := expense(10, "100", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
		tx.CategoryID = nil
		spent := SpentInPeriod(g, []*entity.Transaction{tx})
		if !spent.IsZero() {
			t.Errorf("expected 0, got %s", spent)
		}
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		spent := SpentInPeriod(g, []*entity.Transaction{
			expense(10, "10", start),
			expense(10, "20", end),
			expense(10, "100", start.AddDate(0, 0, -1)),
			expense(10, "100", end.AddDate(0, 0, 1)),
		})
		if !spent.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected 30, got %s", spent)
		}
	})

	t.Run("boundary comparison ignores time of day", func(t *testing.T) {
		// A transaction late on the last day of the window still counts even
		// when the goal's period end carries a midnight timestamp.
		spent := SpentInPeriod(g, []*entity.Transaction{
			expense(10, "40", time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)),
		})
		if !spent.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected 40, got %s", spent)
		}
	})
}

func TestProgress(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("reports the spent percentage", func(t *testing.T) {
		g := testGoal("500", start, end)
		pct := Progress(g, []*entity.Transaction{expense(10, "125", mid)})
		if pct != 25 {
			t.Errorf("expected 25, got %v", pct)
		}
	})

	t.Run("sums multiple expenses before computing the percentage", func(t *testing.T) {
		g := testGoal("500", start, end)
		pct := Progress(g, []*entity.Transaction{
			expense(10, "100", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
			expense(10, "150", mid),
			expense(10, "100", time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)),
		})
		if pct != 70 {
			t.Errorf("expected 70, got %v", pct)
		}
	})

	t.Run("rounds to one decimal place", func(t *testing.T) {
		g := testGoal("300", start, end)
		pct := Progress(g, []*entity.Transaction{expense(10, "100", mid)})
		if pct != 33.3 {
			t.Errorf("expected 33.3, got %v", pct)
		}
	})

	t.Run("clamps overspending to 100", func(t *testing.T) {
		g := testGoal("100", start, end)
		pct := Progress(g, []*entity.Transaction{expense(10, "250", mid)})
		if pct != 100 {
			t.Errorf("expected 100, got %v", pct)
		}
	})

	t.Run("non-positive target reports 0", func(t *testing.T) {
		g := testGoal("0", start, end)
		if pct := Progress(g, []*entity.Transaction{expense(10, "50", mid)}); pct != 0 {
			t.Errorf("expected 0 for zero target, got %v", pct)
		}

		g = testGoal("-100", start, end)
		if pct := Progress(g, []*entity.Transaction{expense(10, "50", mid)}); pct != 0 {
			t.Errorf("expected 0 for negative target, got %v", pct)
		}
	})

	t.Run("no transactions reports 0", func(t *testing.T) {
		g := testGoal("500", start, end)
		if pct := Progress(g, nil); pct != 0 {
			t.Errorf("expected 0, got %v", pct)
		}
	})
}
