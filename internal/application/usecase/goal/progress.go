// Package goal contains goal-related use cases.
package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/auracash/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// SpentInPeriod sums the absolute amounts of the transactions that count
// toward the goal: same category, date within the goal window (both bounds
// inclusive, compared as calendar dates), and expense-kind. Income never
// contributes; a goal models a spending cap, not a net-flow target.
func SpentInPeriod(g *entity.Goal, transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if !countsTowardGoal(g, t) {
			continue
		}
		total = total.Add(t.Amount.Abs())
	}
	return total
}

// Progress returns the display percentage for a goal over the given
// transactions, rounded to one decimal place and clamped to [0, 100].
// A goal with a non-positive target is degenerate and reports 0.
func Progress(g *entity.Goal, transactions []*entity.Transaction) float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}

	spent := SpentInPeriod(g, transactions)
	pct := spent.Div(g.TargetAmount).Mul(oneHundred).Round(1)

	if pct.IsNegative() {
		return 0
	}
	if pct.GreaterThan(oneHundred) {
		return 100
	}
	return pct.InexactFloat64()
}

func countsTowardGoal(g *entity.Goal, t *entity.Transaction) bool {
	if t.CategoryID == nil || *t.CategoryID != g.CategoryID {
		return false
	}
	if t.Kind != entity.KindExpense && !t.Amount.IsNegative() {
		return false
	}

	day := dateOnly(t.Date)
	return !day.Before(dateOnly(g.PeriodStart)) && !day.After(dateOnly(g.PeriodEnd))
}

// dateOnly normalizes away the time-of-day component so that boundary
// comparisons work on calendar dates, not timestamps.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
