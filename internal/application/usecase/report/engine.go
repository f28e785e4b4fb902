// Package report contains the reporting engine and report-related use cases.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
)

// Engine answers reporting queries over a fixed transaction set and profile.
// It is constructed per request from one user's data, is read-only after
// construction, and holds no state between queries, so concurrent reads on a
// shared instance are safe without synchronization.
type Engine struct {
	transactions []*entity.Transaction // sorted ascending by date, stable
	profile      *entity.Profile
}

// NewEngine creates a reporting engine over the given transactions and profile.
// The transaction slice is copied and stable-sorted ascending by date, so
// equal dates keep their original relative order and output is deterministic
// under ties. All transactions are assumed to belong to the same user.
func NewEngine(transactions []*entity.Transaction, profile *entity.Profile) *Engine {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return &Engine{
		transactions: sorted,
		profile:      profile,
	}
}

// Profile returns the profile the engine was constructed with.
func (e *Engine) Profile() *entity.Profile {
	return e.profile
}

// filterRange returns the subsequence of transactions whose date falls in
// [start, end], inclusive on both ends, preserving the stored order.
// A range with start after end is a caller error and is rejected.
func (e *Engine) filterRange(start, end time.Time) ([]*entity.Transaction, error) {
	start = entity.DayOf(start)
	end = entity.DayOf(end)

	if start.After(end) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start_date must not be after end_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	filtered := make([]*entity.Transaction, 0, len(e.transactions))
	for _, txn := range e.transactions {
		if txn.Date.Before(start) {
			continue
		}
		if txn.Date.After(end) {
			break
		}
		filtered = append(filtered, txn)
	}

	return filtered, nil
}

// SpendingAnalysis returns expense totals grouped by category for the period.
// Categories without expenses in the period are omitted entirely; iteration
// order of the returned map is unspecified.
func (e *Engine) SpendingAnalysis(start, end time.Time) (map[string]decimal.Decimal, error) {
	inRange, err := e.filterRange(start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, txn := range inRange {
		if txn.Kind != entity.TransactionKindExpense {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	return totals, nil
}

// IncomeExpenseTotals holds the aggregate income and expense sums for a period.
// Both totals are zero-valued, never absent, when no transactions match.
type IncomeExpenseTotals struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// IncomeVsExpense returns total income and total expenses for the period.
func (e *Engine) IncomeVsExpense(start, end time.Time) (*IncomeExpenseTotals, error) {
	inRange, err := e.filterRange(start, end)
	if err != nil {
		return nil, err
	}

	totals := &IncomeExpenseTotals{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, txn := range inRange {
		switch txn.Kind {
		case entity.TransactionKindIncome:
			totals.TotalIncome = totals.TotalIncome.Add(txn.Amount)
		case entity.TransactionKindExpense:
			totals.TotalExpenses = totals.TotalExpenses.Add(txn.Amount)
		}
	}

	return totals, nil
}

// GrowthPoint is one day of the cumulative savings-growth series.
type GrowthPoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// SavingsGrowth returns a cumulative balance series with one entry per
// calendar day in [start, end] inclusive. The balance is period-relative: it
// starts at zero on the start date and only reflects net change within the
// window, not the true account balance. Days without transactions carry the
// running balance forward. When no transaction falls in the range the series
// is empty rather than a zero-filled calendar.
func (e *Engine) SavingsGrowth(start, end time.Time) ([]GrowthPoint, error) {
	inRange, err := e.filterRange(start, end)
	if err != nil {
		return nil, err
	}

	if len(inRange) == 0 {
		return []GrowthPoint{}, nil
	}

	// Bucket net change by calendar day: +amount for income, -amount for
	// expense. Dates are already normalized to UTC midnight, so same-day
	// transactions merge into one bucket regardless of time-of-day.
	netByDay := make(map[time.Time]decimal.Decimal)
	for _, txn := range inRange {
		switch txn.Kind {
		case entity.TransactionKindIncome:
			netByDay[txn.Date] = netByDay[txn.Date].Add(txn.Amount)
		case entity.TransactionKindExpense:
			netByDay[txn.Date] = netByDay[txn.Date].Sub(txn.Amount)
		}
	}

	first := entity.DayOf(start)
	last := entity.DayOf(end)

	points := make([]GrowthPoint, 0, int(last.Sub(first).Hours()/24)+1)
	balance := decimal.Zero
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if net, ok := netByDay[day]; ok {
			balance = balance.Add(net)
		}
		points = append(points, GrowthPoint{Date: day, Balance: balance})
	}

	return points, nil
}

// BudgetVariance compares actual savings for a period against the profile's
// savings goal. A positive variance means the user is ahead of the goal.
type BudgetVariance struct {
	ExpectedIncome decimal.Decimal
	ActualIncome   decimal.Decimal
	SavingsGoal    decimal.Decimal
	ActualSavings  decimal.Decimal
	Variance       decimal.Decimal
}

// BudgetVsActual returns the budget-vs-actual goal variance for the period.
// It composes IncomeVsExpense for the actual figures.
func (e *Engine) BudgetVsActual(start, end time.Time) (*BudgetVariance, error) {
	totals, err := e.IncomeVsExpense(start, end)
	if err != nil {
		return nil, err
	}

	actualSavings := totals.TotalIncome.Sub(totals.TotalExpenses)
	savingsGoal := e.profile.MonthlySavingsGoalAmount()

	return &BudgetVariance{
		ExpectedIncome: e.expectedIncomeForRange(start, end),
		ActualIncome:   totals.TotalIncome,
		SavingsGoal:    savingsGoal,
		ActualSavings:  actualSavings,
		Variance:       actualSavings.Sub(savingsGoal),
	}, nil
}

// expectedIncomeForRange returns the income expected for the query range.
// The monthly salary is taken verbatim, not prorated to the range width;
// prorating can be introduced here without touching the aggregation logic.
func (e *Engine) expectedIncomeForRange(_, _ time.Time) decimal.Decimal {
	return e.profile.MonthlySalary
}
