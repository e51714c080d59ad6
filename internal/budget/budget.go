package budget

import (
	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expensetracker/internal/expense"
)

type Status string

const (
	StatusNotSet Status = "not_set"
	StatusUnder  Status = "under"
	StatusOver   Status = "over"
)

type Report struct {
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal // negative when over budget
	Status    Status
}

// Tracker holds the monthly budget for the lifetime of the process.
type Tracker struct {
	amount decimal.Decimal
	set    bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Set replaces the budget. Zero and negative values are accepted.
func (t *Tracker) Set(amount float64) decimal.Decimal {
	t.amount = decimal.NewFromFloat(amount)
	t.set = true

	return t.amount
}

func (t *Tracker) IsSet() bool {
	return t.set
}

func (t *Tracker) Amount() decimal.Decimal {
	return t.amount
}

func (t *Tracker) Track(expenses []expense.Expense) Report {
	if !t.set {
		return Report{Status: StatusNotSet}
	}

	spent := decimal.Zero
	for _, ex := range expenses {
		spent = spent.Add(ex.Decimal())
	}

	report := Report{
		Budget:    t.amount,
		Spent:     spent,
		Remaining: t.amount.Sub(spent),
		Status:    StatusUnder,
	}

	if spent.GreaterThan(t.amount) {
		report.Status = StatusOver
	}

	return report
}
