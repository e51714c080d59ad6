package expense

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ParseError is returned when a value that must be a number is not.
type ParseError struct {
	Field string
	Input string
	Line  int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s %q: must be a number", e.Line, e.Field, e.Input)
	}
	return fmt.Sprintf("invalid %s %q: must be a number", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrNotFinite is wrapped by a *ParseError for infinite or NaN input.
var ErrNotFinite = errors.New("value is not a finite number")

// ParseAmount parses user or file input as a finite floating point number.
func ParseAmount(field, input string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, &ParseError{Field: field, Input: input, Err: err}
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, &ParseError{Field: field, Input: input, Err: ErrNotFinite}
	}

	return value, nil
}

type Expense struct {
	Date        string
	Category    string
	Amount      float64
	Description string

	amountSet bool
}

func New(date, category string, amount float64, description string) Expense {
	return Expense{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
		amountSet:   true,
	}
}

// NewWithoutAmount builds a record whose amount was never provided, such as a
// row read from a file with an empty amount cell.
func NewWithoutAmount(date, category, description string) Expense {
	return Expense{
		Date:        date,
		Category:    category,
		Description: description,
	}
}

func (e Expense) HasAmount() bool {
	return e.amountSet
}

// Complete reports whether every field carries a value. A zero amount that was
// explicitly entered counts as a value.
func (e Expense) Complete() bool {
	return e.Date != "" && e.Category != "" && e.Description != "" && e.amountSet
}

// Decimal returns the amount for arithmetic. A missing amount is zero.
func (e Expense) Decimal() decimal.Decimal {
	if !e.amountSet {
		return decimal.Zero
	}
	return decimal.NewFromFloat(e.Amount)
}

// Store keeps expenses in the order they were recorded. Records are never
// edited or removed.
type Store struct {
	expenses []Expense
}

func NewStore() *Store {
	return &Store{}
}

// Add parses amount and appends a new expense. On a *ParseError the store is
// left untouched.
func (s *Store) Add(date, category, amount, description string) (Expense, error) {
	value, err := ParseAmount("amount", amount)
	if err != nil {
		return Expense{}, err
	}

	ex := New(date, category, value, description)
	s.expenses = append(s.expenses, ex)

	return ex, nil
}

func (s *Store) Append(expenses ...Expense) {
	s.expenses = append(s.expenses, expenses...)
}

func (s *Store) All() []Expense {
	return slices.Clone(s.expenses)
}

func (s *Store) Len() int {
	return len(s.expenses)
}

func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ex := range s.expenses {
		total = total.Add(ex.Decimal())
	}

	return total
}
