package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/GustavoCaso/expensetracker/internal/expense"
)

// ErrNoData is returned by Load when nothing has been persisted yet.
var ErrNoData = errors.New("no saved expenses")

type FileIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("unable to %s %s: %s", e.Op, e.Path, e.Err.Error())
}

func (e *FileIOError) Unwrap() error {
	return e.Err
}

type Storage interface {
	// Load returns the persisted expenses in the order they were saved.
	Load(ctx context.Context) ([]expense.Expense, error)
	// Save replaces everything persisted with expenses.
	Save(ctx context.Context, expenses []expense.Expense) error
	// Location describes where expenses are persisted, for user messages.
	Location() string
}
