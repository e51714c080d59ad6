package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/GustavoCaso/expensetracker/internal/expense"
	"github.com/GustavoCaso/expensetracker/internal/logger"
	"github.com/GustavoCaso/expensetracker/internal/storage"
)

const (
	dateColumn        = "Date"
	categoryColumn    = "Category"
	amountColumn      = "Amount"
	descriptionColumn = "Description"
)

var header = []string{dateColumn, categoryColumn, amountColumn, descriptionColumn}

type csvStorage struct {
	path   string
	logger *logger.Logger
}

func New(path string, logger *logger.Logger) storage.Storage {
	return &csvStorage{
		path:   path,
		logger: logger.With("storage", "csv", "path", path),
	}
}

func (s *csvStorage) Location() string {
	return s.path
}

func (s *csvStorage) Load(ctx context.Context) ([]expense.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("No expenses file found")
			return nil, storage.ErrNoData
		}
		return nil, &storage.FileIOError{Op: "open", Path: s.path, Err: err}
	}
	defer file.Close()

	expenses, err := read(file)
	if err != nil {
		var parseErr *expense.ParseError
		if errors.As(err, &parseErr) {
			return nil, err
		}
		return nil, &storage.FileIOError{Op: "read", Path: s.path, Err: err}
	}

	s.logger.Debug("Expenses loaded", "count", len(expenses))

	return expenses, nil
}

func read(r io.Reader) ([]expense.Expense, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	columns, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}

	for _, name := range header {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing %q column in header", name)
		}
	}

	expenses := []expense.Expense{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		field := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		date, category, description := field(dateColumn), field(categoryColumn), field(descriptionColumn)

		rawAmount := field(amountColumn)
		if rawAmount == "" {
			expenses = append(expenses, expense.NewWithoutAmount(date, category, description))
			continue
		}

		amount, err := expense.ParseAmount("amount", rawAmount)
		if err != nil {
			var parseErr *expense.ParseError
			if errors.As(err, &parseErr) {
				line, _ := reader.FieldPos(0)
				parseErr.Line = line
			}
			return nil, err
		}

		expenses = append(expenses, expense.New(date, category, amount, description))
	}

	return expenses, nil
}

// Save overwrites the file with a header row followed by one row per expense.
func (s *csvStorage) Save(ctx context.Context, expenses []expense.Expense) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Create(s.path)
	if err != nil {
		return &storage.FileIOError{Op: "create", Path: s.path, Err: err}
	}

	err = write(file, expenses)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return &storage.FileIOError{Op: "write", Path: s.path, Err: err}
	}

	s.logger.Debug("Expenses saved", "count", len(expenses))

	return nil
}

func write(w io.Writer, expenses []expense.Expense) error {
	writer := csv.NewWriter(w)

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, header)

	for _, ex := range expenses {
		records = append(records, toRecord(ex))
	}

	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

func toRecord(ex expense.Expense) []string {
	amount := ""
	if ex.HasAmount() {
		amount = strconv.FormatFloat(ex.Amount, 'f', -1, 64)
	}

	return []string{ex.Date, ex.Category, amount, ex.Description}
}
