package shell

import (
	"bufio"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expensetracker/internal/budget"
	"github.com/GustavoCaso/expensetracker/internal/expense"
	"github.com/GustavoCaso/expensetracker/internal/logger"
	"github.com/GustavoCaso/expensetracker/internal/storage"
	"github.com/GustavoCaso/expensetracker/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

const title = "Personal Expense Tracker"

// errExit stops the menu loop after a successful exit.
var errExit = errors.New("exit")

type Options struct {
	Currency          string
	ThousandSeparator string
	DecimalSeparator  string
}

type option struct {
	Key    string
	Label  string
	action func(ctx context.Context) error
}

type Shell struct {
	in      *bufio.Reader
	out     io.Writer
	store   *expense.Store
	tracker *budget.Tracker
	storage storage.Storage
	logger  *logger.Logger
	opts    Options
	options []option
	tmpl    *template.Template
}

func New(in io.Reader, out io.Writer, storage storage.Storage, logger *logger.Logger, opts Options) *Shell {
	s := &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		store:   expense.NewStore(),
		tracker: budget.NewTracker(),
		storage: storage,
		logger:  logger.With("component", "shell"),
		opts:    opts,
	}

	s.options = []option{
		{Key: "1", Label: "Add Expense", action: s.addExpense},
		{Key: "2", Label: "View Expenses", action: s.viewExpenses},
		{Key: "3", Label: "Set Budget", action: s.setBudget},
		{Key: "4", Label: "Track Budget", action: s.trackBudget},
		{Key: "5", Label: "Save Expenses", action: s.saveExpenses},
		{Key: "6", Label: "Exit", action: s.exit},
	}

	templateFuncs := template.FuncMap{
		"formatMoney": s.formatMoney,
		"colorOutput": util.ColorOutput,
	}

	s.tmpl = template.Must(template.New("").Funcs(templateFuncs).ParseFS(content, "templates/*.tmpl"))

	return s
}

// Store exposes the records held by the shell.
func (s *Shell) Store() *expense.Store {
	return s.store
}

// Tracker exposes the budget held by the shell.
func (s *Shell) Tracker() *budget.Tracker {
	return s.tracker
}

// Run loads persisted expenses and serves the menu until the user exits or
// the input is closed. Closing the input behaves like choosing Exit.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.load(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.step(ctx)
		if errors.Is(err, io.EOF) {
			s.logger.Debug("Input closed, exiting")
			err = s.exit(ctx)
		}

		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) step(ctx context.Context) error {
	if err := s.render("menu.tmpl", struct {
		Title   string
		Options []option
	}{title, s.options}); err != nil {
		return err
	}

	choice, err := s.readLine("Enter your choice (1-6): ")
	if err != nil {
		return err
	}
	choice = strings.TrimSpace(choice)

	for _, o := range s.options {
		if o.Key == choice {
			s.logger.Debug("Menu option selected", "option", o.Label)
			return o.action(ctx)
		}
	}

	s.logger.Debug("Invalid menu choice", "choice", choice)
	s.println("Invalid choice. Please try again.")

	return nil
}

func (s *Shell) load(ctx context.Context) error {
	expenses, err := s.storage.Load(ctx)
	if errors.Is(err, storage.ErrNoData) {
		s.println("No saved expenses found. Starting fresh.")
		return nil
	}
	if err != nil {
		s.logger.Error("Unable to load expenses", "error", err)
		return fmt.Errorf("unable to load expenses: %w", err)
	}

	s.store.Append(expenses...)
	s.logger.Info("Expenses loaded", "count", len(expenses), "location", s.storage.Location())
	s.println(fmt.Sprintf("Expenses loaded from %s.", s.storage.Location()))

	return nil
}

func (s *Shell) addExpense(_ context.Context) error {
	date, err := s.readLine("Enter the date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	category, err := s.readLine("Enter the category (e.g., Food, Travel): ")
	if err != nil {
		return err
	}

	amount, err := s.readLine("Enter the amount spent: ")
	if err != nil {
		return err
	}

	description, err := s.readLine("Enter a brief description: ")
	if err != nil {
		return err
	}

	ex, err := s.store.Add(date, category, amount, description)
	if err != nil {
		return s.reportParseError(err)
	}

	s.logger.Info("Expense added", "date", ex.Date, "category", ex.Category, "amount", ex.Amount)
	s.println("Expense added successfully.")

	return nil
}

func (s *Shell) viewExpenses(_ context.Context) error {
	return s.render("view.tmpl", s.store.All())
}

func (s *Shell) setBudget(_ context.Context) error {
	input, err := s.readLine("Enter your monthly budget: ")
	if err != nil {
		return err
	}

	value, err := expense.ParseAmount("budget", input)
	if err != nil {
		return s.reportParseError(err)
	}

	amount := s.tracker.Set(value)
	s.logger.Info("Budget set", "amount", amount.String())
	s.println(fmt.Sprintf("Budget set to %s.", s.formatMoney(amount)))

	return nil
}

func (s *Shell) trackBudget(_ context.Context) error {
	report := s.tracker.Track(s.store.All())

	if report.Status == budget.StatusOver {
		s.logger.Warn("Budget exceeded", "budget", report.Budget.String(), "spent", report.Spent.String())
	}

	return s.render("budget.tmpl", report)
}

func (s *Shell) saveExpenses(ctx context.Context) error {
	if err := s.save(ctx); err != nil {
		var ioErr *storage.FileIOError
		if errors.As(err, &ioErr) {
			s.println(util.ColorOutput(fmt.Sprintf("Unable to save expenses: %s", ioErr.Error()), "red"))
			return nil
		}
		return err
	}

	return nil
}

func (s *Shell) exit(ctx context.Context) error {
	if err := s.save(ctx); err != nil {
		return err
	}

	s.println("Exiting the program. Goodbye!")

	return errExit
}

func (s *Shell) save(ctx context.Context) error {
	expenses := s.store.All()

	if err := s.storage.Save(ctx, expenses); err != nil {
		s.logger.Error("Unable to save expenses", "error", err)
		return err
	}

	s.logger.Info("Expenses saved", "count", len(expenses), "total", s.store.Total().String())
	s.println(fmt.Sprintf("Expenses saved to %s.", s.storage.Location()))

	return nil
}

// reportParseError tells the user about non-numeric input and keeps the
// session going. Any other error is returned as is.
func (s *Shell) reportParseError(err error) error {
	var parseErr *expense.ParseError
	if !errors.As(err, &parseErr) {
		return err
	}

	s.logger.Warn("Invalid numeric input", "field", parseErr.Field, "input", parseErr.Input)
	s.println(util.ColorOutput(fmt.Sprintf("Invalid %s %q: must be a number.", parseErr.Field, parseErr.Input), "red"))

	return nil
}

// readLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) formatMoney(value decimal.Decimal) string {
	return s.opts.Currency + util.FormatMoney(value, s.opts.ThousandSeparator, s.opts.DecimalSeparator)
}

func (s *Shell) render(name string, data any) error {
	err := s.tmpl.ExecuteTemplate(s.out, name, data)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return nil
}
