package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ExpensesPath returns a path for an expenses file inside a temporary
// directory. The file is not created.
func ExpensesPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "expenses.csv")
}

// WriteCSV writes content to a fresh expenses file and returns its path.
func WriteCSV(t *testing.T, content string) string {
	t.Helper()

	path := ExpensesPath(t)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test CSV file: %v", err)
	}

	return path
}
