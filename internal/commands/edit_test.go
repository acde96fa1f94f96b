package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtplan/debt-planner/internal/domain"
	"github.com/debtplan/debt-planner/internal/store"
)

const editTestPlan = `
historical_months: 0
future_months: 3
strategy: snowball
budgets:
  - month: 9
    year: 2025
    income: 5000
    expenses:
      housing: 1500
debts:
  - name: Visa
    balance: 1200
    interest_rate: 12
    minimum_payment: 50
`

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestEditKeepsStoredLocks(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(editTestPlan), 0o644))
	dbPath := filepath.Join(dir, "snapshot.db")

	// Seed a lock from an earlier session.
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	seeded := domain.NewLockSet()
	seeded.Lock(3, domain.CategoryIncome)
	require.NoError(t, s.SaveLocks(seeded))
	require.NoError(t, s.Close())

	// A later edit without --from-store must not erase it.
	err = runCommand(t,
		"edit",
		"--config", configPath,
		"--db", dbPath,
		"--now", "2025-09",
		"--category", domain.CategoryIncome,
		"--month-index", "2",
		"--value", "4800",
	)
	require.NoError(t, err)

	s, err = store.Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	locks, err := s.LoadLocks()
	require.NoError(t, err)
	assert.True(t, locks.Locked(3, domain.CategoryIncome), "earlier lock survives the edit")
	assert.True(t, locks.Locked(2, domain.CategoryIncome), "future-month edit locks its cell")
}

func TestEditCurrentMonthAddsNoLock(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(editTestPlan), 0o644))
	dbPath := filepath.Join(dir, "snapshot.db")

	err := runCommand(t,
		"edit",
		"--config", configPath,
		"--db", dbPath,
		"--now", "2025-09",
		"--category", "Housing",
		"--month-index", "0",
		"--value", "1300",
	)
	require.NoError(t, err)

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	locks, err := s.LoadLocks()
	require.NoError(t, err)
	assert.Empty(t, locks)
}
