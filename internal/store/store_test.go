package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtplan/debt-planner/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBudgetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	budgets := []domain.MonthlyBudget{
		{
			Month:            9,
			Year:             2025,
			Income:           decimal.NewFromInt(5000),
			AdditionalIncome: decimal.NewFromInt(200),
			Expenses: map[string]decimal.Decimal{
				"housing": decimal.NewFromInt(1500),
				"food":    decimal.NewFromInt(600),
			},
			SavingsItems: []domain.NamedAmount{
				{Name: "emergency_fund", Amount: decimal.NewFromInt(300)},
			},
		},
		{
			Month:  10,
			Year:   2025,
			Income: decimal.NewFromFloat(5200.50),
		},
	}
	require.NoError(t, s.SaveBudgets(budgets))

	loaded, err := s.LoadBudgets()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, 9, loaded[0].Month)
	assert.True(t, loaded[0].Income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, loaded[0].Expenses["housing"].Equal(decimal.NewFromInt(1500)))
	require.Len(t, loaded[0].SavingsItems, 1)
	assert.Equal(t, "emergency_fund", loaded[0].SavingsItems[0].Name)
	assert.True(t, loaded[1].Income.Equal(decimal.NewFromFloat(5200.50)))
}

func TestBudgetUpsert(t *testing.T) {
	s := openTestStore(t)

	first := []domain.MonthlyBudget{{Month: 9, Year: 2025, Income: decimal.NewFromInt(5000)}}
	require.NoError(t, s.SaveBudgets(first))

	// Saving the same (year, month) again replaces the row.
	second := []domain.MonthlyBudget{{Month: 9, Year: 2025, Income: decimal.NewFromInt(5500)}}
	require.NoError(t, s.SaveBudgets(second))

	loaded, err := s.LoadBudgets()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].Income.Equal(decimal.NewFromInt(5500)))
}

func TestBudgetsOrderedByCalendar(t *testing.T) {
	s := openTestStore(t)

	budgets := []domain.MonthlyBudget{
		{Month: 1, Year: 2026, Income: decimal.NewFromInt(1)},
		{Month: 11, Year: 2025, Income: decimal.NewFromInt(2)},
		{Month: 12, Year: 2025, Income: decimal.NewFromInt(3)},
	}
	require.NoError(t, s.SaveBudgets(budgets))

	loaded, err := s.LoadBudgets()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, 11, loaded[0].Month)
	assert.Equal(t, 12, loaded[1].Month)
	assert.Equal(t, 2026, loaded[2].Year)
}

func TestDebtRoundTrip(t *testing.T) {
	s := openTestStore(t)

	payoff := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	debts := []domain.Debt{
		{
			Name:              "Visa",
			Balance:           decimal.NewFromFloat(1200.50),
			AnnualRatePercent: decimal.NewFromFloat(19.99),
			MinimumPayment:    decimal.NewFromInt(35),
			DebtType:          "credit_card",
			PayoffDate:        &payoff,
		},
		{
			Name:           "Car",
			Balance:        decimal.NewFromInt(8000),
			MinimumPayment: decimal.NewFromInt(250),
		},
	}
	require.NoError(t, s.SaveDebts(debts))

	loaded, err := s.LoadDebts()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Ordered by name.
	assert.Equal(t, "Car", loaded[0].Name)
	assert.Nil(t, loaded[0].PayoffDate)

	assert.Equal(t, "Visa", loaded[1].Name)
	assert.True(t, loaded[1].Balance.Equal(decimal.NewFromFloat(1200.50)))
	assert.True(t, loaded[1].AnnualRatePercent.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, "credit_card", loaded[1].DebtType)
	require.NotNil(t, loaded[1].PayoffDate)
	assert.True(t, payoff.Equal(*loaded[1].PayoffDate))
}

func TestSaveDebtsReplacesSnapshot(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveDebts([]domain.Debt{
		{Name: "Visa", Balance: decimal.NewFromInt(1200)},
		{Name: "Car", Balance: decimal.NewFromInt(8000)},
	}))
	require.NoError(t, s.SaveDebts([]domain.Debt{
		{Name: "Visa", Balance: decimal.NewFromInt(900)},
	}))

	loaded, err := s.LoadDebts()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].Balance.Equal(decimal.NewFromInt(900)))
}

func TestLockRoundTrip(t *testing.T) {
	s := openTestStore(t)

	locks := domain.NewLockSet()
	locks.Lock(14, "Housing")
	locks.Lock(15, "Food")
	require.NoError(t, s.SaveLocks(locks))

	loaded, err := s.LoadLocks()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.True(t, loaded.Locked(14, "Housing"))
	assert.True(t, loaded.Locked(15, "Food"))
	assert.False(t, loaded.Locked(14, "Food"))

	// Saving replaces the stored set wholesale.
	trimmed := domain.NewLockSet()
	trimmed.Lock(15, "Food")
	require.NoError(t, s.SaveLocks(trimmed))

	loaded, err = s.LoadLocks()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.False(t, loaded.Locked(14, "Housing"))
}

func TestEmptyStore(t *testing.T) {
	s := openTestStore(t)

	budgets, err := s.LoadBudgets()
	require.NoError(t, err)
	assert.Empty(t, budgets)

	debts, err := s.LoadDebts()
	require.NoError(t, err)
	assert.Empty(t, debts)

	locks, err := s.LoadLocks()
	require.NoError(t, err)
	assert.Empty(t, locks)
}
