// Package store provides a SQLite-backed local snapshot of budgets, debts,
// and locked grid cells, so plans can be re-run without the original JSON
// documents at hand.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtplan/debt-planner/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed snapshot persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the snapshot database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBudgets upserts the given monthly budgets.
func (s *Store) SaveBudgets(budgets []domain.MonthlyBudget) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, b := range budgets {
		expenses, err := json.Marshal(b.Expenses)
		if err != nil {
			return err
		}
		savings, err := json.Marshal(b.SavingsItems)
		if err != nil {
			return err
		}
		additional, err := json.Marshal(b.AdditionalItems)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`INSERT OR REPLACE INTO budgets
			(month, year, income, additional_income, expenses_json, savings_json, additional_json, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			b.Month, b.Year, b.Income.String(), b.AdditionalIncome.String(),
			string(expenses), string(savings), string(additional), now,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadBudgets returns all stored monthly budgets in calendar order.
func (s *Store) LoadBudgets() ([]domain.MonthlyBudget, error) {
	rows, err := s.db.Query(`SELECT month, year, income, additional_income,
		expenses_json, savings_json, additional_json
		FROM budgets ORDER BY year, month`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var budgets []domain.MonthlyBudget
	for rows.Next() {
		var b domain.MonthlyBudget
		var income, additionalIncome, expenses, savings, additional string
		if err := rows.Scan(&b.Month, &b.Year, &income, &additionalIncome, &expenses, &savings, &additional); err != nil {
			return nil, err
		}
		if b.Income, err = decimal.NewFromString(income); err != nil {
			return nil, fmt.Errorf("budget %d-%d: bad income: %w", b.Year, b.Month, err)
		}
		if b.AdditionalIncome, err = decimal.NewFromString(additionalIncome); err != nil {
			return nil, fmt.Errorf("budget %d-%d: bad additional income: %w", b.Year, b.Month, err)
		}
		if err := json.Unmarshal([]byte(expenses), &b.Expenses); err != nil {
			return nil, fmt.Errorf("budget %d-%d: bad expenses: %w", b.Year, b.Month, err)
		}
		if err := json.Unmarshal([]byte(savings), &b.SavingsItems); err != nil {
			return nil, fmt.Errorf("budget %d-%d: bad savings items: %w", b.Year, b.Month, err)
		}
		if err := json.Unmarshal([]byte(additional), &b.AdditionalItems); err != nil {
			return nil, fmt.Errorf("budget %d-%d: bad additional items: %w", b.Year, b.Month, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// SaveDebts replaces the stored debt snapshot wholesale, matching how the
// debt list is reloaded after backend round-trips.
func (s *Store) SaveDebts(debts []domain.Debt) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM debts`); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, d := range debts {
		payoffDate := ""
		if d.PayoffDate != nil {
			payoffDate = d.PayoffDate.UTC().Format("2006-01-02")
		}
		_, err = tx.Exec(`INSERT INTO debts
			(name, balance, interest_rate, minimum_payment, debt_type, payoff_date, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.Name, d.Balance.String(), d.AnnualRatePercent.String(),
			d.MinimumPayment.String(), d.DebtType, payoffDate, now,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadDebts returns all stored debts ordered by name.
func (s *Store) LoadDebts() ([]domain.Debt, error) {
	rows, err := s.db.Query(`SELECT name, balance, interest_rate, minimum_payment,
		debt_type, payoff_date FROM debts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var debts []domain.Debt
	for rows.Next() {
		var d domain.Debt
		var balance, rate, minimum, payoffDate string
		if err := rows.Scan(&d.Name, &balance, &rate, &minimum, &d.DebtType, &payoffDate); err != nil {
			return nil, err
		}
		if d.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("debt %s: bad balance: %w", d.Name, err)
		}
		if d.AnnualRatePercent, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("debt %s: bad interest rate: %w", d.Name, err)
		}
		if d.MinimumPayment, err = decimal.NewFromString(minimum); err != nil {
			return nil, fmt.Errorf("debt %s: bad minimum payment: %w", d.Name, err)
		}
		if payoffDate != "" {
			t, err := time.Parse("2006-01-02", payoffDate)
			if err != nil {
				return nil, fmt.Errorf("debt %s: bad payoff date: %w", d.Name, err)
			}
			d.PayoffDate = &t
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// SaveLocks replaces the stored locked-cell set.
func (s *Store) SaveLocks(locks domain.LockSet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM locked_cells`); err != nil {
		return err
	}
	for ref := range locks {
		if _, err := tx.Exec(`INSERT INTO locked_cells (month_index, category) VALUES (?, ?)`,
			ref.MonthIndex, ref.Category); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadLocks returns the stored locked-cell set.
func (s *Store) LoadLocks() (domain.LockSet, error) {
	rows, err := s.db.Query(`SELECT month_index, category FROM locked_cells`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	locks := domain.NewLockSet()
	for rows.Next() {
		var idx int
		var category string
		if err := rows.Scan(&idx, &category); err != nil {
			return nil, err
		}
		locks.Lock(idx, category)
	}
	return locks, rows.Err()
}
