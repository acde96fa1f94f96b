package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtplan/debt-planner/internal/domain"
)

// flexAmount decodes a JSON amount leniently. Numbers and numeric strings
// parse normally; anything else is treated as zero, and negative amounts are
// clamped to zero. This is the single place where the grid's "non-numeric
// input is zero" policy is applied.
type flexAmount struct {
	decimal.Decimal
}

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	if d.IsNegative() {
		d = decimal.Zero
	}
	a.Decimal = d
	return nil
}

type rawNamedAmount struct {
	Name   string     `json:"name"`
	Amount flexAmount `json:"amount"`
}

type rawBudget struct {
	Month            int                   `json:"month"`
	Year             int                   `json:"year"`
	Income           flexAmount            `json:"income"`
	AdditionalIncome flexAmount            `json:"additional_income"`
	Expenses         map[string]flexAmount `json:"expenses"`
	SavingsItems     []rawNamedAmount      `json:"savings_items"`
	AdditionalItems  []rawNamedAmount      `json:"additional_items"`
}

type rawDebt struct {
	Name              string     `json:"name"`
	Balance           flexAmount `json:"balance"`
	InterestRate      flexAmount `json:"interest_rate"`
	MinimumPayment    flexAmount `json:"minimum_payment"`
	DebtType          string     `json:"debt_type"`
	PayoffDate        string     `json:"payoff_date"`
}

// LoadBudgetsFile reads a JSON array of persisted monthly budget documents.
// Entries with an out-of-range month or year are skipped rather than
// rejected: a malformed budget is "no data" and its month is filled
// synthetically by the grid.
func LoadBudgetsFile(filename string) ([]domain.MonthlyBudget, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ParseBudgets(data)
}

// ParseBudgets decodes budget documents from JSON.
func ParseBudgets(data []byte) ([]domain.MonthlyBudget, error) {
	var raw []rawBudget
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse budgets JSON: %w", err)
	}

	budgets := make([]domain.MonthlyBudget, 0, len(raw))
	for _, rb := range raw {
		if rb.Month < 1 || rb.Month > 12 || rb.Year < 1900 || rb.Year > 3000 {
			continue
		}
		b := domain.MonthlyBudget{
			Month:            rb.Month,
			Year:             rb.Year,
			Income:           rb.Income.Decimal,
			AdditionalIncome: rb.AdditionalIncome.Decimal,
		}
		if len(rb.Expenses) > 0 {
			b.Expenses = make(map[string]decimal.Decimal, len(rb.Expenses))
			for k, v := range rb.Expenses {
				b.Expenses[k] = v.Decimal
			}
		}
		for _, item := range rb.SavingsItems {
			b.SavingsItems = append(b.SavingsItems, domain.NamedAmount{Name: item.Name, Amount: item.Amount.Decimal})
		}
		for _, item := range rb.AdditionalItems {
			b.AdditionalItems = append(b.AdditionalItems, domain.NamedAmount{Name: item.Name, Amount: item.Amount.Decimal})
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

// LoadDebtsFile reads a JSON array of debt snapshot documents.
func LoadDebtsFile(filename string) ([]domain.Debt, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ParseDebts(data)
}

// ParseDebts decodes debt documents from JSON. The optional payoff_date
// accepts either a plain date or RFC 3339.
func ParseDebts(data []byte) ([]domain.Debt, error) {
	var raw []rawDebt
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse debts JSON: %w", err)
	}

	debts := make([]domain.Debt, 0, len(raw))
	for _, rd := range raw {
		d := domain.Debt{
			Name:              rd.Name,
			Balance:           rd.Balance.Decimal,
			AnnualRatePercent: rd.InterestRate.Decimal,
			MinimumPayment:    rd.MinimumPayment.Decimal,
			DebtType:          rd.DebtType,
		}
		if rd.PayoffDate != "" {
			t, err := parseDate(rd.PayoffDate)
			if err != nil {
				return nil, fmt.Errorf("debt %s: invalid payoff_date: %w", rd.Name, err)
			}
			d.PayoffDate = &t
		}
		debts = append(debts, d)
	}
	return debts, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
