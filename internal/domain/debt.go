package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a read-only snapshot of one debt as supplied by the backend. The
// simulator never mutates it; working balances live in the plan.
type Debt struct {
	Name              string          `yaml:"name" json:"name"`
	Balance           decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualRatePercent decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	MinimumPayment    decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
	DebtType          string          `yaml:"debt_type,omitempty" json:"debt_type,omitempty"`
	PayoffDate        *time.Time      `yaml:"payoff_date,omitempty" json:"payoff_date,omitempty"`
}
