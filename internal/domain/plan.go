package domain

import (
	"github.com/shopspring/decimal"
)

// DebtStanding is the simulator's working state for one debt: the snapshot
// terms plus the running balance being amortized.
type DebtStanding struct {
	Name              string          `json:"name"`
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"interest_rate"`
	MinimumPayment    decimal.Decimal `json:"minimum_payment"`
}

// DebtMonth is one debt's reported figures for one plan month.
type DebtMonth struct {
	Name            string          `json:"name"`
	EndingBalance   decimal.Decimal `json:"ending_balance"`
	InterestAccrued decimal.Decimal `json:"interest_accrued"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
}

// PayoffPlanMonth is the simulator output for one month, from the current
// month onward.
type PayoffPlanMonth struct {
	MonthIndex    int             `json:"month_index"`
	NetSavings    decimal.Decimal `json:"net_savings"`
	PerDebt       []DebtMonth     `json:"per_debt"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

// TotalRemaining returns the sum of all ending balances for the month.
func (pm PayoffPlanMonth) TotalRemaining() decimal.Decimal {
	total := decimal.Zero
	for _, d := range pm.PerDebt {
		total = total.Add(d.EndingBalance)
	}
	return total
}

// PayoffPlan is the full simulation result. It is recomputed whole on every
// trigger and replaced, never mutated in place.
type PayoffPlan struct {
	Strategy      Strategy          `json:"strategy"`
	Months        []PayoffPlanMonth `json:"months"`
	TotalInterest decimal.Decimal   `json:"total_interest"`
	// DebtFreeIndex is the timeline index of the first month in which every
	// debt's balance is zero, or -1 when payoff is not reached within the
	// simulated horizon.
	DebtFreeIndex int `json:"debt_free_index"`
}

// PlanReport bundles everything the output formatters render: the timeline,
// the derived grid, and the simulated plan.
type PlanReport struct {
	Months []Month     `json:"months"`
	Grid   Grid        `json:"grid"`
	Plan   *PayoffPlan `json:"plan,omitempty"`
	// GridOnly marks a report whose plan detail was deliberately left out.
	// Formatters skip the plan section instead of reporting that nothing
	// was simulated.
	GridOnly    bool     `json:"grid_only,omitempty"`
	Debts       []Debt   `json:"debts"`
	Assumptions []string `json:"assumptions"`
}

// StrategyOutcome summarizes one strategy's run for comparison.
type StrategyOutcome struct {
	Strategy      Strategy        `json:"strategy"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	DebtFreeIndex int             `json:"debt_free_index"`
}

// StrategyComparison holds both strategies' outcomes over the same inputs.
type StrategyComparison struct {
	Snowball  StrategyOutcome `json:"snowball"`
	Avalanche StrategyOutcome `json:"avalanche"`
}
