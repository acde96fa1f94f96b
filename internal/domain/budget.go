package domain

import (
	"github.com/shopspring/decimal"
)

// Category names for the two derived rows. These rows are never directly
// editable; they are recomputed from the leaf rows and the payoff plan.
const (
	CategoryNetSavings    = "Net Savings"
	CategoryRemainingDebt = "Remaining Debt"
)

// Default leaf categories populated from a persisted monthly budget.
const (
	CategoryIncome           = "Income"
	CategoryAdditionalIncome = "Additional Income"
)

// RowKind classifies a budget row for the net-savings calculation.
type RowKind string

const (
	RowIncome     RowKind = "income"
	RowExpense    RowKind = "expense"
	RowSavings    RowKind = "savings"
	RowCalculated RowKind = "calculated"
)

// BudgetRow holds one category's values across all months, keyed by
// timeline index. Every index in the active timeline has a value (zero by
// default).
type BudgetRow struct {
	Category string                  `json:"category"`
	Kind     RowKind                 `json:"kind"`
	Values   map[int]decimal.Decimal `json:"values"`
}

// Clone returns a deep copy of the row.
func (r BudgetRow) Clone() BudgetRow {
	values := make(map[int]decimal.Decimal, len(r.Values))
	for idx, v := range r.Values {
		values[idx] = v
	}
	return BudgetRow{Category: r.Category, Kind: r.Kind, Values: values}
}

// Grid is the category-by-month table driving the payoff simulation. It is
// treated as an immutable value: operations take a grid and return a new one.
type Grid struct {
	Months []Month     `json:"months"`
	Rows   []BudgetRow `json:"rows"`
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	months := append([]Month(nil), g.Months...)
	rows := make([]BudgetRow, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = r.Clone()
	}
	return Grid{Months: months, Rows: rows}
}

// Row returns the row for the given category, or nil if absent.
func (g Grid) Row(category string) *BudgetRow {
	for i := range g.Rows {
		if g.Rows[i].Category == category {
			return &g.Rows[i]
		}
	}
	return nil
}

// Value returns the amount at (category, monthIndex), or zero if absent.
func (g Grid) Value(category string, monthIndex int) decimal.Decimal {
	row := g.Row(category)
	if row == nil {
		return decimal.Zero
	}
	return row.Values[monthIndex]
}

// NetSavingsByMonth extracts the Net Savings row as an index-keyed map, the
// shape consumed by the payoff simulator.
func (g Grid) NetSavingsByMonth() map[int]decimal.Decimal {
	row := g.Row(CategoryNetSavings)
	if row == nil {
		return nil
	}
	out := make(map[int]decimal.Decimal, len(row.Values))
	for idx, v := range row.Values {
		out[idx] = v
	}
	return out
}

// CellRef identifies a single grid cell by month index and category.
type CellRef struct {
	MonthIndex int    `json:"month_index"`
	Category   string `json:"category"`
}

// LockSet is the set of future-month cells the user has overridden by hand.
// Propagation from the current month must not overwrite a locked cell. The
// set is ambient session state, so it lives beside the grid rather than
// inside it and is passed explicitly into the operations that honor it.
type LockSet map[CellRef]struct{}

// NewLockSet returns an empty lock set.
func NewLockSet() LockSet {
	return make(LockSet)
}

// Lock marks a cell as user-overridden.
func (ls LockSet) Lock(monthIndex int, category string) {
	ls[CellRef{MonthIndex: monthIndex, Category: category}] = struct{}{}
}

// Locked reports whether a cell has been user-overridden.
func (ls LockSet) Locked(monthIndex int, category string) bool {
	_, ok := ls[CellRef{MonthIndex: monthIndex, Category: category}]
	return ok
}

// Clone returns a copy of the lock set.
func (ls LockSet) Clone() LockSet {
	out := make(LockSet, len(ls))
	for ref := range ls {
		out[ref] = struct{}{}
	}
	return out
}

// NamedAmount is a (name, amount) pair inside a persisted monthly budget.
type NamedAmount struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// MonthlyBudget is one persisted budget document as supplied by the backend
// snapshot: a calendar month's income, categorized expenses, and savings
// contributions.
type MonthlyBudget struct {
	Month            int                        `yaml:"month" json:"month"`
	Year             int                        `yaml:"year" json:"year"`
	Income           decimal.Decimal            `yaml:"income" json:"income"`
	AdditionalIncome decimal.Decimal            `yaml:"additional_income" json:"additional_income"`
	Expenses         map[string]decimal.Decimal `yaml:"expenses" json:"expenses"`
	SavingsItems     []NamedAmount              `yaml:"savings_items" json:"savings_items"`
	AdditionalItems  []NamedAmount              `yaml:"additional_items" json:"additional_items"`
}
