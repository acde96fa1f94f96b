package calculation

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/debtplan/debt-planner/internal/domain"
	"github.com/debtplan/debt-planner/pkg/dateutil"
)

// BuildGridFromBudgets derives the category-by-month grid from the persisted
// monthly budgets. Cells a persisted budget explicitly defines take its
// values; every other cell is filled by inheritance from the current month.
// Historical months always mirror the current month, even where their own
// persisted record differs: the shown history window reflects today's
// budget. Future months inherit per cell, only where the month's persisted
// record (if any) defines no value for the category and the cell is not
// locked. The returned grid includes the calculated Net Savings and
// Remaining Debt rows, with Net Savings already computed.
func BuildGridFromBudgets(months []domain.Month, budgets []domain.MonthlyBudget, locks domain.LockSet) domain.Grid {
	byKey := make(map[string]domain.MonthlyBudget, len(budgets))
	for _, b := range budgets {
		byKey[dateutil.MonthKey(b.Month, b.Year)] = b
	}

	grid := domain.Grid{
		Months: append([]domain.Month(nil), months...),
		Rows:   buildRowSkeleton(months, budgets),
	}

	currentIdx := domain.CurrentIndex(months)

	// First pass: populate months that have a persisted budget.
	for _, m := range months {
		b, ok := byKey[dateutil.MonthKey(m.Month, m.Year)]
		if !ok {
			continue
		}
		for i := range grid.Rows {
			row := &grid.Rows[i]
			if row.Kind == domain.RowCalculated {
				continue
			}
			row.Values[m.Index] = coerceAmount(budgetValue(b, row.Category))
		}
	}

	// Second pass: inheritance fill from the current month, per cell. A
	// future month's persisted budget shields only the categories it
	// explicitly defines; the rest of that month still inherits.
	if currentIdx >= 0 {
		defined := make(map[string]map[string]struct{}, len(byKey))
		for key, b := range byKey {
			defined[key] = definedCategories(b)
		}
		for i := range grid.Rows {
			row := &grid.Rows[i]
			if row.Kind == domain.RowCalculated {
				continue
			}
			currentValue := row.Values[currentIdx]
			for _, m := range months {
				switch m.Type {
				case domain.MonthHistorical:
					row.Values[m.Index] = currentValue
				case domain.MonthFuture:
					if cats, ok := defined[dateutil.MonthKey(m.Month, m.Year)]; ok {
						if _, explicit := cats[row.Category]; explicit {
							continue
						}
					}
					if locks.Locked(m.Index, row.Category) {
						continue
					}
					row.Values[m.Index] = currentValue
				}
			}
		}
	}

	return RecalculateNetSavings(grid)
}

// RecalculateNetSavings recomputes the Net Savings row from the leaf rows:
// income minus expenses plus savings contributions at every index, forced to
// zero for historical months. Must run after every leaf-row mutation before
// the row is consumed downstream.
func RecalculateNetSavings(grid domain.Grid) domain.Grid {
	out := grid.Clone()
	netRow := out.Row(domain.CategoryNetSavings)
	if netRow == nil {
		return out
	}

	for _, m := range out.Months {
		if m.Type == domain.MonthHistorical {
			netRow.Values[m.Index] = decimal.Zero
			continue
		}
		net := decimal.Zero
		for _, row := range out.Rows {
			v := row.Values[m.Index]
			switch row.Kind {
			case domain.RowIncome:
				net = net.Add(v)
			case domain.RowExpense:
				net = net.Sub(v)
			case domain.RowSavings:
				net = net.Add(v)
			}
		}
		netRow.Values[m.Index] = net
	}
	return out
}

// SetCell writes a single cell and recomputes Net Savings. Edits to the
// calculated rows are no-ops. Editing a future-month cell locks it first so
// later propagation will skip it. Amounts are clamped to zero when negative.
func SetCell(grid domain.Grid, locks domain.LockSet, category string, monthIndex int, value decimal.Decimal) domain.Grid {
	row := grid.Row(category)
	if row == nil || row.Kind == domain.RowCalculated {
		return grid
	}
	if monthIndex < 0 || monthIndex >= len(grid.Months) {
		return grid
	}

	if grid.Months[monthIndex].Type == domain.MonthFuture {
		locks.Lock(monthIndex, category)
	}

	out := grid.Clone()
	out.Row(category).Values[monthIndex] = coerceAmount(value)
	return RecalculateNetSavings(out)
}

// coerceAmount applies the grid's cell policy: amounts are never negative.
// Non-numeric input never reaches here; the parsing boundary maps it to zero.
func coerceAmount(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// buildRowSkeleton assembles the ordered row set for the grid: income rows,
// then the union of expense categories across all budgets, then savings
// rows, then the two calculated rows. Every row starts with a zero for every
// month index.
func buildRowSkeleton(months []domain.Month, budgets []domain.MonthlyBudget) []domain.BudgetRow {
	expenseSet := make(map[string]struct{})
	savingsSet := make(map[string]struct{})
	for _, b := range budgets {
		for key := range b.Expenses {
			expenseSet[titleCase(key)] = struct{}{}
		}
		for _, item := range b.AdditionalItems {
			expenseSet[titleCase(item.Name)] = struct{}{}
		}
		for _, item := range b.SavingsItems {
			savingsSet[titleCase(item.Name)] = struct{}{}
		}
	}

	rows := []domain.BudgetRow{
		newRow(domain.CategoryIncome, domain.RowIncome, months),
		newRow(domain.CategoryAdditionalIncome, domain.RowIncome, months),
	}
	for _, cat := range sortedKeys(expenseSet) {
		rows = append(rows, newRow(cat, domain.RowExpense, months))
	}
	for _, cat := range sortedKeys(savingsSet) {
		rows = append(rows, newRow(cat, domain.RowSavings, months))
	}
	rows = append(rows,
		newRow(domain.CategoryNetSavings, domain.RowCalculated, months),
		newRow(domain.CategoryRemainingDebt, domain.RowCalculated, months),
	)
	return rows
}

func newRow(category string, kind domain.RowKind, months []domain.Month) domain.BudgetRow {
	values := make(map[int]decimal.Decimal, len(months))
	for _, m := range months {
		values[m.Index] = decimal.Zero
	}
	return domain.BudgetRow{Category: category, Kind: kind, Values: values}
}

// definedCategories returns the grid categories a persisted budget
// explicitly sets: map keys and named items by presence, the scalar income
// fields only when nonzero (the lenient document parsing maps missing input
// to zero, so a zero scalar is indistinguishable from no data).
func definedCategories(b domain.MonthlyBudget) map[string]struct{} {
	cats := make(map[string]struct{})
	if !b.Income.IsZero() {
		cats[domain.CategoryIncome] = struct{}{}
	}
	if !b.AdditionalIncome.IsZero() {
		cats[domain.CategoryAdditionalIncome] = struct{}{}
	}
	for key := range b.Expenses {
		cats[titleCase(key)] = struct{}{}
	}
	for _, item := range b.AdditionalItems {
		cats[titleCase(item.Name)] = struct{}{}
	}
	for _, item := range b.SavingsItems {
		cats[titleCase(item.Name)] = struct{}{}
	}
	return cats
}

// budgetValue maps a row category back to its field in the persisted budget.
func budgetValue(b domain.MonthlyBudget, category string) decimal.Decimal {
	switch category {
	case domain.CategoryIncome:
		return b.Income
	case domain.CategoryAdditionalIncome:
		return b.AdditionalIncome
	}
	for key, v := range b.Expenses {
		if titleCase(key) == category {
			return v
		}
	}
	for _, item := range b.AdditionalItems {
		if titleCase(item.Name) == category {
			return item.Amount
		}
	}
	for _, item := range b.SavingsItems {
		if titleCase(item.Name) == category {
			return item.Amount
		}
	}
	return decimal.Zero
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// titleCase normalizes a backend category key ("housing", "car_payment")
// into a display category ("Housing", "Car Payment").
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
