package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/debtplan/debt-planner/internal/domain"
)

// PropagateFromCurrentMonth fans an edited current-month value out across
// the timeline for one category: into every future month's cell that is not
// locked, and into every historical month's cell unconditionally (history
// mirrors today's budget). The fan-out is immediate and all-at-once, per
// category. Calculated rows are never propagated.
func PropagateFromCurrentMonth(grid domain.Grid, locks domain.LockSet, category string, value decimal.Decimal) domain.Grid {
	row := grid.Row(category)
	if row == nil || row.Kind == domain.RowCalculated {
		return grid
	}
	currentIdx := domain.CurrentIndex(grid.Months)
	if currentIdx < 0 {
		return grid
	}

	amount := coerceAmount(value)
	out := grid.Clone()
	outRow := out.Row(category)
	outRow.Values[currentIdx] = amount
	for _, m := range out.Months {
		switch m.Type {
		case domain.MonthHistorical:
			outRow.Values[m.Index] = amount
		case domain.MonthFuture:
			if locks.Locked(m.Index, category) {
				continue
			}
			outRow.Values[m.Index] = amount
		}
	}
	return RecalculateNetSavings(out)
}
