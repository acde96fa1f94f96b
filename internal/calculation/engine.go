package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtplan/debt-planner/internal/domain"
)

// Engine orchestrates the planning pipeline: timeline generation, grid
// derivation, payoff simulation, and the write-back of simulated balances
// into the grid.
type Engine struct {
	Debug  bool
	Logger Logger
}

// NewEngine creates a new planning engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunPlan executes the full pipeline for a plan configuration: generate the
// timeline anchored at now, derive the grid from the persisted budgets,
// simulate the payoff, and write the per-month remaining balance back into
// the grid. A nil plan inside the report means there was nothing to
// simulate; that is not an error.
func (e *Engine) RunPlan(ctx context.Context, cfg *domain.PlanConfig, locks domain.LockSet, now time.Time) (*domain.PlanReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	strategy, err := cfg.PayoffStrategy()
	if err != nil {
		return nil, err
	}

	months := GenerateMonths(now, cfg.HistoricalMonths, cfg.FutureMonths)
	e.Logger.Debugf("generated %d months (%d historical, current, %d future)",
		len(months), cfg.HistoricalMonths, cfg.FutureMonths)

	grid := BuildGridFromBudgets(months, cfg.Budgets, locks)

	plan := SimulatePayoff(grid.NetSavingsByMonth(), cfg.Debts, strategy, months)
	if plan == nil {
		e.Logger.Infof("nothing to simulate: no active debts or no net savings for the current month")
	} else {
		e.Logger.Debugf("simulated %d plan months, total interest %s",
			len(plan.Months), plan.TotalInterest.StringFixed(2))
	}
	grid = WriteRemainingDebt(grid, plan)

	return &domain.PlanReport{
		Months:      months,
		Grid:        grid,
		Plan:        plan,
		Debts:       cfg.Debts,
		Assumptions: e.assumptions(cfg, strategy),
	}, nil
}

// ApplyCellEdit runs the edit chain for a single cell: write the cell,
// propagate when the edit targets the current month, recompute Net Savings,
// re-run the simulation, and write the remaining-debt series back into the
// grid. The chain is sequential; on error the caller's grid is unchanged.
func (e *Engine) ApplyCellEdit(grid domain.Grid, locks domain.LockSet, category string, monthIndex int, value decimal.Decimal, debts []domain.Debt, strategy domain.Strategy) (domain.Grid, *domain.PayoffPlan, error) {
	row := grid.Row(category)
	if row == nil {
		return grid, nil, fmt.Errorf("unknown category %q", category)
	}
	if monthIndex < 0 || monthIndex >= len(grid.Months) {
		return grid, nil, fmt.Errorf("month index %d out of range [0,%d)", monthIndex, len(grid.Months))
	}
	if row.Kind == domain.RowCalculated {
		// Calculated rows are never directly editable; the edit is a no-op.
		return grid, nil, nil
	}

	out := SetCell(grid, locks, category, monthIndex, value)
	if grid.Months[monthIndex].Type == domain.MonthCurrent {
		out = PropagateFromCurrentMonth(out, locks, category, coerceAmount(value))
	}

	plan := SimulatePayoff(out.NetSavingsByMonth(), debts, strategy, out.Months)
	out = WriteRemainingDebt(out, plan)
	return out, plan, nil
}

// CompareStrategies runs both payoff strategies over the same inputs and
// reports total interest and the debt-free month for each.
func (e *Engine) CompareStrategies(netSavings map[int]decimal.Decimal, debts []domain.Debt, months []domain.Month) domain.StrategyComparison {
	return domain.StrategyComparison{
		Snowball:  strategyOutcome(netSavings, debts, domain.StrategySnowball, months),
		Avalanche: strategyOutcome(netSavings, debts, domain.StrategyAvalanche, months),
	}
}

func strategyOutcome(netSavings map[int]decimal.Decimal, debts []domain.Debt, strategy domain.Strategy, months []domain.Month) domain.StrategyOutcome {
	outcome := domain.StrategyOutcome{Strategy: strategy, DebtFreeIndex: -1}
	if plan := SimulatePayoff(netSavings, debts, strategy, months); plan != nil {
		outcome.TotalInterest = plan.TotalInterest
		outcome.DebtFreeIndex = plan.DebtFreeIndex
	}
	return outcome
}

// WriteRemainingDebt fills the grid's Remaining Debt row from the simulated
// plan. With no plan the row is zeroed, so a stale series never survives a
// reload that removed the last debt.
func WriteRemainingDebt(grid domain.Grid, plan *domain.PayoffPlan) domain.Grid {
	out := grid.Clone()
	row := out.Row(domain.CategoryRemainingDebt)
	if row == nil {
		return out
	}
	for _, m := range out.Months {
		row.Values[m.Index] = decimal.Zero
	}
	if plan == nil {
		return out
	}
	for _, pm := range plan.Months {
		row.Values[pm.MonthIndex] = pm.TotalRemaining()
	}
	return out
}

// assumptions builds the human-readable assumption list included in every
// report, mirroring the configuration that produced it.
func (e *Engine) assumptions(cfg *domain.PlanConfig, strategy domain.Strategy) []string {
	return []string{
		fmt.Sprintf("Timeline: %d historical months, the current month, and %d future months", cfg.HistoricalMonths, cfg.FutureMonths),
		fmt.Sprintf("Payoff strategy: %s", strategy),
		"Historical months mirror the current month's budget and contribute no net savings",
		"Interest accrues before payments within each simulated month",
		"Per-debt paid/interest figures are an even split of the month's totals",
	}
}
