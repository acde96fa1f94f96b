package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/debtplan/debt-planner/internal/calculation"
	"github.com/debtplan/debt-planner/internal/output"
	"github.com/debtplan/debt-planner/internal/store"
)

func newEditCommand(opts *rootOptions) *cobra.Command {
	var (
		category   string
		monthIndex int
		value      string
		fromStore  bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one budget cell, re-run the simulation, and show the result",
		Long: `Edit applies the full edit chain for a single grid cell: the cell is
written, current-month edits propagate across the timeline, Net Savings is
recomputed, the payoff simulation re-runs, and the Remaining Debt row is
refreshed. Future-month edits are locked against later propagation; the
updated lock set is persisted to the snapshot database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(value)
			if err != nil {
				// Non-numeric input is treated as zero, per grid cell policy.
				amount = decimal.Zero
			}

			cfg, locks, err := loadInputs(opts, fromStore)
			if err != nil {
				return err
			}
			strategy, err := cfg.PayoffStrategy()
			if err != nil {
				return err
			}
			now, err := opts.anchorTime()
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.SetLogger(opts.logger())

			s, err := store.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			// Stored locks are merged in even when the session did not load
			// them, so persisting the updated set never erases earlier ones.
			stored, err := s.LoadLocks()
			if err != nil {
				return fmt.Errorf("loading locks: %w", err)
			}
			for ref := range stored {
				locks.Lock(ref.MonthIndex, ref.Category)
			}

			months := calculation.GenerateMonths(now, cfg.HistoricalMonths, cfg.FutureMonths)
			grid := calculation.BuildGridFromBudgets(months, cfg.Budgets, locks)

			grid, plan, err := engine.ApplyCellEdit(grid, locks, category, monthIndex, amount, cfg.Debts, strategy)
			if err != nil {
				return err
			}

			if err := s.SaveLocks(locks); err != nil {
				return fmt.Errorf("saving locks: %w", err)
			}

			report := reportFromParts(months, grid, plan, cfg)
			return output.Render(format, report, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "grid row category to edit")
	cmd.Flags().IntVar(&monthIndex, "month-index", -1, "timeline index of the month to edit")
	cmd.Flags().StringVar(&value, "value", "0", "new cell amount")
	cmd.Flags().BoolVar(&fromStore, "from-store", false, "load budgets, debts, and locks from the snapshot database")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, detailed-csv, json)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("month-index")
	return cmd
}
