package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debtplan/debt-planner/internal/calculation"
	"github.com/debtplan/debt-planner/internal/domain"
	"github.com/debtplan/debt-planner/internal/output"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var fromStore bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare snowball and avalanche over the same inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, locks, err := loadInputs(opts, fromStore)
			if err != nil {
				return err
			}
			now, err := opts.anchorTime()
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.SetLogger(opts.logger())

			months := calculation.GenerateMonths(now, cfg.HistoricalMonths, cfg.FutureMonths)
			grid := calculation.BuildGridFromBudgets(months, cfg.Budgets, locks)
			comparison := engine.CompareStrategies(grid.NetSavingsByMonth(), cfg.Debts, months)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s%16s%16s\n", "Strategy", "TotalInterest", "DebtFree")
			for _, oc := range []domain.StrategyOutcome{comparison.Snowball, comparison.Avalanche} {
				debtFree := "beyond horizon"
				if oc.DebtFreeIndex >= 0 {
					debtFree = months[oc.DebtFreeIndex].Label()
				}
				fmt.Fprintf(w, "%-12s%16s%16s\n", oc.Strategy, output.FormatCurrency(oc.TotalInterest), debtFree)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStore, "from-store", false, "load budgets, debts, and locks from the snapshot database")
	return cmd
}
