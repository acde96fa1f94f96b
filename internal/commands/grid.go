package commands

import (
	"github.com/spf13/cobra"

	"github.com/debtplan/debt-planner/internal/calculation"
	"github.com/debtplan/debt-planner/internal/output"
)

func newGridCommand(opts *rootOptions) *cobra.Command {
	var (
		format    string
		fromStore bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render the derived budget grid without the plan detail",
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
			report, err := engine.RunPlan(cmd.Context(), cfg, locks, now)
			if err != nil {
				return err
			}

			// The Remaining Debt row keeps the simulated series; only the
			// per-month plan detail is dropped from the rendering.
			report.Plan = nil
			report.GridOnly = true
			return output.Render(format, report, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json)")
	cmd.Flags().BoolVar(&fromStore, "from-store", false, "load budgets, debts, and locks from the snapshot database")
	return cmd
}
