package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debtplan/debt-planner/internal/calculation"
	"github.com/debtplan/debt-planner/internal/config"
	"github.com/debtplan/debt-planner/internal/domain"
	"github.com/debtplan/debt-planner/internal/output"
	"github.com/debtplan/debt-planner/internal/store"
)

func newPlanCommand(opts *rootOptions) *cobra.Command {
	var (
		format    string
		strategy  string
		fromStore bool
		writeFile bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the payoff simulation and render the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, locks, err := loadInputs(opts, fromStore)
			if err != nil {
				return err
			}
			if strategy != "" {
				cfg.Strategy = strategy
				if _, err := cfg.PayoffStrategy(); err != nil {
					return err
				}
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

			if writeFile {
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("unsupported output format %q", format)
				}
				filename, err := output.WriteFormatted(f, report, fileExt(f.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filename)
				return nil
			}
			return output.Render(format, report, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, detailed-csv, json)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "override the configured payoff strategy")
	cmd.Flags().BoolVar(&fromStore, "from-store", false, "load budgets, debts, and locks from the snapshot database")
	cmd.Flags().BoolVarP(&writeFile, "write", "w", false, "write output to a timestamped file instead of stdout")
	return cmd
}

// loadInputs parses the plan configuration and, when requested, replaces its
// budget/debt lists and lock set with the snapshot store's contents.
func loadInputs(opts *rootOptions, fromStore bool) (*domain.PlanConfig, domain.LockSet, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	locks := domain.NewLockSet()
	if fromStore {
		s, err := store.Open(opts.dbPath)
		if err != nil {
			return nil, nil, err
		}
		defer func() { _ = s.Close() }()

		if cfg.Budgets, err = s.LoadBudgets(); err != nil {
			return nil, nil, fmt.Errorf("loading budgets from store: %w", err)
		}
		if cfg.Debts, err = s.LoadDebts(); err != nil {
			return nil, nil, fmt.Errorf("loading debts from store: %w", err)
		}
		if locks, err = s.LoadLocks(); err != nil {
			return nil, nil, fmt.Errorf("loading locks from store: %w", err)
		}
	}
	return cfg, locks, nil
}

// reportFromParts assembles a report around an already-derived grid, used by
// commands that modify the grid outside the engine's RunPlan path.
func reportFromParts(months []domain.Month, grid domain.Grid, plan *domain.PayoffPlan, cfg *domain.PlanConfig) *domain.PlanReport {
	return &domain.PlanReport{
		Months: months,
		Grid:   grid,
		Plan:   plan,
		Debts:  cfg.Debts,
	}
}

func fileExt(formatterName string) string {
	switch formatterName {
	case "console":
		return "txt"
	case "csv", "detailed-csv":
		return "csv"
	default:
		return formatterName
	}
}
