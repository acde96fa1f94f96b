package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debtplan/debt-planner/internal/config"
	"github.com/debtplan/debt-planner/internal/store"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var (
		budgetsFile string
		debtsFile   string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load backend budget/debt documents into the snapshot database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if budgetsFile == "" && debtsFile == "" {
				return fmt.Errorf("nothing to import: provide --budgets and/or --debts")
			}

			s, err := store.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if budgetsFile != "" {
				budgets, err := config.LoadBudgetsFile(budgetsFile)
				if err != nil {
					return err
				}
				if err := s.SaveBudgets(budgets); err != nil {
					return fmt.Errorf("saving budgets: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d budgets\n", len(budgets))
			}
			if debtsFile != "" {
				debts, err := config.LoadDebtsFile(debtsFile)
				if err != nil {
					return err
				}
				if err := s.SaveDebts(debts); err != nil {
					return fmt.Errorf("saving debts: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d debts\n", len(debts))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&budgetsFile, "budgets", "", "budgets JSON document")
	cmd.Flags().StringVar(&debtsFile, "debts", "", "debts JSON document")
	return cmd
}
