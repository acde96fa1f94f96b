package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/debtplan/debt-planner/internal/buildinfo"
	"github.com/debtplan/debt-planner/internal/calculation"
)

type rootOptions struct {
	configPath string
	dbPath     string
	now        string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "debtplan",
		Short:   "Budget-driven debt payoff planning",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "plan.yaml", "plan configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", defaultDBPath(), "snapshot database path")
	rootCmd.PersistentFlags().StringVar(&opts.now, "now", "", "anchor month as YYYY-MM (defaults to the wall clock)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newPlanCommand(opts))
	rootCmd.AddCommand(newGridCommand(opts))
	rootCmd.AddCommand(newCompareCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newEditCommand(opts))

	return rootCmd
}

// anchorTime resolves the --now flag, falling back to the wall clock.
func (o *rootOptions) anchorTime() (time.Time, error) {
	if o.now == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01", o.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now value %q (want YYYY-MM): %w", o.now, err)
	}
	return t, nil
}

func (o *rootOptions) logger() calculation.Logger {
	return calculation.WriterLogger{W: os.Stderr, Verbose: o.verbose}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "debtplan.db"
	}
	return filepath.Join(home, ".debtplan", "snapshot.db")
}
