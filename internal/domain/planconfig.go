package domain

// PlanConfig is the top-level plan configuration parsed from the YAML input
// file: the timeline window sizes, the payoff strategy, and the budget/debt
// snapshots (inline or loaded from the referenced JSON documents).
type PlanConfig struct {
	HistoricalMonths int    `yaml:"historical_months" json:"historical_months"`
	FutureMonths     int    `yaml:"future_months" json:"future_months"`
	Strategy         string `yaml:"strategy" json:"strategy"`

	// File references, resolved relative to the config file. Either may be
	// omitted when the inline lists are supplied instead.
	BudgetsFile string `yaml:"budgets_file,omitempty" json:"budgets_file,omitempty"`
	DebtsFile   string `yaml:"debts_file,omitempty" json:"debts_file,omitempty"`

	Budgets []MonthlyBudget `yaml:"budgets,omitempty" json:"budgets,omitempty"`
	Debts   []Debt          `yaml:"debts,omitempty" json:"debts,omitempty"`
}

// PayoffStrategy returns the parsed strategy.
func (pc *PlanConfig) PayoffStrategy() (Strategy, error) {
	return ParseStrategy(pc.Strategy)
}
