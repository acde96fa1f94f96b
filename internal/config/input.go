package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/debtplan/debt-planner/internal/domain"
	"github.com/debtplan/debt-planner/pkg/dateutil"
)

// InputParser handles parsing of plan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan configuration from a YAML file. Budget and debt
// documents referenced by budgets_file / debts_file are resolved relative to
// the configuration file and appended to any inline lists.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.PlanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	baseDir := filepath.Dir(filename)
	if cfg.BudgetsFile != "" {
		budgets, err := LoadBudgetsFile(resolvePath(baseDir, cfg.BudgetsFile))
		if err != nil {
			return nil, fmt.Errorf("failed to load budgets: %w", err)
		}
		cfg.Budgets = append(cfg.Budgets, budgets...)
	}
	if cfg.DebtsFile != "" {
		debts, err := LoadDebtsFile(resolvePath(baseDir, cfg.DebtsFile))
		if err != nil {
			return nil, fmt.Errorf("failed to load debts: %w", err)
		}
		cfg.Debts = append(cfg.Debts, debts...)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration validates the loaded plan configuration
func (ip *InputParser) ValidateConfiguration(cfg *domain.PlanConfig) error {
	if cfg.HistoricalMonths < 0 {
		return fmt.Errorf("historical_months cannot be negative, got %d", cfg.HistoricalMonths)
	}
	if cfg.FutureMonths < 1 {
		return fmt.Errorf("future_months must be at least 1, got %d", cfg.FutureMonths)
	}
	if _, err := cfg.PayoffStrategy(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(cfg.Budgets))
	for i, b := range cfg.Budgets {
		if err := ip.validateBudget(&b); err != nil {
			return fmt.Errorf("budget %d validation failed: %w", i, err)
		}
		key := dateutil.MonthKey(b.Month, b.Year)
		if seen[key] {
			return fmt.Errorf("duplicate budget for %s", key)
		}
		seen[key] = true
	}

	for i, d := range cfg.Debts {
		if err := ip.validateDebt(&d); err != nil {
			return fmt.Errorf("debt %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateBudget validates a single persisted monthly budget
func (ip *InputParser) validateBudget(b *domain.MonthlyBudget) error {
	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", b.Month)
	}
	if b.Year < 1900 || b.Year > 3000 {
		return fmt.Errorf("year %d out of range", b.Year)
	}
	return nil
}

// validateDebt validates a single debt snapshot
func (ip *InputParser) validateDebt(d *domain.Debt) error {
	if d.Name == "" {
		return fmt.Errorf("debt name is required")
	}
	if d.Balance.IsNegative() {
		return fmt.Errorf("debt %s balance cannot be negative", d.Name)
	}
	if d.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("debt %s interest rate cannot be negative", d.Name)
	}
	if d.MinimumPayment.IsNegative() {
		return fmt.Errorf("debt %s minimum payment cannot be negative", d.Name)
	}
	return nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
