package domain

import (
	"encoding/json"
	"fmt"
)

// Strategy selects the payment ordering for the payoff simulation.
type Strategy int

const (
	// StrategySnowball pays debts ordered by smallest balance first.
	StrategySnowball Strategy = iota
	// StrategyAvalanche pays debts ordered by highest annual rate first.
	StrategyAvalanche
)

// ParseStrategy converts the wire/config spelling into a Strategy. Unknown
// values are an error rather than silently falling through to a default
// ordering.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "snowball":
		return StrategySnowball, nil
	case "avalanche":
		return StrategyAvalanche, nil
	default:
		return 0, fmt.Errorf("unknown payoff strategy %q (want snowball or avalanche)", s)
	}
}

// String returns the canonical spelling of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategySnowball:
		return "snowball"
	case StrategyAvalanche:
		return "avalanche"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// MarshalJSON encodes the strategy by its canonical spelling.
func (s Strategy) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the canonical spelling back into a Strategy.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Less is the strategy's sort comparator over working balances and rates.
// Snowball orders by ascending balance, avalanche by descending annual rate.
// Neither breaks ties, so a stable sort preserves the provided order.
func (s Strategy) Less(a, b DebtStanding) bool {
	if s == StrategyAvalanche {
		return a.AnnualRatePercent.GreaterThan(b.AnnualRatePercent)
	}
	return a.Balance.LessThan(b.Balance)
}
