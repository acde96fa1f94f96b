package domain

import (
	"github.com/debtplan/debt-planner/pkg/dateutil"
)

// MonthType classifies a timeline slot relative to the anchor month.
type MonthType string

const (
	MonthHistorical MonthType = "historical"
	MonthCurrent    MonthType = "current"
	MonthFuture     MonthType = "future"
)

// Month is one slot in the generated timeline. Index is the zero-based
// position in the sequence and is the key space for all grid and plan data.
type Month struct {
	Month int       `yaml:"month" json:"month"` // 1-12
	Year  int       `yaml:"year" json:"year"`
	Type  MonthType `yaml:"type" json:"type"`
	Index int       `yaml:"index" json:"index"`
}

// Key returns the sortable "YYYY-MM" key for this month.
func (m Month) Key() string {
	return dateutil.MonthKey(m.Month, m.Year)
}

// Label returns the display label for this month, e.g. "Mar 2026".
func (m Month) Label() string {
	return dateutil.MonthLabel(m.Month, m.Year)
}

// CurrentIndex returns the index of the month marked current, or -1 if the
// timeline has none.
func CurrentIndex(months []Month) int {
	for _, m := range months {
		if m.Type == MonthCurrent {
			return m.Index
		}
	}
	return -1
}
