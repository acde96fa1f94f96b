package calculation

import (
	"time"

	"github.com/debtplan/debt-planner/internal/domain"
	"github.com/debtplan/debt-planner/pkg/dateutil"
)

// GenerateMonths produces the planning timeline: historicalCount months
// before the anchor (oldest first), the anchor month marked current, then
// futureCount months after it. The anchor is the calendar month containing
// now; injecting now keeps the generator pure. Index equals position in the
// returned slice.
func GenerateMonths(now time.Time, historicalCount, futureCount int) []domain.Month {
	anchorMonth := int(now.Month())
	anchorYear := now.Year()

	months := make([]domain.Month, 0, historicalCount+1+futureCount)
	for offset := -historicalCount; offset <= futureCount; offset++ {
		m, y := dateutil.AddMonths(anchorMonth, anchorYear, offset)
		t := domain.MonthCurrent
		switch {
		case offset < 0:
			t = domain.MonthHistorical
		case offset > 0:
			t = domain.MonthFuture
		}
		months = append(months, domain.Month{
			Month: m,
			Year:  y,
			Type:  t,
			Index: len(months),
		})
	}
	return months
}
