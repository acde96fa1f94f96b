package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name          string
		month, year   int
		n             int
		wantMonth     int
		wantYear      int
	}{
		{name: "No movement", month: 6, year: 2025, n: 0, wantMonth: 6, wantYear: 2025},
		{name: "Forward within year", month: 3, year: 2025, n: 4, wantMonth: 7, wantYear: 2025},
		{name: "Forward across year boundary", month: 11, year: 2025, n: 3, wantMonth: 2, wantYear: 2026},
		{name: "Forward multiple years", month: 1, year: 2025, n: 25, wantMonth: 2, wantYear: 2027},
		{name: "Backward within year", month: 8, year: 2025, n: -5, wantMonth: 3, wantYear: 2025},
		{name: "Backward across year boundary", month: 2, year: 2025, n: -3, wantMonth: 11, wantYear: 2024},
		{name: "Backward exactly one year", month: 1, year: 2025, n: -12, wantMonth: 1, wantYear: 2024},
		{name: "Backward from January", month: 1, year: 2025, n: -1, wantMonth: 12, wantYear: 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, y := AddMonths(tt.month, tt.year, tt.n)
			assert.Equal(t, tt.wantMonth, m)
			assert.Equal(t, tt.wantYear, y)
		})
	}
}

func TestAddMonthsRoundTrip(t *testing.T) {
	// Stepping forward then backward by the same amount must return home.
	for n := -30; n <= 30; n++ {
		m, y := AddMonths(9, 2025, n)
		back, backYear := AddMonths(m, y, -n)
		assert.Equal(t, 9, back, "n=%d", n)
		assert.Equal(t, 2025, backYear, "n=%d", n)
	}
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(5, 2025, 5, 2025))
	assert.Equal(t, 3, MonthsBetween(11, 2025, 2, 2026))
	assert.Equal(t, -14, MonthsBetween(3, 2026, 1, 2025))
}

func TestBefore(t *testing.T) {
	assert.True(t, Before(12, 2024, 1, 2025))
	assert.True(t, Before(3, 2025, 4, 2025))
	assert.False(t, Before(4, 2025, 4, 2025))
	assert.False(t, Before(1, 2026, 12, 2025))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-03", MonthKey(3, 2025))
	assert.Equal(t, "2026-12", MonthKey(12, 2026))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan 2025", MonthLabel(1, 2025))
	assert.Equal(t, "Sep 2026", MonthLabel(9, 2026))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2, 2025))
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 31, DaysInMonth(12, 2025))
	assert.Equal(t, 30, DaysInMonth(4, 2025))
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 365, DaysInYear(2025))
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(1900))
	assert.Equal(t, 366, DaysInYear(2000))
}
