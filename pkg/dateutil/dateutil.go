package dateutil

import (
	"fmt"
	"time"
)

// AddMonths advances a (month, year) pair by n calendar months. n may be
// negative. Month values are 1-12.
func AddMonths(month, year, n int) (int, int) {
	total := year*12 + (month - 1) + n
	y := total / 12
	m := total%12 + 1
	if m <= 0 {
		m += 12
		y--
	}
	return m, y
}

// MonthsBetween returns the number of calendar months from (fromMonth,
// fromYear) to (toMonth, toYear). Positive when "to" is later.
func MonthsBetween(fromMonth, fromYear, toMonth, toYear int) int {
	return (toYear*12 + toMonth) - (fromYear*12 + fromMonth)
}

// Before reports whether (aMonth, aYear) is strictly earlier than
// (bMonth, bYear) in calendar order.
func Before(aMonth, aYear, bMonth, bYear int) bool {
	if aYear != bYear {
		return aYear < bYear
	}
	return aMonth < bMonth
}

// MonthKey renders a (month, year) pair as a sortable "YYYY-MM" key.
func MonthKey(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthLabel renders a (month, year) pair for display, e.g. "Mar 2026".
func MonthLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String()[:3], year)
}

// FirstOfMonth returns midnight UTC on the first day of the given month.
func FirstOfMonth(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(month, year int) int {
	return FirstOfMonth(month, year).AddDate(0, 1, -1).Day()
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
