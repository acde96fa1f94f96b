package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/debtplan/debt-planner/internal/domain"
)

// ConsoleFormatter renders the budget grid and payoff plan as plain text for
// terminal display.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DEBT PAYOFF PLAN")
	fmt.Fprintln(&buf, "================================")

	for _, a := range report.Assumptions {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	fmt.Fprintln(&buf)

	c.writeGrid(&buf, report)
	if !report.GridOnly {
		c.writePlan(&buf, report)
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeGrid(buf *bytes.Buffer, report *domain.PlanReport) {
	fmt.Fprintln(buf, "BUDGET GRID")
	fmt.Fprintf(buf, "%-22s", "Category")
	for _, m := range report.Months {
		label := m.Label()
		if m.Type == domain.MonthCurrent {
			label += "*"
		}
		fmt.Fprintf(buf, "%14s", label)
	}
	fmt.Fprintln(buf)

	for _, row := range report.Grid.Rows {
		fmt.Fprintf(buf, "%-22s", row.Category)
		for _, m := range report.Months {
			fmt.Fprintf(buf, "%14s", FormatCurrency(row.Values[m.Index]))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf, "(* marks the current month)")
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writePlan(buf *bytes.Buffer, report *domain.PlanReport) {
	if report.Plan == nil {
		fmt.Fprintln(buf, "No payoff plan: no active debts or no net savings for the current month.")
		return
	}

	fmt.Fprintf(buf, "PAYOFF PLAN (%s)\n", report.Plan.Strategy)
	fmt.Fprintf(buf, "%-10s%14s%14s%14s%14s\n", "Month", "NetSavings", "Paid", "Interest", "Remaining")
	for _, pm := range report.Plan.Months {
		month := report.Months[pm.MonthIndex]
		fmt.Fprintf(buf, "%-10s%14s%14s%14s%14s\n",
			month.Label(),
			FormatCurrency(pm.NetSavings),
			FormatCurrency(pm.TotalPaid),
			FormatCurrency(pm.TotalInterest),
			FormatCurrency(pm.TotalRemaining()),
		)
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "Total interest: %s\n", FormatCurrency(report.Plan.TotalInterest))
	if report.Plan.DebtFreeIndex >= 0 {
		fmt.Fprintf(buf, "Debt free: %s\n", report.Months[report.Plan.DebtFreeIndex].Label())
	} else {
		fmt.Fprintln(buf, "Debt free: not within the planning horizon")
	}

	if len(report.Plan.Months) > 0 {
		rates := make(map[string]decimal.Decimal, len(report.Debts))
		for _, d := range report.Debts {
			rates[d.Name] = d.AnnualRatePercent
		}

		last := report.Plan.Months[len(report.Plan.Months)-1]
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "ENDING BALANCES")
		for _, d := range last.PerDebt {
			fmt.Fprintf(buf, "  %-24s%10s%14s\n", d.Name, FormatPercentage(rates[d.Name]), FormatCurrency(d.EndingBalance))
		}
	}
}
