package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtplan/debt-planner/internal/domain"
)

func sampleReport() *domain.PlanReport {
	months := []domain.Month{
		{Month: 8, Year: 2025, Type: domain.MonthHistorical, Index: 0},
		{Month: 9, Year: 2025, Type: domain.MonthCurrent, Index: 1},
		{Month: 10, Year: 2025, Type: domain.MonthFuture, Index: 2},
	}
	grid := domain.Grid{
		Months: months,
		Rows: []domain.BudgetRow{
			{
				Category: domain.CategoryIncome,
				Kind:     domain.RowIncome,
				Values: map[int]decimal.Decimal{
					0: decimal.NewFromInt(5000),
					1: decimal.NewFromInt(5000),
					2: decimal.NewFromInt(5000),
				},
			},
			{
				Category: "Housing",
				Kind:     domain.RowExpense,
				Values: map[int]decimal.Decimal{
					0: decimal.NewFromInt(1500),
					1: decimal.NewFromInt(1500),
					2: decimal.NewFromInt(1500),
				},
			},
			{
				Category: domain.CategoryNetSavings,
				Kind:     domain.RowCalculated,
				Values: map[int]decimal.Decimal{
					0: decimal.Zero,
					1: decimal.NewFromInt(3500),
					2: decimal.NewFromInt(3500),
				},
			},
		},
	}
	plan := &domain.PayoffPlan{
		Strategy: domain.StrategyAvalanche,
		Months: []domain.PayoffPlanMonth{
			{
				MonthIndex: 1,
				NetSavings: decimal.NewFromInt(3500),
				PerDebt: []domain.DebtMonth{
					{Name: "Visa", EndingBalance: decimal.NewFromInt(0), InterestAccrued: decimal.NewFromInt(10), AmountPaid: decimal.NewFromInt(610)},
					{Name: "Car", EndingBalance: decimal.NewFromInt(5110), InterestAccrued: decimal.NewFromInt(40), AmountPaid: decimal.NewFromInt(2930)},
				},
				TotalPaid:     decimal.NewFromInt(3540),
				TotalInterest: decimal.NewFromInt(50),
			},
			{
				MonthIndex: 2,
				NetSavings: decimal.NewFromInt(3500),
				PerDebt: []domain.DebtMonth{
					{Name: "Visa", EndingBalance: decimal.Zero, InterestAccrued: decimal.NewFromInt(13), AmountPaid: decimal.NewFromInt(2584)},
					{Name: "Car", EndingBalance: decimal.Zero, InterestAccrued: decimal.NewFromInt(13), AmountPaid: decimal.NewFromInt(2584)},
				},
				TotalPaid:     decimal.NewFromInt(5168),
				TotalInterest: decimal.NewFromInt(26),
			},
		},
		TotalInterest: decimal.NewFromInt(76),
		DebtFreeIndex: 2,
	}
	return &domain.PlanReport{
		Months: months,
		Grid:   grid,
		Plan:   plan,
		Debts: []domain.Debt{
			{Name: "Visa", Balance: decimal.NewFromInt(600), AnnualRatePercent: decimal.NewFromFloat(19.99), MinimumPayment: decimal.NewFromInt(35)},
			{Name: "Car", Balance: decimal.NewFromInt(8000), AnnualRatePercent: decimal.NewFromInt(6), MinimumPayment: decimal.NewFromInt(250)},
		},
		Assumptions: []string{"Interest accrues monthly before payments are applied"},
	}
}

func TestNormalizeFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"console", "console"},
		{"TEXT", "console"},
		{"txt", "console"},
		{" csv-summary ", "csv"},
		{"csv-debts", "detailed-csv"},
		{"csv-detailed", "detailed-csv"},
		{"JSON-Pretty", "json"},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeFormatName(tt.in), tt.in)
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormatterNames() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.NotNil(t, GetFormatterByName("text"), "aliases resolve")
	assert.Nil(t, GetFormatterByName("html"))
}

func TestRenderUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render("html", sampleReport(), &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "console", "error lists available formats")
}

func TestConsoleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render("console", sampleReport(), &buf))
	out := buf.String()

	assert.Contains(t, out, "DEBT PAYOFF PLAN")
	assert.Contains(t, out, "BUDGET GRID")
	assert.Contains(t, out, "Sep 2025*", "current month is marked")
	assert.Contains(t, out, "Housing")
	assert.Contains(t, out, "PAYOFF PLAN (avalanche)")
	assert.Contains(t, out, "Total interest: $76.00")
	assert.Contains(t, out, "Debt free: Oct 2025")
	assert.Contains(t, out, "ENDING BALANCES")
	assert.Contains(t, out, "19.99%", "ending balances carry each debt's rate")
	assert.Contains(t, out, "Interest accrues monthly")
}

func TestConsoleFormatterNoPlan(t *testing.T) {
	report := sampleReport()
	report.Plan = nil

	var buf bytes.Buffer
	require.NoError(t, Render("console", report, &buf))
	out := buf.String()

	assert.Contains(t, out, "BUDGET GRID")
	assert.Contains(t, out, "No payoff plan")
	assert.NotContains(t, out, "ENDING BALANCES")
}

func TestConsoleFormatterGridOnly(t *testing.T) {
	report := sampleReport()
	report.Plan = nil
	report.GridOnly = true

	var buf bytes.Buffer
	require.NoError(t, Render("console", report, &buf))
	out := buf.String()

	// A deliberately omitted plan is not the same as nothing to simulate.
	assert.Contains(t, out, "BUDGET GRID")
	assert.NotContains(t, out, "No payoff plan")
	assert.NotContains(t, out, "PAYOFF PLAN")
}

func TestCSVPlanExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render("csv", sampleReport(), &buf))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per plan month")

	assert.Equal(t, []string{"month_index", "month", "type", "net_savings", "total_paid", "total_interest", "total_remaining"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "2025-09", records[1][1])
	assert.Equal(t, "current", records[1][2])
	assert.Equal(t, "3540.00", records[1][4])
	assert.Equal(t, "0.00", records[2][6], "last month fully paid off")
}

func TestCSVDebtExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render("detailed-csv", sampleReport(), &buf))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5, "header plus one row per (month, debt)")

	assert.Equal(t, "Visa", records[1][2])
	assert.Equal(t, "Car", records[2][2])
	assert.Equal(t, "5110.00", records[2][3])
}

func TestCSVExportersNilPlan(t *testing.T) {
	report := sampleReport()
	report.Plan = nil

	for _, name := range []string{"csv", "detailed-csv"} {
		var buf bytes.Buffer
		require.NoError(t, Render(name, report, &buf))
		records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 1, "%s emits only the header", name)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render("json", sampleReport(), &buf))

	var decoded domain.PlanReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Months, 3)
	require.NotNil(t, decoded.Plan)
	assert.Equal(t, 2, decoded.Plan.DebtFreeIndex)
	assert.True(t, decoded.Plan.TotalInterest.Equal(decimal.NewFromInt(76)))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.56", FormatCurrency(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "$1234.57", FormatCurrency(decimal.NewFromFloat(1234.565)), "rounds to cents")
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$-50.00", FormatCurrency(decimal.NewFromInt(-50)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "19.99%", FormatPercentage(decimal.NewFromFloat(19.99)))
	assert.Equal(t, "6.00%", FormatPercentage(decimal.NewFromInt(6)))
}
