package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/debtplan/debt-planner/internal/domain"
)

// CSVPlanExporter emits one row per plan month with the aggregate figures.
type CSVPlanExporter struct{}

func (e CSVPlanExporter) Name() string { return "csv" }

func (e CSVPlanExporter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"month_index", "month", "type", "net_savings", "total_paid", "total_interest", "total_remaining"}); err != nil {
		return nil, err
	}
	if report.Plan != nil {
		for _, pm := range report.Plan.Months {
			month := report.Months[pm.MonthIndex]
			record := []string{
				strconv.Itoa(pm.MonthIndex),
				month.Key(),
				string(month.Type),
				pm.NetSavings.StringFixed(2),
				pm.TotalPaid.StringFixed(2),
				pm.TotalInterest.StringFixed(2),
				pm.TotalRemaining().StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDebtExporter emits one row per (plan month, debt) with the per-debt
// reported figures.
type CSVDebtExporter struct{}

func (e CSVDebtExporter) Name() string { return "detailed-csv" }

func (e CSVDebtExporter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"month_index", "month", "debt", "ending_balance", "interest_accrued", "amount_paid"}); err != nil {
		return nil, err
	}
	if report.Plan != nil {
		for _, pm := range report.Plan.Months {
			month := report.Months[pm.MonthIndex]
			for _, d := range pm.PerDebt {
				record := []string{
					strconv.Itoa(pm.MonthIndex),
					month.Key(),
					d.Name,
					d.EndingBalance.StringFixed(2),
					d.InterestAccrued.StringFixed(2),
					d.AmountPaid.StringFixed(2),
				}
				if err := w.Write(record); err != nil {
					return nil, err
				}
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
