package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/debtplan/debt-planner/internal/domain"
	money "github.com/debtplan/debt-planner/pkg/decimal"
)

// balanceEpsilon is the threshold below which a simulated balance is
// reported as exactly zero. The clamp applies when recording the plan, not
// inside the per-debt balance update, so the numeric trajectory of the
// amortization is unaffected.
var balanceEpsilon = decimal.New(1, -6)

// SimulatePayoff amortizes the debts month by month against the Net Savings
// series, from the current month to the end of the timeline. Within each
// month interest accrues on every remaining balance first, then the month's
// available funds cover minimum payments in strategy order, then any surplus
// rolls through the same order until funds or balances run out.
//
// Debts with no positive balance are excluded up front. A nil plan (not an
// error) is returned when there is nothing to simulate: no debts with a
// balance, no current month, or no Net Savings figure for it.
func SimulatePayoff(netSavings map[int]decimal.Decimal, debts []domain.Debt, strategy domain.Strategy, months []domain.Month) *domain.PayoffPlan {
	standings := make([]domain.DebtStanding, 0, len(debts))
	for _, d := range debts {
		if d.Balance.GreaterThan(decimal.Zero) {
			standings = append(standings, domain.DebtStanding{
				Name:              d.Name,
				Balance:           d.Balance,
				AnnualRatePercent: d.AnnualRatePercent,
				MinimumPayment:    d.MinimumPayment,
			})
		}
	}
	if len(standings) == 0 {
		return nil
	}

	currentIdx := domain.CurrentIndex(months)
	if currentIdx < 0 {
		return nil
	}
	if _, ok := netSavings[currentIdx]; !ok {
		return nil
	}

	plan := &domain.PayoffPlan{
		Strategy:      strategy,
		DebtFreeIndex: -1,
	}
	sticky := make([]bool, len(standings))

	for idx := currentIdx; idx < len(months); idx++ {
		month := domain.PayoffPlanMonth{
			MonthIndex: idx,
			NetSavings: netSavings[idx],
		}

		// Interest accrues before any payment is applied in the month.
		for i := range standings {
			if !standings[i].Balance.GreaterThan(decimal.Zero) {
				continue
			}
			interest := money.NewMoneyFromDecimal(standings[i].Balance).
				MonthlyInterest(standings[i].AnnualRatePercent).Decimal
			standings[i].Balance = standings[i].Balance.Add(interest)
			month.TotalInterest = month.TotalInterest.Add(interest)
		}

		// Negative net savings contributes no payment but never claws back
		// principal.
		available := netSavings[idx]
		if available.IsNegative() {
			available = decimal.Zero
		}

		order := paymentOrder(standings, strategy)

		// Minimum-payment pass.
		for _, i := range order {
			if !available.GreaterThan(decimal.Zero) {
				break
			}
			payment := decimal.Min(standings[i].MinimumPayment, standings[i].Balance, available)
			if !payment.GreaterThan(decimal.Zero) {
				continue
			}
			standings[i].Balance = standings[i].Balance.Sub(payment)
			available = available.Sub(payment)
			month.TotalPaid = month.TotalPaid.Add(payment)
		}

		// Surplus pass: remaining funds roll through the same order.
		for _, i := range order {
			if !available.GreaterThan(decimal.Zero) {
				break
			}
			payment := decimal.Min(available, standings[i].Balance)
			if !payment.GreaterThan(decimal.Zero) {
				continue
			}
			standings[i].Balance = standings[i].Balance.Sub(payment)
			available = available.Sub(payment)
			month.TotalPaid = month.TotalPaid.Add(payment)
		}

		month.PerDebt = recordStandings(standings, sticky, month)
		plan.TotalInterest = plan.TotalInterest.Add(month.TotalInterest)

		if plan.DebtFreeIndex < 0 && allZero(month.PerDebt) {
			plan.DebtFreeIndex = idx
		}
		plan.Months = append(plan.Months, month)
	}

	return plan
}

// paymentOrder returns indexes of the debts that still carry a balance,
// sorted by the strategy comparator. The sort is stable, so ties keep the
// provided debt order.
func paymentOrder(standings []domain.DebtStanding, strategy domain.Strategy) []int {
	order := make([]int, 0, len(standings))
	for i := range standings {
		if standings[i].Balance.GreaterThan(decimal.Zero) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return strategy.Less(standings[order[a]], standings[order[b]])
	})
	return order
}

// recordStandings snapshots each debt's post-month balance, applying the
// sticky-zero clamp, and attributes the month's totals evenly across the
// debts. The even split mirrors the product's reporting behavior: aggregate
// totals are exact, per-debt paid/interest figures are an approximation.
func recordStandings(standings []domain.DebtStanding, sticky []bool, month domain.PayoffPlanMonth) []domain.DebtMonth {
	n := decimal.NewFromInt(int64(len(standings)))
	paidShare := month.TotalPaid.Div(n)
	interestShare := month.TotalInterest.Div(n)

	perDebt := make([]domain.DebtMonth, len(standings))
	for i := range standings {
		balance := standings[i].Balance
		if sticky[i] || balance.LessThanOrEqual(balanceEpsilon) {
			sticky[i] = true
			balance = decimal.Zero
		}
		perDebt[i] = domain.DebtMonth{
			Name:            standings[i].Name,
			EndingBalance:   balance,
			InterestAccrued: interestShare,
			AmountPaid:      paidShare,
		}
	}
	return perDebt
}

func allZero(perDebt []domain.DebtMonth) bool {
	for _, d := range perDebt {
		if !d.EndingBalance.IsZero() {
			return false
		}
	}
	return true
}
