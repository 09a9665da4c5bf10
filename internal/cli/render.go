package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fernwood/pocketbook/internal/model"
	"github.com/fernwood/pocketbook/internal/report"
)

// RenderReportHeader writes the report banner with its generation timestamp.
func RenderReportHeader(w io.Writer, generated time.Time) {
	fmt.Fprintln(w, TitleStyle.Render("FINANCIAL REPORT"))
	fmt.Fprintln(w, SubtleStyle.Render("Generated: "+generated.Format("2006-01-02 15:04:05")))
}

// RenderSummary writes the monthly summary section: income, expenses, balance
// with two decimals and the savings rate with one.
func RenderSummary(w io.Writer, symbol string, asOf time.Time, summary report.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("MONTHLY SUMMARY (%s)", asOf.Format("January 2006"))))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Income:\t%s%s\n", symbol, summary.Income.StringFixed(2))
	fmt.Fprintf(tw, "Expenses:\t%s%s\n", symbol, summary.Expense.StringFixed(2))
	fmt.Fprintf(tw, "Balance:\t%s%s\n", symbol, summary.Balance.StringFixed(2))
	fmt.Fprintf(tw, "Savings:\t%s%%\n", summary.SavingsRate.StringFixed(1))
	_ = tw.Flush()
}

// RenderBudgets writes the budget status section, one line per budgeted
// category: integer spent/limit amounts, one-decimal percentage, and the
// classification colorized by severity.
func RenderBudgets(w io.Writer, symbol string, statuses []report.BudgetStatus) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("BUDGET STATUS"))

	if len(statuses) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No budgeted categories."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, bs := range statuses {
		fmt.Fprintf(tw, "%s\t%s%s/%s%s\t(%s%%)\t%s\n",
			bs.Category,
			symbol, bs.Spent.StringFixed(0),
			symbol, bs.Budget.StringFixed(0),
			bs.Percentage.StringFixed(1),
			statusStyle(bs.Status).Render(string(bs.Status)))
	}
	_ = tw.Flush()
}

// RenderSpending writes the category spending section for the lookback
// window, largest total first.
func RenderSpending(w io.Writer, symbol string, days int, spending []model.CategorySpend) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("CATEGORY SPENDING (Last %d days)", days)))

	if len(spending) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No expenses recorded in this window."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cs := range spending {
		noun := "transactions"
		if cs.Count == 1 {
			noun = "transaction"
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\n",
			cs.Category,
			symbol, cs.Total.StringFixed(2),
			SubtleStyle.Render(fmt.Sprintf("(%d %s)", cs.Count, noun)))
	}
	_ = tw.Flush()
}

// RenderCategories writes the seeded category table with kind and monthly
// budget limit; unmonitored categories show a dash instead of a zero.
func RenderCategories(w io.Writer, symbol string, categories []model.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No categories found."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		BoldStyle.Render("Name"),
		BoldStyle.Render("Kind"),
		BoldStyle.Render("Monthly budget"))
	for _, cat := range categories {
		limit := SubtleStyle.Render("-")
		if cat.Budgeted() {
			limit = symbol + cat.BudgetLimit.StringFixed(0)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", cat.Name, cat.Kind, limit)
	}
	_ = tw.Flush()
}

// statusStyle picks the color for a budget classification.
func statusStyle(status report.Status) lipgloss.Style {
	switch status {
	case report.StatusOverBudget:
		return ErrorStyle
	case report.StatusNearLimit:
		return WarningStyle
	default:
		return SuccessStyle
	}
}
