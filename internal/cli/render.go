package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

const (
	labelWidth  = 44
	amountWidth = 16
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10)

	lineStyle = lipgloss.NewStyle().
			Width(labelWidth).
			PaddingLeft(2)

	amountStyle = lipgloss.NewStyle().
			Width(amountWidth).
			Align(lipgloss.Right)

	totalStyle = lipgloss.NewStyle().
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func row(label string, amount decimal.Decimal) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, lineStyle.Render(label), amountStyle.Render(money(amount)))
}

func totalRow(label string, amount decimal.Decimal) string {
	return totalStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(labelWidth).Render(label),
		amountStyle.Render(money(amount))))
}

func writeSection(b *strings.Builder, s domain.StatementSection) {
	b.WriteString(headerStyle.Render(s.Title))
	b.WriteString("\n")
	if len(s.Lines) == 0 {
		b.WriteString(dimStyle.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, l := range s.Lines {
		label := l.AccountName
		if l.AccountNumber != "" {
			label = l.AccountNumber + "  " + l.AccountName
		}
		b.WriteString(row(label, l.Balance))
		b.WriteString("\n")
	}
	b.WriteString(totalRow("Total "+s.Title, s.Total))
	b.WriteString("\n\n")
}

func renderIncomeStatement(is *domain.IncomeStatement) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Income Statement"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s to %s", is.StartDate.Format(dto.DateLayout), is.EndDate.Format(dto.DateLayout))))
	b.WriteString("\n\n")

	writeSection(&b, is.Revenue)
	writeSection(&b, is.ContraRevenue)
	b.WriteString(totalRow("Net Sales", is.NetSales) + "\n\n")
	writeSection(&b, is.CostOfGoodsSold)
	b.WriteString(totalRow("Gross Profit", is.GrossProfit) + "\n\n")
	writeSection(&b, is.OperatingExpenses)
	b.WriteString(totalRow("Operating Profit", is.OperatingProfit) + "\n\n")
	writeSection(&b, is.OtherIncome)
	b.WriteString(totalRow("Profit Before Tax", is.ProfitBeforeTax) + "\n\n")
	writeSection(&b, is.TaxExpense)
	b.WriteString(highlightStyle.Render(totalRow("Net Income", is.NetIncome)))
	b.WriteString("\n")
	return b.String()
}

func renderBalanceSheet(bs *domain.BalanceSheet) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Balance Sheet"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("As of " + bs.AsOfDate.Format(dto.DateLayout)))
	b.WriteString("\n\n")

	writeSection(&b, bs.CurrentAssets)
	writeSection(&b, bs.FixedAssets)
	writeSection(&b, bs.OtherAssets)
	b.WriteString(highlightStyle.Render(totalRow("Total Assets", bs.TotalAssets)) + "\n\n")

	writeSection(&b, bs.CurrentLiabilities)
	writeSection(&b, bs.LongTermLiabilities)
	b.WriteString(totalRow("Total Liabilities", bs.TotalLiabilities) + "\n\n")
	writeSection(&b, bs.Equity)
	b.WriteString(totalRow("Total Equity", bs.TotalEquity) + "\n")
	b.WriteString(highlightStyle.Render(totalRow("Total Liabilities and Equity", bs.TotalLiabilitiesEquity)))
	b.WriteString("\n\n")

	resp := dto.ToBalanceSheetResponse(bs)
	if resp.IsBalanced {
		b.WriteString(successStyle.Render("Assets equal liabilities and equity"))
	} else {
		b.WriteString(errorStyle.Render("Out of balance by " + money(bs.TotalAssets.Sub(bs.TotalLiabilitiesEquity))))
	}
	b.WriteString("\n")
	return b.String()
}

func writeActivity(b *strings.Builder, title string, a domain.CashFlowActivity) {
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for _, r := range a.Receipts {
		b.WriteString(row("Cash received from "+strings.ToLower(r.Name), r.Amount))
		b.WriteString("\n")
	}
	for _, p := range a.Payments {
		b.WriteString(row("Cash paid for "+strings.ToLower(p.Name), p.Amount.Neg()))
		b.WriteString("\n")
	}
	b.WriteString(totalRow("Net cash from "+strings.ToLower(title), a.Net))
	b.WriteString("\n\n")
}

func renderCashFlow(cf *domain.CashFlowStatement) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statement of Cash Flows"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s to %s", cf.StartDate.Format(dto.DateLayout), cf.EndDate.Format(dto.DateLayout))))
	b.WriteString("\n\n")

	writeActivity(&b, "Operating Activities", cf.Operating)
	writeActivity(&b, "Investing Activities", cf.Investing)
	writeActivity(&b, "Financing Activities", cf.Financing)

	b.WriteString(totalRow("Net change in cash", cf.NetChange) + "\n")
	b.WriteString(row("Cash at beginning of period", cf.BeginningCash) + "\n")
	b.WriteString(highlightStyle.Render(totalRow("Cash at end of period", cf.EndingCash)))
	b.WriteString("\n")
	return b.String()
}

func renderTrialBalance(tb *domain.TrialBalance) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Trial Balance"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("As of " + tb.AsOfDate.Format(dto.DateLayout)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(labelWidth+2).Render("Account"),
		amountStyle.Render("Debit"),
		amountStyle.Render("Credit"))))
	b.WriteString("\n")
	for _, r := range tb.Rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lineStyle.Render(r.AccountNumber+"  "+r.AccountName),
			amountStyle.Render(money(r.Debit)),
			amountStyle.Render(money(r.Credit))))
		b.WriteString("\n")
	}
	b.WriteString(totalStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(labelWidth+2).Render("Total"),
		amountStyle.Render(money(tb.TotalDebits)),
		amountStyle.Render(money(tb.TotalCredits)))))
	b.WriteString("\n\n")
	if tb.IsBalanced {
		b.WriteString(successStyle.Render("Debits equal credits"))
	} else {
		b.WriteString(errorStyle.Render("Debits and credits differ"))
	}
	b.WriteString("\n")
	return b.String()
}
