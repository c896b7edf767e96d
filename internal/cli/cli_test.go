package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/utils"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed", "report", "keys", "token"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestTokenCommandIssuesVerifiableJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret-that-is-long-enough")
	t.Setenv("JWT_ISSUER", "pos-ledger-cli-test")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"token", "--subject", "operator-7", "--expiry", "5m"})
	require.NoError(t, root.Execute())

	claims, err := utils.ParseOperatorToken(strings.TrimSpace(out.String()), "cli-test-secret-that-is-long-enough", "pos-ledger-cli-test")
	require.NoError(t, err)
	assert.Equal(t, "operator-7", claims.Subject)
	assert.Equal(t, "pos-ledger-cli-test", claims.Issuer)
}

func TestTokenCommandRequiresSubject(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"token"})
	assert.Error(t, root.Execute())
}

func TestParsePeriodFlags(t *testing.T) {
	start, end, err := parsePeriodFlags("2026-01-01", "2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.January, start.Month())
	assert.Equal(t, 31, end.Day())

	_, _, err = parsePeriodFlags("2026-03-31", "2026-01-01")
	assert.Error(t, err)

	_, _, err = parsePeriodFlags("", "2026-01-01")
	assert.Error(t, err)
}

func TestRenderIncomeStatement(t *testing.T) {
	is := &domain.IncomeStatement{
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Revenue: domain.StatementSection{
			Title: "Revenue",
			Lines: []domain.StatementLine{{AccountNumber: "4000", AccountName: "Sales Revenue", Balance: d("1000")}},
			Total: d("1000"),
		},
		NetSales:  d("950"),
		NetIncome: d("420"),
	}

	out := renderIncomeStatement(is)
	assert.Contains(t, out, "Income Statement")
	assert.Contains(t, out, "2026-01-01 to 2026-01-31")
	assert.Contains(t, out, "4000  Sales Revenue")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "Net Income")
	assert.Contains(t, out, "420.00")
	assert.Contains(t, out, "(none)")
}

func TestRenderBalanceSheetFlagsImbalance(t *testing.T) {
	bs := &domain.BalanceSheet{
		AsOfDate:               time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalAssets:            d("1000"),
		TotalLiabilitiesEquity: d("990"),
	}
	assert.Contains(t, renderBalanceSheet(bs), "Out of balance by 10.00")

	bs.TotalLiabilitiesEquity = d("1000")
	assert.Contains(t, renderBalanceSheet(bs), "Assets equal liabilities and equity")
}

func TestRenderCashFlowShowsPaymentsAsOutflows(t *testing.T) {
	cf := &domain.CashFlowStatement{
		Operating: domain.CashFlowActivity{
			Receipts: []domain.CashFlowBucket{{Name: "Customers", Amount: d("500")}},
			Payments: []domain.CashFlowBucket{{Name: "Rent", Amount: d("200")}},
			Net:      d("300"),
		},
		NetChange:  d("300"),
		EndingCash: d("300"),
	}
	out := renderCashFlow(cf)
	assert.Contains(t, out, "Cash received from customers")
	assert.Contains(t, out, "Cash paid for rent")
	assert.Contains(t, out, "-200.00")
}

func TestWriteReportJSON(t *testing.T) {
	var out bytes.Buffer
	tb := &domain.TrialBalance{TotalDebits: d("10"), TotalCredits: d("10"), IsBalanced: true}
	require.NoError(t, writeReport(&out, true, tb, func() string { return "unused" }))
	assert.Contains(t, out.String(), `"isBalanced": true`)
	assert.NotContains(t, out.String(), "unused")
}
