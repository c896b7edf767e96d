package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/utils/accounting"
)

// Presentation order of the standard line items. Accounts not listed are
// appended after the template in account number order.
var (
	revenueTemplate       = []string{"4000"}
	contraRevenueTemplate = []string{"4010", "4020"}
	cogsTemplate          = []string{"5000", "5010", "5020"}
	opexTemplate          = []string{"5100", "5110", "5120", "5130", "5140", "5150", "5160", "5170", "5180", "5190", "5200", "5210", "5220", "5290"}
	otherIncomeTemplate   = []string{"4100", "4110"}
	taxTemplate           = []string{"6000"}

	currentAssetsTemplate       = []string{"1000", "1010", "1020", "1100", "1200", "1300", "1350"}
	fixedAssetsTemplate         = []string{"1450", "1500", "1510", "1530", "1540", "1550", "1600"}
	otherAssetsTemplate         = []string{"1400", "1700", "1800"}
	currentLiabilitiesTemplate  = []string{"2000", "2020", "2040", "2050", "2100", "2110", "2120", "2300"}
	longTermLiabilitiesTemplate = []string{"2500", "2590", "2600"}
	equityTemplate              = []string{"3000", "3100", "3200", "3300", "3310", "3700"}
)

const (
	lessAccumulatedDepreciation = "(Less Accumulated Depreciation)"
	currentYearEarnings         = "Current Year Earnings"
	priorYearsEarnings          = "Retained Earnings (Prior Years)"
	inventoryValuationLine      = "Inventory Valuation Adjustment"
)

var hundred = decimal.NewFromInt(100)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	reportingRepo portsrepo.ReportingRepository
	roles         *AccountRoleResolver
	valuator      portsrepo.InventoryValuator
	classifier    StatementClassifier
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithInventoryValuator makes the balance sheet report live on-hand stock value
// for the inventory account instead of its ledger balance.
func WithInventoryValuator(valuator portsrepo.InventoryValuator) ReportingServiceOption {
	return func(s *reportingService) {
		s.valuator = valuator
	}
}

// WithStatementClassifier replaces the heuristic classifier.
func WithStatementClassifier(classifier StatementClassifier) ReportingServiceOption {
	return func(s *reportingService) {
		s.classifier = classifier
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accountRepo portsrepo.AccountReader, repo portsrepo.ReportingRepository, roles *AccountRoleResolver, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo:   accountRepo,
		reportingRepo: repo,
		roles:         roles,
		classifier:    HeuristicClassifier{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// presented is an account with the amount it contributes to its section.
type presented struct {
	account domain.Account
	amount  decimal.Decimal
}

func validatePeriod(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}
	return nil
}

func (s *reportingService) loadAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, domain.AccountFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts for report")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return accounts, nil
}

func (s *reportingService) loadTotals(ctx context.Context, from *time.Time, to time.Time) (map[string]domain.AccountTotals, error) {
	totals, err := s.reportingRepo.GetAccountTotals(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum posted activity", slog.String("to", to.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve account totals: %w", err)
	}
	return totals, nil
}

// balanceAsOf applies the signed-balance rule, opening balance included.
func balanceAsOf(a domain.Account, totals map[string]domain.AccountTotals, asOf time.Time) decimal.Decimal {
	t := totals[a.AccountID]
	return accounting.SignedBalance(a.BalanceType, a.OpeningBalanceAsOf(asOf), zeroIfNil(t.Debits), zeroIfNil(t.Credits))
}

func activity(a domain.Account, totals map[string]domain.AccountTotals) decimal.Decimal {
	t := totals[a.AccountID]
	return accounting.SignedActivity(a.BalanceType, zeroIfNil(t.Debits), zeroIfNil(t.Credits))
}

// zeroIfNil normalises the zero value of decimal.Decimal for accounts without activity.
func zeroIfNil(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d
}

// buildSection orders members by template then account number. Members that are
// inactive with a zero amount are left out.
func buildSection(title string, template []string, members []presented) domain.StatementSection {
	rank := make(map[string]int, len(template))
	for i, n := range template {
		rank[n] = i
	}
	kept := make([]presented, 0, len(members))
	for _, m := range members {
		if !m.account.IsActive && m.amount.IsZero() {
			continue
		}
		kept = append(kept, m)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		ri, iok := rank[kept[i].account.AccountNumber]
		rj, jok := rank[kept[j].account.AccountNumber]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		}
		return kept[i].account.AccountNumber < kept[j].account.AccountNumber
	})

	section := domain.StatementSection{Title: title, Lines: make([]domain.StatementLine, 0, len(kept)), Total: decimal.Zero}
	for _, m := range kept {
		section.Lines = append(section.Lines, domain.StatementLine{
			AccountID:           m.account.AccountID,
			AccountNumber:       m.account.AccountNumber,
			AccountName:         m.account.AccountName,
			Balance:             m.amount,
			PercentageOfRevenue: decimal.Zero,
		})
		section.Total = section.Total.Add(m.amount)
	}
	return section
}

func addSyntheticLine(section *domain.StatementSection, name string, amount decimal.Decimal) {
	section.Lines = append(section.Lines, domain.StatementLine{AccountName: name, Balance: amount, PercentageOfRevenue: decimal.Zero})
	section.Total = section.Total.Add(amount)
}

func withPercentages(section *domain.StatementSection, netSales decimal.Decimal) {
	for i := range section.Lines {
		if netSales.IsZero() {
			section.Lines[i].PercentageOfRevenue = decimal.Zero
			continue
		}
		section.Lines[i].PercentageOfRevenue = section.Lines[i].Balance.Div(netSales).Mul(hundred).Round(2)
	}
}

func (s *reportingService) buildIncomeStatement(accounts []domain.Account, totals map[string]domain.AccountTotals, start, end time.Time) *domain.IncomeStatement {
	var revenue, contra, cogs, opex, other, tax []presented
	for _, a := range accounts {
		p := presented{account: a, amount: activity(a, totals)}
		switch a.AccountType {
		case domain.Revenue:
			revenue = append(revenue, p)
		case domain.ContraRevenue:
			contra = append(contra, p)
		case domain.COGS:
			cogs = append(cogs, p)
		case domain.OtherIncome:
			other = append(other, p)
		case domain.Expense:
			if s.classifier.IsTaxExpense(a) {
				tax = append(tax, p)
			} else {
				opex = append(opex, p)
			}
		}
	}

	is := &domain.IncomeStatement{
		StartDate:         start,
		EndDate:           end,
		Revenue:           buildSection("Revenue", revenueTemplate, revenue),
		ContraRevenue:     buildSection("Contra Revenue", contraRevenueTemplate, contra),
		CostOfGoodsSold:   buildSection("Cost of Goods Sold", cogsTemplate, cogs),
		OperatingExpenses: buildSection("Operating Expenses", opexTemplate, opex),
		OtherIncome:       buildSection("Other Income", otherIncomeTemplate, other),
		TaxExpense:        buildSection("Tax Expense", taxTemplate, tax),
	}
	is.NetSales = is.Revenue.Total.Sub(is.ContraRevenue.Total)
	is.GrossProfit = is.NetSales.Sub(is.CostOfGoodsSold.Total)
	is.OperatingProfit = is.GrossProfit.Sub(is.OperatingExpenses.Total)
	is.ProfitBeforeTax = is.OperatingProfit.Add(is.OtherIncome.Total)
	is.NetIncome = is.ProfitBeforeTax.Sub(is.TaxExpense.Total)

	for _, section := range []*domain.StatementSection{&is.Revenue, &is.ContraRevenue, &is.CostOfGoodsSold, &is.OperatingExpenses, &is.OtherIncome, &is.TaxExpense} {
		withPercentages(section, is.NetSales)
	}
	return is
}

// IncomeStatement generates the profit and loss statement for a period
func (s *reportingService) IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.loadTotals(ctx, &start, end)
	if err != nil {
		return nil, err
	}

	is := s.buildIncomeStatement(accounts, totals, start, end)
	s.LogInfo(ctx, "Income statement generated",
		slog.String("start", start.Format(time.DateOnly)),
		slog.String("end", end.Format(time.DateOnly)),
		slog.String("net_income", is.NetIncome.StringFixed(2)))
	return is, nil
}

// contribution flips accounts that sit against their section's natural side
// (accumulated depreciation, treasury stock, dividends) so sections sum correctly.
func contribution(a domain.Account, balance decimal.Decimal) decimal.Decimal {
	natural := domain.CreditBalance
	if a.AccountType == domain.Asset {
		natural = domain.DebitBalance
	}
	if a.BalanceType != natural {
		return balance.Neg()
	}
	return balance
}

func (s *reportingService) inventoryOverride(ctx context.Context, establishmentID string) (string, decimal.Decimal, bool, error) {
	if s.valuator == nil || s.roles == nil {
		return "", decimal.Zero, false, nil
	}
	inv, err := s.roles.Resolve(ctx, domain.RoleInventory)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", decimal.Zero, false, nil
		}
		return "", decimal.Zero, false, err
	}
	value, err := s.valuator.OnHandValue(ctx, establishmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to value on-hand inventory", slog.String("establishment_id", establishmentID))
		return "", decimal.Zero, false, fmt.Errorf("failed to value inventory: %w", err)
	}
	return inv.AccountID, value, true, nil
}

// BalanceSheet generates a balance sheet as of a date.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time, establishmentID string) (*domain.BalanceSheet, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.loadTotals(ctx, nil, asOf)
	if err != nil {
		return nil, err
	}
	inventoryID, inventoryValue, override, err := s.inventoryOverride(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	yearTotals, err := s.loadTotals(ctx, &yearStart, asOf)
	if err != nil {
		return nil, err
	}
	earnings := s.buildIncomeStatement(accounts, yearTotals, yearStart, asOf).NetIncome

	// Unclosed P&L from earlier years. Closing entries into 3300 zero it out.
	priorEnd := yearStart.AddDate(0, 0, -1)
	priorTotals, err := s.loadTotals(ctx, nil, priorEnd)
	if err != nil {
		return nil, err
	}
	priorEarnings := s.buildIncomeStatement(accounts, priorTotals, time.Time{}, priorEnd).NetIncome

	members := map[BalanceSheetSection][]presented{}
	accumulatedDepreciation := decimal.Zero
	hasContra := false
	for _, a := range accounts {
		section := s.classifier.BalanceSheetSection(a)
		if section == SectionNone {
			continue
		}
		amount := contribution(a, balanceAsOf(a, totals, asOf))
		if override && a.AccountID == inventoryID {
			amount = inventoryValue
		}
		if s.classifier.IsContraAsset(a) {
			accumulatedDepreciation = accumulatedDepreciation.Add(amount)
			hasContra = true
			continue
		}
		members[section] = append(members[section], presented{account: a, amount: amount})
	}

	bs := &domain.BalanceSheet{
		AsOfDate:            asOf,
		CurrentAssets:       buildSection("Current Assets", currentAssetsTemplate, members[SectionCurrentAssets]),
		FixedAssets:         buildSection("Fixed Assets", fixedAssetsTemplate, members[SectionFixedAssets]),
		OtherAssets:         buildSection("Other Assets", otherAssetsTemplate, members[SectionOtherAssets]),
		CurrentLiabilities:  buildSection("Current Liabilities", currentLiabilitiesTemplate, members[SectionCurrentLiabilities]),
		LongTermLiabilities: buildSection("Long-Term Liabilities", longTermLiabilitiesTemplate, members[SectionLongTermLiabilities]),
		Equity:              buildSection("Equity", equityTemplate, members[SectionEquity]),
	}
	if hasContra {
		addSyntheticLine(&bs.FixedAssets, lessAccumulatedDepreciation, accumulatedDepreciation)
	}
	if !priorEarnings.IsZero() {
		addSyntheticLine(&bs.Equity, priorYearsEarnings, priorEarnings)
	}
	addSyntheticLine(&bs.Equity, currentYearEarnings, earnings)

	bs.TotalAssets = bs.CurrentAssets.Total.Add(bs.FixedAssets.Total).Add(bs.OtherAssets.Total)
	bs.TotalLiabilities = bs.CurrentLiabilities.Total.Add(bs.LongTermLiabilities.Total)

	// Whatever does not tie is absorbed into equity so the statement always
	// balances. On books without an inventory override this is zero.
	bs.InventoryAdjustment = bs.TotalAssets.Sub(bs.TotalLiabilities).Sub(bs.Equity.Total)
	addSyntheticLine(&bs.Equity, inventoryValuationLine, bs.InventoryAdjustment)

	bs.TotalEquity = bs.Equity.Total
	bs.TotalLiabilitiesEquity = bs.TotalLiabilities.Add(bs.TotalEquity)

	if !bs.InventoryAdjustment.Abs().LessThan(domain.BalanceTolerance) {
		s.LogInfo(ctx, "Balance sheet required a valuation adjustment",
			slog.String("as_of", asOf.Format(time.DateOnly)),
			slog.String("adjustment", bs.InventoryAdjustment.StringFixed(2)))
	}
	return bs, nil
}

func (s *reportingService) cashBalance(cash []domain.Account, totals map[string]domain.AccountTotals, asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range cash {
		total = total.Add(balanceAsOf(a, totals, asOf))
	}
	return total
}

func newCashFlowActivity(kind CashFlowActivityKind, receipts, payments map[CashFlowCategory]decimal.Decimal) domain.CashFlowActivity {
	act := domain.CashFlowActivity{Receipts: []domain.CashFlowBucket{}, Payments: []domain.CashFlowBucket{}, Net: decimal.Zero}
	for _, name := range CashFlowReceiptBuckets[kind] {
		amount := receipts[CashFlowCategory{kind, name}]
		act.Receipts = append(act.Receipts, domain.CashFlowBucket{Name: name, Amount: zeroIfNil(amount)})
		act.Net = act.Net.Add(amount)
	}
	for _, name := range CashFlowPaymentBuckets[kind] {
		amount := payments[CashFlowCategory{kind, name}]
		act.Payments = append(act.Payments, domain.CashFlowBucket{Name: name, Amount: zeroIfNil(amount)})
		act.Net = act.Net.Sub(amount)
	}
	return act
}

// CashFlow generates the direct-method cash flow statement for a period
func (s *reportingService) CashFlow(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error) {
	if err := validatePeriod(start, end); err != nil {
		return nil, err
	}
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Account, len(accounts))
	var cash []domain.Account
	cashIDs := map[string]struct{}{}
	for _, a := range accounts {
		byID[a.AccountID] = a
		if s.classifier.IsCashAccount(a) {
			cash = append(cash, a)
			cashIDs[a.AccountID] = struct{}{}
		}
	}

	receipts := map[CashFlowCategory]decimal.Decimal{}
	payments := map[CashFlowCategory]decimal.Decimal{}
	dropped := 0
	if len(cash) > 0 {
		ids := make([]string, 0, len(cash))
		for _, a := range cash {
			ids = append(ids, a.AccountID)
		}
		txns, err := s.reportingRepo.GetTransactionsTouchingAccounts(ctx, ids, start, end)
		if err != nil {
			s.LogError(ctx, err, "Failed to load cash transactions")
			return nil, fmt.Errorf("failed to retrieve cash transactions: %w", err)
		}
		for _, txn := range txns {
			delta := decimal.Zero
			for _, l := range txn.Lines {
				if _, ok := cashIDs[l.AccountID]; ok {
					delta = delta.Add(l.DebitAmount).Sub(l.CreditAmount)
				}
			}
			if delta.Abs().LessThan(domain.BalanceTolerance) {
				continue
			}
			receipt := delta.IsPositive()
			shares := s.allocateCashMovement(txn, cashIDs, byID, receipt, delta.Abs())
			if len(shares) == 0 {
				dropped++
				continue
			}
			for _, sh := range shares {
				if receipt {
					receipts[sh.category] = receipts[sh.category].Add(sh.amount)
				} else {
					payments[sh.category] = payments[sh.category].Add(sh.amount)
				}
			}
		}
	}

	cf := &domain.CashFlowStatement{
		StartDate: start,
		EndDate:   end,
		Operating: newCashFlowActivity(ActivityOperating, receipts, payments),
		Investing: newCashFlowActivity(ActivityInvesting, receipts, payments),
		Financing: newCashFlowActivity(ActivityFinancing, receipts, payments),
	}
	cf.NetChange = cf.Operating.Net.Add(cf.Investing.Net).Add(cf.Financing.Net)

	dayBefore := start.AddDate(0, 0, -1)
	beginTotals, err := s.loadTotals(ctx, nil, dayBefore)
	if err != nil {
		return nil, err
	}
	endTotals, err := s.loadTotals(ctx, nil, end)
	if err != nil {
		return nil, err
	}
	cf.BeginningCash = s.cashBalance(cash, beginTotals, dayBefore)
	cf.EndingCash = s.cashBalance(cash, endTotals, end)

	if dropped > 0 {
		s.LogDebug(ctx, "Cash movements without a cash flow bucket were left out", slog.Int("count", dropped))
	}
	return cf, nil
}

type cashShare struct {
	category CashFlowCategory
	amount   decimal.Decimal
}

// allocateCashMovement spreads a cash movement over the classifiable non-cash
// lines on the opposite side of the cash, in proportion to their amounts.
// Shares are rounded to cents and the last one takes the remainder.
func (s *reportingService) allocateCashMovement(txn domain.Transaction, cashIDs map[string]struct{}, byID map[string]domain.Account, receipt bool, amount decimal.Decimal) []cashShare {
	var shares []cashShare
	total := decimal.Zero
	for _, l := range txn.Lines {
		if _, isCash := cashIDs[l.AccountID]; isCash {
			continue
		}
		// cash in is matched by credits, cash out by debits
		if receipt == l.IsDebit() {
			continue
		}
		acc, ok := byID[l.AccountID]
		if !ok {
			continue
		}
		cat, ok := s.classifier.CashFlowCategory(acc, receipt)
		if !ok || l.Amount().IsZero() {
			continue
		}
		shares = append(shares, cashShare{category: cat, amount: l.Amount()})
		total = total.Add(l.Amount())
	}
	if len(shares) == 0 {
		return nil
	}

	allocated := decimal.Zero
	for i := range shares {
		if i == len(shares)-1 {
			shares[i].amount = amount.Sub(allocated)
			break
		}
		shares[i].amount = amount.Mul(shares[i].amount).Div(total).Round(2)
		allocated = allocated.Add(shares[i].amount)
	}
	return shares
}

// TrialBalance lists every account with a non-zero balance as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.loadTotals(ctx, nil, asOf)
	if err != nil {
		return nil, err
	}

	tb := &domain.TrialBalance{AsOfDate: asOf, Rows: []domain.TrialBalanceRow{}, TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
	for _, a := range accounts {
		balance := balanceAsOf(a, totals, asOf)
		if balance.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:     a.AccountID,
			AccountNumber: a.AccountNumber,
			AccountName:   a.AccountName,
			AccountType:   a.AccountType,
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}
		onNaturalSide := balance.IsPositive()
		if (a.BalanceType == domain.DebitBalance) == onNaturalSide {
			row.Debit = balance.Abs()
		} else {
			row.Credit = balance.Abs()
		}
		tb.TotalDebits = tb.TotalDebits.Add(row.Debit)
		tb.TotalCredits = tb.TotalCredits.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}
	tb.IsBalanced = tb.TotalDebits.Sub(tb.TotalCredits).Abs().LessThan(domain.BalanceTolerance)

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("as_of", asOf.Format(time.DateOnly)),
		slog.Int("row_count", len(tb.Rows)),
		slog.Bool("is_balanced", tb.IsBalanced))
	return tb, nil
}

func (s *reportingService) ComparativeIncomeStatement(ctx context.Context, start, end, priorStart, priorEnd time.Time) (*domain.ComparativeIncomeStatement, error) {
	current, err := s.IncomeStatement(ctx, start, end)
	if err != nil {
		return nil, err
	}
	prior, err := s.IncomeStatement(ctx, priorStart, priorEnd)
	if err != nil {
		return nil, err
	}
	return &domain.ComparativeIncomeStatement{
		Current: *current,
		Prior:   *prior,
		Variances: map[string]domain.Variance{
			"revenue":           domain.NewVariance(current.Revenue.Total, prior.Revenue.Total),
			"contraRevenue":     domain.NewVariance(current.ContraRevenue.Total, prior.ContraRevenue.Total),
			"netSales":          domain.NewVariance(current.NetSales, prior.NetSales),
			"costOfGoodsSold":   domain.NewVariance(current.CostOfGoodsSold.Total, prior.CostOfGoodsSold.Total),
			"grossProfit":       domain.NewVariance(current.GrossProfit, prior.GrossProfit),
			"operatingExpenses": domain.NewVariance(current.OperatingExpenses.Total, prior.OperatingExpenses.Total),
			"operatingProfit":   domain.NewVariance(current.OperatingProfit, prior.OperatingProfit),
			"otherIncome":       domain.NewVariance(current.OtherIncome.Total, prior.OtherIncome.Total),
			"taxExpense":        domain.NewVariance(current.TaxExpense.Total, prior.TaxExpense.Total),
			"netIncome":         domain.NewVariance(current.NetIncome, prior.NetIncome),
		},
	}, nil
}

func (s *reportingService) ComparativeBalanceSheet(ctx context.Context, asOf, priorAsOf time.Time, establishmentID string) (*domain.ComparativeBalanceSheet, error) {
	current, err := s.BalanceSheet(ctx, asOf, establishmentID)
	if err != nil {
		return nil, err
	}
	prior, err := s.BalanceSheet(ctx, priorAsOf, establishmentID)
	if err != nil {
		return nil, err
	}
	return &domain.ComparativeBalanceSheet{
		Current: *current,
		Prior:   *prior,
		Variances: map[string]domain.Variance{
			"currentAssets":      domain.NewVariance(current.CurrentAssets.Total, prior.CurrentAssets.Total),
			"fixedAssets":        domain.NewVariance(current.FixedAssets.Total, prior.FixedAssets.Total),
			"totalAssets":        domain.NewVariance(current.TotalAssets, prior.TotalAssets),
			"currentLiabilities": domain.NewVariance(current.CurrentLiabilities.Total, prior.CurrentLiabilities.Total),
			"totalLiabilities":   domain.NewVariance(current.TotalLiabilities, prior.TotalLiabilities),
			"totalEquity":        domain.NewVariance(current.TotalEquity, prior.TotalEquity),
		},
	}, nil
}

func (s *reportingService) ComparativeCashFlow(ctx context.Context, start, end, priorStart, priorEnd time.Time) (*domain.ComparativeCashFlow, error) {
	current, err := s.CashFlow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	prior, err := s.CashFlow(ctx, priorStart, priorEnd)
	if err != nil {
		return nil, err
	}
	return &domain.ComparativeCashFlow{
		Current: *current,
		Prior:   *prior,
		Variances: map[string]domain.Variance{
			"operating":  domain.NewVariance(current.Operating.Net, prior.Operating.Net),
			"investing":  domain.NewVariance(current.Investing.Net, prior.Investing.Net),
			"financing":  domain.NewVariance(current.Financing.Net, prior.Financing.Net),
			"netChange":  domain.NewVariance(current.NetChange, prior.NetChange),
			"endingCash": domain.NewVariance(current.EndingCash, prior.EndingCash),
		},
	}, nil
}
