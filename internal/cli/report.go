package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/pos_ledger/internal/dto"
)

func newReportCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print financial statements",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of a formatted statement")

	cmd.AddCommand(
		newIncomeStatementCommand(&asJSON),
		newBalanceSheetCommand(&asJSON),
		newCashFlowCommand(&asJSON),
		newTrialBalanceCommand(&asJSON),
	)
	return cmd
}

func writeReport(out io.Writer, asJSON bool, v any, render func() string) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprint(out, render())
	return err
}

func today() string {
	return time.Now().Format(dto.DateLayout)
}

func periodFlags(cmd *cobra.Command, from, to *string) {
	cmd.Flags().StringVar(from, "from", "", "period start, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(to, "to", "", "period end, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func newIncomeStatementCommand(asJSON *bool) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Revenue, expenses and net income for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parsePeriodFlags(from, to)
			if err != nil {
				return err
			}
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			is, err := a.services.Reporting.IncomeStatement(ctx, start, end)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), *asJSON, is, func() string { return renderIncomeStatement(is) })
		},
	}
	periodFlags(cmd, &from, &to)
	return cmd
}

func newBalanceSheetCommand(asJSON *bool) *cobra.Command {
	var asOf, establishmentID string
	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Assets, liabilities and equity at a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dto.ParseRequiredDate("--as-of", asOf)
			if err != nil {
				return err
			}
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			bs, err := a.services.Reporting.BalanceSheet(ctx, date, establishmentID)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), *asJSON, dto.ToBalanceSheetResponse(bs), func() string { return renderBalanceSheet(bs) })
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", today(), "report date, YYYY-MM-DD")
	cmd.Flags().StringVar(&establishmentID, "establishment", "", "value inventory for one establishment only")
	return cmd
}

func newCashFlowCommand(asJSON *bool) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Direct-method cash flow for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parsePeriodFlags(from, to)
			if err != nil {
				return err
			}
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			cf, err := a.services.Reporting.CashFlow(ctx, start, end)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), *asJSON, cf, func() string { return renderCashFlow(cf) })
		},
	}
	periodFlags(cmd, &from, &to)
	return cmd
}

func newTrialBalanceCommand(asJSON *bool) *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Debit and credit totals per account",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dto.ParseRequiredDate("--as-of", asOf)
			if err != nil {
				return err
			}
			a, ctx, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			tb, err := a.services.Reporting.TrialBalance(ctx, date)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), *asJSON, tb, func() string { return renderTrialBalance(tb) })
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", today(), "report date, YYYY-MM-DD")
	return cmd
}

func parsePeriodFlags(from, to string) (time.Time, time.Time, error) {
	start, err := dto.ParseRequiredDate("--from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := dto.ParseRequiredDate("--to", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s", to, from)
	}
	return start, end, nil
}
