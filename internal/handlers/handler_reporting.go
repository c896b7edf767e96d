package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial statements
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/cash-flow", h.getCashFlow)

		comparative := reports.Group("/comparative")
		comparative.GET("/income-statement", h.getComparativeIncomeStatement)
		comparative.GET("/balance-sheet", h.getComparativeBalanceSheet)
		comparative.GET("/cash-flow", h.getComparativeCashFlow)
	}
}

// parsePeriod parses a start/end pair and rejects inverted ranges.
func parsePeriod(startName, start, endName, end string) (time.Time, time.Time, error) {
	s, err := dto.ParseRequiredDate(startName, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := dto.ParseRequiredDate(endName, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s is before %s", apperrors.ErrValidation, endName, startName)
	}
	return s, e, nil
}

func (h *reportingHandler) asOfOrToday(value string) (time.Time, error) {
	asOf, err := dto.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if asOf == nil {
		y, m, d := h.now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return *asOf, nil
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Debit and credit totals per account as of a date
// @Tags reports
// @Produce json
// @Param asOfDate query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	asOf, err := h.asOfOrToday(c.Query("asOfDate"))
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	tb, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.TrialBalanceResponse{TrialBalance: *tb})
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Revenue, cost of sales, expenses and taxes for a period
// @Tags reports
// @Produce json
// @Param startDate query string true "Period start (YYYY-MM-DD)"
// @Param endDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	start, end, err := parsePeriod("startDate", params.StartDate, "endDate", params.EndDate)
	if err != nil {
		respondError(c, err, "Invalid period")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Generating income statement",
		slog.String("start", params.StartDate), slog.String("end", params.EndDate))

	is, err := h.reportingService.IncomeStatement(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.IncomeStatementResponse{IncomeStatement: *is})
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Assets, liabilities and equity as of a date. Inventory is valued from on-hand stock when available.
// @Tags reports
// @Produce json
// @Param asOfDate query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param establishmentID query string false "Restrict inventory valuation to one establishment"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	asOf, err := h.asOfOrToday(params.AsOfDate)
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	bs, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf, params.EstablishmentID)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs))
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Description Direct-method cash flow grouped into operating, investing and financing activities
// @Tags reports
// @Produce json
// @Param startDate query string true "Period start (YYYY-MM-DD)"
// @Param endDate query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	start, end, err := parsePeriod("startDate", params.StartDate, "endDate", params.EndDate)
	if err != nil {
		respondError(c, err, "Invalid period")
		return
	}
	cf, err := h.reportingService.CashFlow(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "Failed to generate cash flow statement")
		return
	}
	c.JSON(http.StatusOK, dto.CashFlowResponse{CashFlowStatement: *cf})
}

// getComparativeIncomeStatement godoc
// @Summary Compare income statements for two periods
// @Tags reports
// @Produce json
// @Param startDate query string true "Current period start"
// @Param endDate query string true "Current period end"
// @Param priorStartDate query string true "Prior period start"
// @Param priorEndDate query string true "Prior period end"
// @Success 200 {object} domain.ComparativeIncomeStatement
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/comparative/income-statement [get]
func (h *reportingHandler) getComparativeIncomeStatement(c *gin.Context) {
	var params dto.ComparativePeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	start, end, priorStart, priorEnd, err := parseComparativePeriods(params)
	if err != nil {
		respondError(c, err, "Invalid period")
		return
	}
	report, err := h.reportingService.ComparativeIncomeStatement(c.Request.Context(), start, end, priorStart, priorEnd)
	if err != nil {
		respondError(c, err, "Failed to generate comparative income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getComparativeBalanceSheet godoc
// @Summary Compare balance sheets at two dates
// @Tags reports
// @Produce json
// @Param asOfDate query string true "Current date"
// @Param priorAsOfDate query string true "Prior date"
// @Param establishmentID query string false "Restrict inventory valuation to one establishment"
// @Success 200 {object} domain.ComparativeBalanceSheet
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/comparative/balance-sheet [get]
func (h *reportingHandler) getComparativeBalanceSheet(c *gin.Context) {
	var params dto.ComparativeAsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	asOf, err := dto.ParseRequiredDate("asOfDate", params.AsOfDate)
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	priorAsOf, err := dto.ParseRequiredDate("priorAsOfDate", params.PriorAsOfDate)
	if err != nil {
		respondError(c, err, "Invalid date")
		return
	}
	report, err := h.reportingService.ComparativeBalanceSheet(c.Request.Context(), asOf, priorAsOf, params.EstablishmentID)
	if err != nil {
		respondError(c, err, "Failed to generate comparative balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getComparativeCashFlow godoc
// @Summary Compare cash flow statements for two periods
// @Tags reports
// @Produce json
// @Param startDate query string true "Current period start"
// @Param endDate query string true "Current period end"
// @Param priorStartDate query string true "Prior period start"
// @Param priorEndDate query string true "Prior period end"
// @Success 200 {object} domain.ComparativeCashFlow
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/comparative/cash-flow [get]
func (h *reportingHandler) getComparativeCashFlow(c *gin.Context) {
	var params dto.ComparativePeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	start, end, priorStart, priorEnd, err := parseComparativePeriods(params)
	if err != nil {
		respondError(c, err, "Invalid period")
		return
	}
	report, err := h.reportingService.ComparativeCashFlow(c.Request.Context(), start, end, priorStart, priorEnd)
	if err != nil {
		respondError(c, err, "Failed to generate comparative cash flow statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseComparativePeriods(p dto.ComparativePeriodParams) (start, end, priorStart, priorEnd time.Time, err error) {
	if start, end, err = parsePeriod("startDate", p.StartDate, "endDate", p.EndDate); err != nil {
		return
	}
	priorStart, priorEnd, err = parsePeriod("priorStartDate", p.PriorStartDate, "priorEndDate", p.PriorEndDate)
	return
}
