package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type ledgerHandler struct {
	journalService portssvc.JournalReaderSvc
}

func registerLedgerRoutes(rg *gin.RouterGroup, journalService portssvc.JournalReaderSvc) {
	h := &ledgerHandler{journalService: journalService}
	rg.GET("/general-ledger", h.generalLedger)
}

// generalLedger godoc
// @Summary General ledger
// @Description Posted, non-void lines with a running balance per account
// @Tags ledger
// @Produce  json
// @Param   accountID query string false "Restrict to one account"
// @Param   startDate query string false "YYYY-MM-DD"
// @Param   endDate query string false "YYYY-MM-DD"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /general-ledger [get]
func (h *ledgerHandler) generalLedger(c *gin.Context) {
	var params dto.GeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	var filter domain.LedgerFilter
	var err error
	if params.AccountID != "" {
		filter.AccountID = &params.AccountID
	}
	if filter.StartDate, err = dto.ParseDate(params.StartDate); err != nil {
		respondError(c, err, "Invalid start date")
		return
	}
	if filter.EndDate, err = dto.ParseDate(params.EndDate); err != nil {
		respondError(c, err, "Invalid end date")
		return
	}

	entries, err := h.journalService.GeneralLedger(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to build general ledger")
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	c.JSON(http.StatusOK, dto.GeneralLedgerResponse{Entries: entries})
}
