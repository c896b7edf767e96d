package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/by-source", h.getBySourceDocument)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
		txns.POST("/:id/post", h.postTransaction)
		txns.POST("/:id/unpost", h.unpostTransaction)
		txns.POST("/:id/void", h.voidTransaction)
	}
}

// createTransaction godoc
// @Summary Create a journal entry
// @Description Creates a draft entry, or a posted one when post is true. Posting requires balanced lines.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Journal entry"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Unbalanced entry or invalid line"
// @Failure 409 {object} map[string]string "Source document already journalized"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *journalHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, err := h.journalService.CreateTransaction(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("transaction_number", txn.TransactionNumber), slog.Bool("posted", txn.IsPosted))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a journal entry with its lines
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *journalHandler) getTransaction(c *gin.Context) {
	txn, err := h.journalService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getBySourceDocument godoc
// @Summary Find the posted entry for a source document
// @Tags transactions
// @Produce  json
// @Param   type query string true "Source document type, e.g. pos_sale"
// @Param   id query string true "Source document ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "No posted entry for the document"
// @Security BearerAuth
// @Router /transactions/by-source [get]
func (h *journalHandler) getBySourceDocument(c *gin.Context) {
	var params dto.SourceDocumentParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	txn, err := h.journalService.FindBySourceDocument(c.Request.Context(), params.Type, params.ID)
	if err != nil {
		respondError(c, err, "Failed to find transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List journal entries
// @Description Newest first, paginated with an opaque nextToken
// @Tags transactions
// @Produce  json
// @Param   transactionType query string false "Filter by type"
// @Param   status query string false "draft, posted or void"
// @Param   sourceDocumentType query string false "Filter by source document type"
// @Param   startDate query string false "YYYY-MM-DD"
// @Param   endDate query string false "YYYY-MM-DD"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filter or token"
// @Security BearerAuth
// @Router /transactions [get]
func (h *journalHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	page, err := h.journalService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// updateTransaction godoc
// @Summary Update a draft journal entry
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} map[string]string "Entry is posted or void"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *journalHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txn, err := h.journalService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a draft journal entry
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Only drafts can be deleted"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *journalHandler) deleteTransaction(c *gin.Context) {
	if err := h.journalService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// postTransaction godoc
// @Summary Post a draft journal entry
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Entry does not balance"
// @Failure 409 {object} map[string]string "Already posted or void"
// @Security BearerAuth
// @Router /transactions/{id}/post [post]
func (h *journalHandler) postTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txn, err := h.journalService.PostTransaction(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to post transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// unpostTransaction godoc
// @Summary Return a posted entry to draft
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} map[string]string "Not posted or void"
// @Security BearerAuth
// @Router /transactions/{id}/unpost [post]
func (h *journalHandler) unpostTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txn, err := h.journalService.UnpostTransaction(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, err, "Failed to unpost transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// voidTransaction godoc
// @Summary Void a journal entry
// @Description Void entries stay on file but are excluded from every balance and statement
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   void body dto.VoidRequest true "Void reason"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} map[string]string "Already void"
// @Security BearerAuth
// @Router /transactions/{id}/void [post]
func (h *journalHandler) voidTransaction(c *gin.Context) {
	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	txn, err := h.journalService.VoidTransaction(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		respondError(c, err, "Failed to void transaction")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction voided", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
