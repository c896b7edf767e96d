package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
)

// payablesHandler serves vendor bills and bill payments.
type payablesHandler struct {
	billService    portssvc.BillSvcFacade
	paymentService portssvc.BillPaymentSvcFacade
}

func registerPayablesRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, paymentService portssvc.BillPaymentSvcFacade) {
	h := &payablesHandler{billService: billService, paymentService: paymentService}

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBill)
		bills.PUT("/:id", h.updateBill)
		bills.POST("/:id/void", h.voidBill)
		bills.DELETE("/:id", h.deleteBill)
	}

	payments := rg.Group("/bill-payments")
	{
		payments.POST("", h.createBillPayment)
		payments.GET("", h.listBillPayments)
		payments.GET("/:id", h.getBillPayment)
		payments.PUT("/:id", h.updateBillPayment)
		payments.POST("/:id/void", h.voidBillPayment)
	}
}

// createBill godoc
// @Summary Enter a vendor bill
// @Description Computes line totals and tax, then posts Dr line accounts / Cr Accounts Payable
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreateBillRequest true "Bill"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Vendor, account or tax rate not found"
// @Security BearerAuth
// @Router /bills [post]
func (h *payablesHandler) createBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bill, err := h.billService.CreateBill(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create bill")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bill created", slog.String("bill_id", bill.BillID), slog.String("total", bill.TotalAmount.StringFixed(2)))
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Tags bills
// @Produce  json
// @Param   vendorID query string false "Filter by vendor"
// @Param   status query string false "draft, open, partial, paid or void"
// @Success 200 {array} dto.BillResponse
// @Security BearerAuth
// @Router /bills [get]
func (h *payablesHandler) listBills(c *gin.Context) {
	var params dto.ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	var filter domain.BillFilter
	if params.VendorID != "" {
		filter.VendorID = &params.VendorID
	}
	if params.Status != "" {
		status := domain.BillStatus(params.Status)
		filter.Status = &status
	}
	bills, err := h.billService.ListBills(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponses(bills))
}

// getBill godoc
// @Summary Get a bill with its lines
// @Tags bills
// @Produce  json
// @Param   id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *payablesHandler) getBill(c *gin.Context) {
	bill, err := h.billService.GetBillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// updateBill godoc
// @Summary Update an unpaid bill
// @Description Line or date changes void the bill's entry and post a replacement
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   bill body dto.UpdateBillRequest true "Fields to update"
// @Success 200 {object} dto.BillResponse
// @Failure 409 {object} map[string]string "Bill has payments applied or is void"
// @Security BearerAuth
// @Router /bills/{id} [put]
func (h *payablesHandler) updateBill(c *gin.Context) {
	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bill, err := h.billService.UpdateBill(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// voidBill godoc
// @Summary Void a bill
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   void body dto.VoidRequest true "Void reason"
// @Success 200 {object} dto.BillResponse
// @Failure 409 {object} map[string]string "Bill has payments applied or is already void"
// @Security BearerAuth
// @Router /bills/{id}/void [post]
func (h *payablesHandler) voidBill(c *gin.Context) {
	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bill, err := h.billService.VoidBill(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		respondError(c, err, "Failed to void bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// deleteBill godoc
// @Summary Delete an unpaid bill
// @Description Voids the bill's journal entry, then removes the bill
// @Tags bills
// @Param   id path string true "Bill ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Bill has payments applied"
// @Security BearerAuth
// @Router /bills/{id} [delete]
func (h *payablesHandler) deleteBill(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.billService.DeleteBill(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, err, "Failed to delete bill")
		return
	}
	c.Status(http.StatusNoContent)
}

// createBillPayment godoc
// @Summary Pay one or more bills
// @Description Applications must sum to the payment amount and cannot exceed any bill's balance due
// @Tags bill-payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreateBillPaymentRequest true "Payment"
// @Success 201 {object} dto.BillPaymentResponse
// @Failure 400 {object} map[string]string "Over-application or mismatched total"
// @Failure 404 {object} map[string]string "Bill or account not found"
// @Security BearerAuth
// @Router /bill-payments [post]
func (h *payablesHandler) createBillPayment(c *gin.Context) {
	var req dto.CreateBillPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.CreateBillPayment(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create bill payment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bill payment created", slog.String("payment_id", payment.PaymentID), slog.Int("bills", len(payment.Applications)))
	c.JSON(http.StatusCreated, dto.ToBillPaymentResponse(payment))
}

// listBillPayments godoc
// @Summary List bill payments
// @Tags bill-payments
// @Produce  json
// @Param   vendorID query string false "Filter by vendor"
// @Success 200 {array} dto.BillPaymentResponse
// @Security BearerAuth
// @Router /bill-payments [get]
func (h *payablesHandler) listBillPayments(c *gin.Context) {
	var vendorID *string
	if v := c.Query("vendorID"); v != "" {
		vendorID = &v
	}
	payments, err := h.paymentService.ListBillPayments(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err, "Failed to list bill payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillPaymentResponses(payments))
}

// getBillPayment godoc
// @Summary Get a bill payment with its applications
// @Tags bill-payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.BillPaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /bill-payments/{id} [get]
func (h *payablesHandler) getBillPayment(c *gin.Context) {
	payment, err := h.paymentService.GetBillPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve bill payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillPaymentResponse(payment))
}

// updateBillPayment godoc
// @Summary Update a bill payment
// @Description Only date, method, reference and memo can change. Applications are fixed.
// @Tags bill-payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.UpdateBillPaymentRequest true "Fields to update"
// @Success 200 {object} dto.BillPaymentResponse
// @Failure 400 {object} map[string]string "Applications cannot be changed"
// @Failure 409 {object} map[string]string "Payment is void"
// @Security BearerAuth
// @Router /bill-payments/{id} [put]
func (h *payablesHandler) updateBillPayment(c *gin.Context) {
	var req dto.UpdateBillPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.UpdateBillPayment(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update bill payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillPaymentResponse(payment))
}

// voidBillPayment godoc
// @Summary Void a bill payment
// @Description Restores each bill's balance due and voids the payment's journal entry
// @Tags bill-payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   void body dto.VoidRequest true "Void reason"
// @Success 200 {object} dto.BillPaymentResponse
// @Failure 409 {object} map[string]string "Already void"
// @Security BearerAuth
// @Router /bill-payments/{id}/void [post]
func (h *payablesHandler) voidBillPayment(c *gin.Context) {
	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.VoidBillPayment(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		respondError(c, err, "Failed to void bill payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillPaymentResponse(payment))
}
