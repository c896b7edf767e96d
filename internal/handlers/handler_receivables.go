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

// receivablesHandler serves customers, invoices and customer payments.
type receivablesHandler struct {
	customerService portssvc.CustomerSvcFacade
	invoiceService  portssvc.InvoiceSvcFacade
	paymentService  portssvc.CustomerPaymentSvcFacade
}

func registerReceivablesRoutes(
	rg *gin.RouterGroup,
	customerService portssvc.CustomerSvcFacade,
	invoiceService portssvc.InvoiceSvcFacade,
	paymentService portssvc.CustomerPaymentSvcFacade,
) {
	h := &receivablesHandler{customerService: customerService, invoiceService: invoiceService, paymentService: paymentService}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.PUT("/:id", h.updateCustomer)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.POST("/:id/void", h.voidInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}

	payments := rg.Group("/customer-payments")
	{
		payments.POST("", h.createCustomerPayment)
		payments.GET("", h.listCustomerPayments)
		payments.GET("/:id", h.getCustomerPayment)
		payments.PUT("/:id", h.updateCustomerPayment)
		payments.POST("/:id/void", h.voidCustomerPayment)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Duplicate customer number"
// @Security BearerAuth
// @Router /customers [post]
func (h *receivablesHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.CustomerResponse{Customer: *customer})
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Param   activeOnly query bool false "Only active customers"
// @Success 200 {array} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *receivablesHandler) listCustomers(c *gin.Context) {
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	customers, err := h.customerService.ListCustomers(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *receivablesHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.CustomerResponse{Customer: *customer})
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *receivablesHandler) updateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.CustomerResponse{Customer: *customer})
}

// createInvoice godoc
// @Summary Invoice a customer
// @Description Computes line totals and tax, then posts Dr Accounts Receivable / Cr revenue and sales tax
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /invoices [post]
func (h *receivablesHandler) createInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Invoice created", slog.String("invoice_id", inv.InvoiceID), slog.String("total", inv.TotalAmount.StringFixed(2)))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce  json
// @Param   customerID query string false "Filter by customer"
// @Param   status query string false "draft, open, partial, paid or void"
// @Success 200 {array} dto.InvoiceResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *receivablesHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	var filter domain.InvoiceFilter
	if params.CustomerID != "" {
		filter.CustomerID = &params.CustomerID
	}
	if params.Status != "" {
		status := domain.InvoiceStatus(params.Status)
		filter.Status = &status
	}
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// getInvoice godoc
// @Summary Get an invoice with its lines
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *receivablesHandler) getInvoice(c *gin.Context) {
	inv, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// updateInvoice godoc
// @Summary Update an unpaid invoice
// @Description Line or date changes void the invoice's entry and post a replacement
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 409 {object} map[string]string "Invoice has payments applied or is void"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *receivablesHandler) updateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// voidInvoice godoc
// @Summary Void an invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   void body dto.VoidRequest true "Void reason"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 409 {object} map[string]string "Invoice has payments applied or is already void"
// @Security BearerAuth
// @Router /invoices/{id}/void [post]
func (h *receivablesHandler) voidInvoice(c *gin.Context) {
	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.VoidInvoice(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		respondError(c, err, "Failed to void invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// deleteInvoice godoc
// @Summary Delete an unpaid invoice
// @Description Voids the invoice's journal entry, then removes the invoice
// @Tags invoices
// @Param   id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Invoice has payments applied"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *receivablesHandler) deleteInvoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// createCustomerPayment godoc
// @Summary Receive a customer payment
// @Description Posts Dr deposit account / Cr Accounts Receivable. Applications cannot exceed the payment or any invoice's balance due
// @Tags customer-payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreateCustomerPaymentRequest true "Payment"
// @Success 201 {object} dto.CustomerPaymentResponse
// @Failure 400 {object} map[string]string "Over-application"
// @Failure 404 {object} map[string]string "Customer or invoice not found"
// @Security BearerAuth
// @Router /customer-payments [post]
func (h *receivablesHandler) createCustomerPayment(c *gin.Context) {
	var req dto.CreateCustomerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.CreateCustomerPayment(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create customer payment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Customer payment created", slog.String("payment_id", payment.PaymentID), slog.Int("invoices", len(payment.Applications)))
	c.JSON(http.StatusCreated, dto.ToCustomerPaymentResponse(payment))
}

// listCustomerPayments godoc
// @Summary List customer payments
// @Tags customer-payments
// @Produce  json
// @Param   customerID query string false "Filter by customer"
// @Success 200 {array} dto.CustomerPaymentResponse
// @Security BearerAuth
// @Router /customer-payments [get]
func (h *receivablesHandler) listCustomerPayments(c *gin.Context) {
	var customerID *string
	if v := c.Query("customerID"); v != "" {
		customerID = &v
	}
	payments, err := h.paymentService.ListCustomerPayments(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "Failed to list customer payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerPaymentResponses(payments))
}

// getCustomerPayment godoc
// @Summary Get a customer payment with its applications
// @Tags customer-payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.CustomerPaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /customer-payments/{id} [get]
func (h *receivablesHandler) getCustomerPayment(c *gin.Context) {
	payment, err := h.paymentService.GetCustomerPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerPaymentResponse(payment))
}

// updateCustomerPayment godoc
// @Summary Update a customer payment
// @Description Only date, method, reference and memo can change. Applications are fixed.
// @Tags customer-payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.UpdateCustomerPaymentRequest true "Fields to update"
// @Success 200 {object} dto.CustomerPaymentResponse
// @Failure 400 {object} map[string]string "Applications cannot be changed"
// @Failure 409 {object} map[string]string "Payment is void"
// @Security BearerAuth
// @Router /customer-payments/{id} [put]
func (h *receivablesHandler) updateCustomerPayment(c *gin.Context) {
	var req dto.UpdateCustomerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.UpdateCustomerPayment(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update customer payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerPaymentResponse(payment))
}

// voidCustomerPayment godoc
// @Summary Void a customer payment
// @Description Restores each invoice's balance due and voids the payment's journal entry
// @Tags customer-payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   void body dto.VoidRequest true "Void reason"
// @Success 200 {object} dto.CustomerPaymentResponse
// @Failure 409 {object} map[string]string "Already void"
// @Security BearerAuth
// @Router /customer-payments/{id}/void [post]
func (h *receivablesHandler) voidCustomerPayment(c *gin.Context) {
	var req dto.VoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.VoidCustomerPayment(c.Request.Context(), c.Param("id"), req.Reason, actor)
	if err != nil {
		respondError(c, err, "Failed to void customer payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerPaymentResponse(payment))
}
