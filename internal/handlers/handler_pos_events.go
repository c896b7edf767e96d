package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/SscSPs/pos_ledger/internal/utils"
)

// posEventHandler accepts business events from the POS and journalizes them.
type posEventHandler struct {
	bridge    portssvc.PosBridgeSvc
	analytics *utils.AnalyticsClient
}

func registerPosEventRoutes(rg *gin.RouterGroup, bridge portssvc.PosBridgeSvc, analytics *utils.AnalyticsClient) {
	h := &posEventHandler{bridge: bridge, analytics: analytics}

	events := rg.Group("/pos-events")
	{
		events.POST("/sales", h.sale)
		events.POST("/sale-voids", h.voidSale)
		events.POST("/returns", h.returnGoods)
		events.POST("/shipments", h.shipmentReceived)
		events.POST("/register-closes", h.registerClose)
		events.POST("/cash-transactions", h.cashTransaction)
		events.POST("/damaged-goods", h.damagedGoods)
		events.POST("/vendor-credits", h.vendorCredit)
		events.POST("/cash-drops", h.cashDrop)
	}
}

type domainEvent[E any] interface {
	ToDomain() E
}

// journalize binds a request, hands the converted event to the bridge and
// answers 201 for a new entry or 200 when the event was skipped.
func journalize[E any, R domainEvent[E]](
	h *posEventHandler,
	c *gin.Context,
	eventName string,
	fn func(ctx context.Context, ev E, actor string) (*domain.JournalizeResult, error),
) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), req.ToDomain(), actor)
	if err != nil {
		respondError(c, err, "Failed to journalize "+eventName)
		return
	}

	if result.Skipped {
		logger.Info("POS event skipped", slog.String("event", eventName), slog.String("reason", result.Message))
		c.JSON(http.StatusOK, result)
		return
	}

	logger.Info("POS event journalized", slog.String("event", eventName), slog.String("transaction_id", result.TransactionID))
	middleware.CaptureEvent(c, h.analytics, "pos_event_journalized", posthog.NewProperties().
		Set("event", eventName).
		Set("transaction_id", result.TransactionID))
	c.JSON(http.StatusCreated, result)
}

// sale godoc
// @Summary Journalize a completed sale
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.SaleEventRequest true "Sale"
// @Success 201 {object} domain.JournalizeResult "Journalized"
// @Success 200 {object} domain.JournalizeResult "Already journalized"
// @Failure 400 {object} map[string]string "Invalid event"
// @Security ApiKeyAuth
// @Router /pos-events/sales [post]
func (h *posEventHandler) sale(c *gin.Context) {
	journalize[domain.SaleEvent, dto.SaleEventRequest](h, c, "sale", h.bridge.JournalizeSale)
}

// voidSale godoc
// @Summary Journalize a voided sale
// @Description Mirrors the original sale entry. Fails with 404 when the sale was never journalized.
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.VoidSaleEventRequest true "Void"
// @Success 201 {object} domain.JournalizeResult
// @Failure 404 {object} map[string]string "Original sale not journalized"
// @Security ApiKeyAuth
// @Router /pos-events/sale-voids [post]
func (h *posEventHandler) voidSale(c *gin.Context) {
	journalize[domain.VoidSaleEvent, dto.VoidSaleEventRequest](h, c, "void_sale", h.bridge.JournalizeVoidSale)
}

// returnGoods godoc
// @Summary Journalize a customer return
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.ReturnEventRequest true "Return"
// @Success 201 {object} domain.JournalizeResult
// @Security ApiKeyAuth
// @Router /pos-events/returns [post]
func (h *posEventHandler) returnGoods(c *gin.Context) {
	journalize[domain.ReturnEvent, dto.ReturnEventRequest](h, c, "return", h.bridge.JournalizeReturn)
}

// shipmentReceived godoc
// @Summary Journalize a received vendor shipment
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.ShipmentReceivedEventRequest true "Shipment"
// @Success 201 {object} domain.JournalizeResult
// @Security ApiKeyAuth
// @Router /pos-events/shipments [post]
func (h *posEventHandler) shipmentReceived(c *gin.Context) {
	journalize[domain.ShipmentReceivedEvent, dto.ShipmentReceivedEventRequest](h, c, "shipment_received", h.bridge.JournalizeShipmentReceived)
}

// registerClose godoc
// @Summary Journalize a register close-out difference
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.RegisterCloseEventRequest true "Close-out"
// @Success 201 {object} domain.JournalizeResult
// @Success 200 {object} domain.JournalizeResult "Drawer balanced, nothing to journalize"
// @Security ApiKeyAuth
// @Router /pos-events/register-closes [post]
func (h *posEventHandler) registerClose(c *gin.Context) {
	journalize[domain.RegisterCloseEvent, dto.RegisterCloseEventRequest](h, c, "register_close", h.bridge.JournalizeRegisterClose)
}

// cashTransaction godoc
// @Summary Journalize a drawer cash movement
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.CashTransactionEventRequest true "Cash movement"
// @Success 201 {object} domain.JournalizeResult
// @Security ApiKeyAuth
// @Router /pos-events/cash-transactions [post]
func (h *posEventHandler) cashTransaction(c *gin.Context) {
	journalize[domain.CashTransactionEvent, dto.CashTransactionEventRequest](h, c, "cash_transaction", h.bridge.JournalizeCashTransaction)
}

// damagedGoods godoc
// @Summary Journalize a damaged goods write-off
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.DamagedGoodsEventRequest true "Write-off"
// @Success 201 {object} domain.JournalizeResult
// @Security ApiKeyAuth
// @Router /pos-events/damaged-goods [post]
func (h *posEventHandler) damagedGoods(c *gin.Context) {
	journalize[domain.DamagedGoodsEvent, dto.DamagedGoodsEventRequest](h, c, "damaged_goods", h.bridge.JournalizeDamagedGoods)
}

// vendorCredit godoc
// @Summary Journalize a vendor credit
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.VendorCreditEventRequest true "Vendor credit"
// @Success 201 {object} domain.JournalizeResult
// @Security ApiKeyAuth
// @Router /pos-events/vendor-credits [post]
func (h *posEventHandler) vendorCredit(c *gin.Context) {
	journalize[domain.VendorCreditEvent, dto.VendorCreditEventRequest](h, c, "vendor_credit", h.bridge.JournalizeVendorCredit)
}

// cashDrop godoc
// @Summary Journalize a cash drop to the safe
// @Tags pos-events
// @Accept  json
// @Produce  json
// @Param   event body dto.CashDropEventRequest true "Cash drop"
// @Success 201 {object} domain.JournalizeResult
// @Security ApiKeyAuth
// @Router /pos-events/cash-drops [post]
func (h *posEventHandler) cashDrop(c *gin.Context) {
	journalize[domain.CashDropEvent, dto.CashDropEventRequest](h, c, "cash_drop", h.bridge.JournalizeCashDrop)
}
