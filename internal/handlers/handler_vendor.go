package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := &vendorHandler{vendorService: vendorService}

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.PUT("/:id", h.updateVendor)
	}

	taxRates := rg.Group("/tax-rates")
	{
		taxRates.POST("", h.createTaxRate)
		taxRates.GET("", h.listTaxRates)
		taxRates.GET("/:id", h.getTaxRate)
	}
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Duplicate vendor number"
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create vendor")
		return
	}
	c.JSON(http.StatusCreated, dto.VendorResponse{Vendor: *vendor})
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce  json
// @Param   activeOnly query bool false "Only active vendors"
// @Success 200 {array} dto.VendorResponse
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	var params dto.ListVendorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	vendors, err := h.vendorService.ListVendors(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		respondError(c, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponses(vendors))
}

// getVendor godoc
// @Summary Get a vendor
// @Tags vendors
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} map[string]string "Vendor not found"
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve vendor")
		return
	}
	c.JSON(http.StatusOK, dto.VendorResponse{Vendor: *vendor})
}

// updateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   id path string true "Vendor ID"
// @Param   vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.VendorResponse
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update vendor")
		return
	}
	c.JSON(http.StatusOK, dto.VendorResponse{Vendor: *vendor})
}

// createTaxRate godoc
// @Summary Create a tax rate
// @Tags tax-rates
// @Accept  json
// @Produce  json
// @Param   taxRate body dto.CreateTaxRateRequest true "Tax rate as a fraction"
// @Success 201 {object} domain.TaxRate
// @Failure 400 {object} map[string]string "Rate outside 0..1"
// @Security BearerAuth
// @Router /tax-rates [post]
func (h *vendorHandler) createTaxRate(c *gin.Context) {
	var req dto.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rate, err := h.vendorService.CreateTaxRate(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create tax rate")
		return
	}
	c.JSON(http.StatusCreated, rate)
}

// listTaxRates godoc
// @Summary List tax rates
// @Tags tax-rates
// @Produce  json
// @Param   activeOnly query bool false "Only active rates"
// @Success 200 {array} domain.TaxRate
// @Security BearerAuth
// @Router /tax-rates [get]
func (h *vendorHandler) listTaxRates(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"
	rates, err := h.vendorService.ListTaxRates(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err, "Failed to list tax rates")
		return
	}
	c.JSON(http.StatusOK, rates)
}

// getTaxRate godoc
// @Summary Get a tax rate
// @Tags tax-rates
// @Produce  json
// @Param   id path string true "Tax rate ID"
// @Success 200 {object} domain.TaxRate
// @Failure 404 {object} map[string]string "Tax rate not found"
// @Security BearerAuth
// @Router /tax-rates/{id} [get]
func (h *vendorHandler) getTaxRate(c *gin.Context) {
	rate, err := h.vendorService.GetTaxRateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve tax rate")
		return
	}
	c.JSON(http.StatusOK, rate)
}
