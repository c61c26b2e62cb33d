package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/biztime/biztime_backend/internal/apperrors"
	portssvc "github.com/biztime/biztime_backend/internal/core/ports/services"
	"github.com/biztime/biztime_backend/internal/dto"
	"github.com/biztime/biztime_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers all invoice-related routes.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("", h.createInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// invoiceIDParam parses the id path parameter. A non-numeric id cannot
// match any invoice, so it reports the same 404 as an unknown id.
func invoiceIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFoundError("invalid invoice ID: " + raw)
	}
	return id, nil
}

// listInvoices returns the id and comp_code of every invoice. Full
// detail requires a per-invoice read.
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice returns an invoice with its owning company nested.
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	id, err := invoiceIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceDetailEnvelope{Invoice: dto.ToInvoiceDetailResponse(invoice)})
}

// createInvoice creates an unpaid invoice for a company.
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	// The required tag does not catch a zero amt: JSON 0 decodes to a
	// non-zero decimal struct, so check IsZero explicitly.
	if err := c.ShouldBindJSON(&req); err != nil || req.Amt.IsZero() {
		respondValidationError(c, "'comp_code' and 'amt' are required")
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Invoice created", slog.Int64("id", invoice.ID), slog.String("comp_code", invoice.CompCode))
	c.JSON(http.StatusCreated, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// updateInvoice overwrites amt and applies the paid-date transition.
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	id, err := invoiceIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateInvoiceRequest
	// Rejects a malformed body, an absent amt and a zero amt alike; the
	// required tag alone misses the zero case.
	if err := c.ShouldBindJSON(&req); err != nil || req.Amt.IsZero() {
		respondValidationError(c, "a valid JSON body with a non-zero 'amt' is required")
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// deleteInvoice removes an invoice and acknowledges the deletion.
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := invoiceIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Invoice deleted", slog.Int64("id", id))
	c.JSON(http.StatusOK, dto.NewDeleteResponse())
}
