package dto

import (
	"time"

	"github.com/biztime/biztime_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create an invoice.
// The required tag only catches an absent amt; handlers reject a zero
// amt separately, so invoices cannot be created for nothing.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" binding:"required"`
	Amt      decimal.Decimal `json:"amt" binding:"required"`
}

// UpdateInvoiceRequest defines the mutable fields of an invoice.
// As with creation, handlers reject a zero amt.
//
// Paid is a tri-state: true, false, or absent. An absent paid is
// treated as false (the invoice ends up unpaid), keeping the behavior
// clients already rely on while making the choice explicit.
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt" binding:"required"`
	Paid *bool           `json:"paid"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceSummaryResponse is the minimal projection used by the listing.
type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetailResponse is an invoice with its owning company nested in
// place of the bare comp_code.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// InvoiceEnvelope wraps a single invoice for the response body.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope wraps a joined invoice for the response body.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}

// ListInvoicesResponse wraps the invoice listing.
type ListInvoicesResponse struct {
	Invoices []InvoiceSummaryResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

// ToInvoiceDetailResponse converts a joined invoice to its response DTO.
func ToInvoiceDetailResponse(inv *domain.InvoiceWithCompany) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company:  ToCompanyResponse(&inv.Company),
	}
}

// ToListInvoicesResponse converts invoice summaries to the list response.
func ToListInvoicesResponse(invoices []domain.InvoiceSummary) ListInvoicesResponse {
	res := make([]InvoiceSummaryResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = InvoiceSummaryResponse{ID: inv.ID, CompCode: inv.CompCode}
	}
	return ListInvoicesResponse{Invoices: res}
}
