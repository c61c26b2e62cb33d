package services

import (
	"context"

	"github.com/biztime/biztime_backend/internal/core/domain"
	"github.com/biztime/biztime_backend/internal/dto"
)

// InvoiceSvcFacade defines the service operations exposed to the invoice handlers.
type InvoiceSvcFacade interface {
	ListInvoices(ctx context.Context) ([]domain.InvoiceSummary, error)
	GetInvoiceByID(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error)
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
}
