package repositories

import (
	"context"

	"github.com/biztime/biztime_backend/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	// SaveInvoice inserts the invoice and fills in the generated ID,
	// Paid, AddDate and PaidDate from the database defaults.
	SaveInvoice(ctx context.Context, invoice *domain.Invoice) error
	FindInvoices(ctx context.Context) ([]domain.InvoiceSummary, error)
	FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error)
	// FindInvoiceWithCompany joins the invoice with its owning company.
	FindInvoiceWithCompany(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	DeleteInvoice(ctx context.Context, id int64) error
}
