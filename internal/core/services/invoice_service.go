package services

import (
	"context"
	"time"

	"github.com/biztime/biztime_backend/internal/core/domain"
	portsrepo "github.com/biztime/biztime_backend/internal/core/ports/repositories"
	portssvc "github.com/biztime/biztime_backend/internal/core/ports/services"
	"github.com/biztime/biztime_backend/internal/dto"
)

type InvoiceService struct {
	invoiceRepo portsrepo.InvoiceRepository
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// Ensure InvoiceService implements the facade
var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.InvoiceSummary, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		return []domain.InvoiceSummary{}, nil
	}
	return invoices, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error) {
	return s.invoiceRepo.FindInvoiceWithCompany(ctx, id)
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	invoice := domain.Invoice{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	}
	// New invoices start unpaid; paid, add_date and paid_date come back
	// from the column defaults.
	if err := s.invoiceRepo.SaveInvoice(ctx, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice overwrites amt and applies the paid-date transition:
// an unpaid invoice marked paid is stamped with the current time,
// marking an invoice unpaid clears the stamp, and re-marking a paid
// invoice paid keeps the original stamp.
//
// The read and the write are two statements, not a transaction; a
// concurrent update to the same invoice between them can race. Accepted
// limitation for this API.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An absent paid field means unpaid.
	paid := req.Paid != nil && *req.Paid

	var paidDate *time.Time
	switch {
	case existing.PaidDate == nil && paid:
		now := time.Now()
		paidDate = &now
	case !paid:
		paidDate = nil
	default:
		paidDate = existing.PaidDate
	}

	updated := domain.Invoice{
		ID:       existing.ID,
		CompCode: existing.CompCode,
		Amt:      req.Amt,
		Paid:     paid,
		AddDate:  existing.AddDate,
		PaidDate: paidDate,
	}
	if err := s.invoiceRepo.UpdateInvoice(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	return s.invoiceRepo.DeleteInvoice(ctx, id)
}
