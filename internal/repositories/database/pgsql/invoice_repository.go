package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/biztime/biztime_backend/internal/apperrors"
	"github.com/biztime/biztime_backend/internal/core/domain"
	portsrepo "github.com/biztime/biztime_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// NewPgxInvoiceRepository creates a new repository for invoice data.
func NewPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepository
var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	// paid, add_date and paid_date come from the column defaults.
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, paid, add_date, paid_date;
	`
	err := r.Pool.QueryRow(ctx, query, invoice.CompCode, invoice.Amt).Scan(
		&invoice.ID,
		&invoice.Paid,
		&invoice.AddDate,
		&invoice.PaidDate,
	)
	if err != nil {
		// A foreign key violation on comp_code is deliberately left
		// unclassified and surfaces as a 500.
		return apperrors.NewAppError(500, "failed to save invoice for company "+invoice.CompCode, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context) ([]domain.InvoiceSummary, error) {
	query := `SELECT i.id, i.comp_code FROM invoices i ORDER BY i.id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()
	invoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.InvoiceSummary])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.InvoiceSummary{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect invoice rows", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date
		FROM invoices i
		WHERE i.id = $1;
	`
	var invoice domain.Invoice
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.CompCode,
		&invoice.Amt,
		&invoice.Paid,
		&invoice.AddDate,
		&invoice.PaidDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invalid invoice ID: " + strconv.FormatInt(id, 10))
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID", err)
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceWithCompany(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON i.comp_code = c.code
		WHERE i.id = $1;
	`
	var inv domain.InvoiceWithCompany
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&inv.PaidDate,
		&inv.Company.Code,
		&inv.Company.Name,
		&inv.Company.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invalid invoice ID: " + strconv.FormatInt(id, 10))
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice with company", err)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		invoice.Amt,
		invoice.Paid,
		invoice.PaidDate,
		invoice.ID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invalid invoice ID: " + strconv.FormatInt(invoice.ID, 10))
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	query := `DELETE FROM invoices WHERE id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invalid invoice ID: " + strconv.FormatInt(id, 10))
	}
	return nil
}
