package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an invoice issued to a company.
//
// PaidDate is non-nil exactly when Paid is true. The schema does not
// enforce this; the invoice service's update logic does.
type Invoice struct {
	ID       int64           `json:"id" db:"id"`
	CompCode string          `json:"comp_code" db:"comp_code"` // FK to Company.Code
	Amt      decimal.Decimal `json:"amt" db:"amt"`
	Paid     bool            `json:"paid" db:"paid"`
	AddDate  time.Time       `json:"add_date" db:"add_date"` // Set once at creation
	PaidDate *time.Time      `json:"paid_date" db:"paid_date"`
}

// InvoiceSummary is the minimal projection returned by invoice listing.
// Full detail requires a per-invoice read.
type InvoiceSummary struct {
	ID       int64  `json:"id" db:"id"`
	CompCode string `json:"comp_code" db:"comp_code"`
}

// InvoiceWithCompany is an invoice joined with its owning company.
type InvoiceWithCompany struct {
	Invoice
	Company Company `json:"company"`
}
