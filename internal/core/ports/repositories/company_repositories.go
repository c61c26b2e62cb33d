package repositories

import (
	"context"

	"github.com/biztime/biztime_backend/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanies(ctx context.Context) ([]domain.Company, error)
	FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, company domain.Company) error
	DeleteCompany(ctx context.Context, code string) error
}
