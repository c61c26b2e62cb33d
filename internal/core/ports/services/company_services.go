package services

import (
	"context"

	"github.com/biztime/biztime_backend/internal/core/domain"
	"github.com/biztime/biztime_backend/internal/dto"
)

// CompanySvcFacade defines the service operations exposed to the company handlers.
type CompanySvcFacade interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	GetCompanyByCode(ctx context.Context, code string) (*domain.Company, error)
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error)
	DeleteCompany(ctx context.Context, code string) error
}
