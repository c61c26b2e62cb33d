package services

import (
	"context"

	"github.com/biztime/biztime_backend/internal/core/domain"
	portsrepo "github.com/biztime/biztime_backend/internal/core/ports/repositories"
	portssvc "github.com/biztime/biztime_backend/internal/core/ports/services"
	"github.com/biztime/biztime_backend/internal/dto"
	"github.com/gosimple/slug"
)

type CompanyService struct {
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates the company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Ensure CompanyService implements the facade
var _ portssvc.CompanySvcFacade = (*CompanyService)(nil)

func (s *CompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.FindCompanies(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *CompanyService) GetCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByCode(ctx, code)
}

// CreateCompany derives the company code as a lowercase URL-safe slug of
// the name. The code is immutable afterwards.
func (s *CompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	company := domain.Company{
		Code:        slug.Make(req.Name),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	company := domain.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.companyRepo.UpdateCompany(ctx, company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, code string) error {
	return s.companyRepo.DeleteCompany(ctx, code)
}
