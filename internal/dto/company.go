package dto

import (
	"github.com/biztime/biztime_backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a company.
// The code is derived from the name server-side, never client-supplied.
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateCompanyRequest defines the mutable fields of a company.
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyEnvelope wraps a single company for the response body.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// ListCompaniesResponse wraps the company listing.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToCompanyResponse converts a domain.Company to its response DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToListCompaniesResponse converts a slice of companies to the list response.
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	res := make([]CompanyResponse, len(companies))
	for i := range companies {
		res[i] = ToCompanyResponse(&companies[i])
	}
	return ListCompaniesResponse{Companies: res}
}
