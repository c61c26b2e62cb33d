package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/biztime/biztime_backend/internal/core/ports/services"
	"github.com/biztime/biztime_backend/internal/dto"
	"github.com/biztime/biztime_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
	}
}

// registerCompanyRoutes registers all company-related routes.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.GET("/:code", h.getCompany)
		companies.POST("", h.createCompany)
		companies.PUT("/:code", h.updateCompany)
		companies.DELETE("/:code", h.deleteCompany)
	}
}

// listCompanies returns every company, unfiltered and unpaginated.
func (h *companyHandler) listCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompany returns the company matching the code path parameter.
func (h *companyHandler) getCompany(c *gin.Context) {
	code := c.Param("code")

	company, err := h.companyService.GetCompanyByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// createCompany creates a company; the code is derived from the name.
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "the company's 'name' and 'description' are required")
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Company created", slog.String("code", company.Code))
	c.JSON(http.StatusCreated, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// updateCompany replaces a company's name and description. The code is
// immutable.
func (h *companyHandler) updateCompany(c *gin.Context) {
	code := c.Param("code")
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "'name' and 'description' are required")
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), code, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// deleteCompany removes a company and acknowledges the deletion.
func (h *companyHandler) deleteCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	if err := h.companyService.DeleteCompany(c.Request.Context(), code); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Company deleted", slog.String("code", code))
	c.JSON(http.StatusOK, dto.NewDeleteResponse())
}
