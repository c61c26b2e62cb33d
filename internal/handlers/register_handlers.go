package handlers

import (
	portssvc "github.com/biztime/biztime_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	root := r.Group("")
	registerCompanyRoutes(root, services.Company)
	registerInvoiceRoutes(root, services.Invoice)
}
