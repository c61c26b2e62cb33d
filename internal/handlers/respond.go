package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/biztime/biztime_backend/internal/apperrors"
	"github.com/biztime/biztime_backend/internal/dto"
	"github.com/biztime/biztime_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError is the single point converting any error into an HTTP
// response. Classified errors keep their status and message; everything
// else becomes a generic 500 so no internals leak to clients.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Int("status", appErr.Code), slog.String("error", appErr.Error()))
		} else {
			logger.Warn("Request rejected", slog.Int("status", appErr.Code), slog.String("message", appErr.Message))
		}
		c.JSON(appErr.Code, dto.ErrorResponse{
			Error: dto.ErrorBody{Message: appErr.Message, Status: appErr.Code},
		})
		return
	}

	logger.Error("Unclassified error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: dto.ErrorBody{Message: "Internal server error", Status: http.StatusInternalServerError},
	})
}

// respondValidationError rejects a request whose body failed binding.
func respondValidationError(c *gin.Context, message string) {
	respondError(c, apperrors.NewValidationFailedError(message))
}
