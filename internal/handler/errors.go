package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/transport/httpdto"
	apperrors "github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/errors"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/logger"
)

// respondError maps service errors to HTTP responses. Store and provider
// failures are logged with their cause but surfaced with a non-committal
// message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("missing required fields", "VALIDATION_FAILED"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
	case errors.Is(err, apperrors.ErrNoCredits):
		c.JSON(http.StatusPaymentRequired, httpdto.NewErrorResponse("no credits remaining", "NO_CREDITS"))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("not found", "NOT_FOUND"))
	default:
		if l := logger.GetGlobalLogger(); l != nil {
			l.ErrorCtx(c.Request.Context(), "request failed: %s", err)
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("internal error", "INTERNAL_ERROR"))
	}
}
