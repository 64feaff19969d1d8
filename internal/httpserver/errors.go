package httpserver

import (
	"errors"
	"net/http"

	"beauty-storefront/internal/appstate"
	"beauty-storefront/internal/domain"
	"beauty-storefront/internal/service/session"
	"beauty-storefront/internal/service/voucher"
	"github.com/gin-gonic/gin"
)

// exhaustedReason is the body reason of a redeem that hit a full slot.
const exhaustedReason = "EXHAUSTED"

// writeError maps service errors to a status and a JSON body. Unknown
// errors become 500 and are attached to the context for the request log.
func writeError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

func errorResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, voucher.ErrExhausted):
		return http.StatusConflict, gin.H{"error": err.Error(), "reason": exhaustedReason}
	case errors.Is(err, voucher.ErrSlotNotFound):
		return http.StatusNotFound, gin.H{"error": err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": err.Error()}
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusUnauthorized, gin.H{"error": err.Error()}
	case errors.Is(err, appstate.ErrInvalidCheckout):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, appstate.ErrEmptyCart), errors.Is(err, appstate.ErrUnknownVoucher):
		return http.StatusUnprocessableEntity, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "internal server error"}
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
