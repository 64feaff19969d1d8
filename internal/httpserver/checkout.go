package httpserver

import (
	"html"
	"net/http"
	"strings"

	"beauty-storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	VoucherCode string `json:"voucherCode"`
}

func (h *handlers) quote(c *gin.Context) {
	var req quoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
	}
	q, err := stateFrom(c).Quote(req.VoucherCode)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *handlers) checkout(c *gin.Context) {
	var form domain.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "invalid body")
		return
	}
	order, err := stateFrom(c).Checkout(h.sanitizeForm(form))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// sanitizeForm strips markup from every free-text field since the order
// echoes them back to the storefront.
func (h *handlers) sanitizeForm(f domain.CheckoutForm) domain.CheckoutForm {
	f.FullName = h.clean(f.FullName)
	f.Phone = h.clean(f.Phone)
	f.Email = h.clean(f.Email)
	f.Address = h.clean(f.Address)
	f.Note = h.clean(f.Note)
	f.PaymentMethod = strings.ToLower(h.clean(f.PaymentMethod))
	f.VoucherCode = h.clean(f.VoucherCode)
	return f
}

// clean removes tags and undoes the entity escaping bluemonday applies to
// plain text, since the output is JSON rather than HTML.
func (h *handlers) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(h.sanitizer.Sanitize(s)))
}
