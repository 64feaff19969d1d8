package httpserver

import (
	"net/http"

	"beauty-storefront/internal/appstate"
	"beauty-storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

type sessionResponse struct {
	SessionID string            `json:"sessionId"`
	Profile   appstate.Profile  `json:"profile"`
	Vouchers  []voucherResponse `json:"vouchers"`
}

func (h *handlers) createSession(c *gin.Context) {
	id, state, err := h.sessions.Issue()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header(sessionHeader, id)
	c.JSON(http.StatusCreated, sessionResponse{
		SessionID: id,
		Profile:   state.Profile(),
		Vouchers:  toVoucherResponses(state.Vouchers()),
	})
}

func (h *handlers) endSession(c *gin.Context) {
	if err := h.sessions.End(c.GetString(sessionCtxKey)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type voucherResponse struct {
	domain.Voucher
	Remaining int `json:"remaining"`
}

func toVoucherResponses(vs []domain.Voucher) []voucherResponse {
	out := make([]voucherResponse, len(vs))
	for i, v := range vs {
		out[i] = voucherResponse{Voucher: v, Remaining: v.Remaining()}
	}
	return out
}
