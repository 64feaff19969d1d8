package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type copyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *handlers) listVouchers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vouchers": toVoucherResponses(stateFrom(c).Vouchers())})
}

func (h *handlers) redeemVoucher(c *gin.Context) {
	slotID := c.Param("slotId")
	res, err := stateFrom(c).Redeem(slotID)
	if err != nil {
		writeError(c, err)
		return
	}
	if res.Regenerated {
		h.logger.Debug("voucher slot exhausted by redeem", zap.String("slot_id", slotID), zap.String("code", res.Code))
	}
	c.JSON(http.StatusOK, res)
}

// voucherProducts lists the catalog products a slot's voucher applies to.
func (h *handlers) voucherProducts(c *gin.Context) {
	slotID := c.Param("slotId")
	v, err := stateFrom(c).Voucher(slotID)
	if err != nil {
		writeError(c, err)
		return
	}
	products, err := h.products.ListByIDs(c.Request.Context(), v.EligibleProductIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	results := make([]productResponse, len(products))
	for i, p := range products {
		results[i] = toProductResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"slotId": slotID, "count": len(results), "results": results})
}

func (h *handlers) listCopiedCodes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"codes": copiedCodes(c)})
}

func (h *handlers) copyCode(c *gin.Context) {
	var req copyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code is required")
		return
	}
	stateFrom(c).CopyCode(req.Code)
	c.JSON(http.StatusOK, gin.H{"codes": copiedCodes(c)})
}

func copiedCodes(c *gin.Context) []string {
	codes := stateFrom(c).CopiedCodes()
	if codes == nil {
		codes = []string{}
	}
	return codes
}
