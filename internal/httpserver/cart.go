package httpserver

import (
	"net/http"

	"beauty-storefront/internal/appstate"
	"beauty-storefront/internal/domain"
	"beauty-storefront/internal/pricing"
	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID int `json:"productId" binding:"required,gt=0"`
	Quantity  int `json:"quantity" binding:"max=999"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999"`
}

type cartResponse struct {
	Lines         []domain.CartLine `json:"lines"`
	TotalQuantity int               `json:"totalQuantity"`
	Subtotal      int64             `json:"subtotal"`
	SubtotalLabel string            `json:"subtotalLabel"`
}

func toCartResponse(state *appstate.AppState) cartResponse {
	lines := state.CartLines()
	resp := cartResponse{Lines: lines}
	if resp.Lines == nil {
		resp.Lines = []domain.CartLine{}
	}
	for _, l := range lines {
		resp.TotalQuantity += l.Quantity
		resp.Subtotal += l.TotalPrice()
	}
	resp.SubtotalLabel = pricing.FormatPrice(resp.Subtotal)
	return resp
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(stateFrom(c)))
}

// addCartItem looks the product up in the catalog so prices come from the
// server, then merges it into the cart.
func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId is required and quantity must not exceed 999")
		return
	}
	p, err := h.products.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	state := stateFrom(c)
	state.AddToCart(cartItemFromProduct(*p), req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(state))
}

func (h *handlers) updateCartItem(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "quantity is required and must not exceed 999")
		return
	}
	state := stateFrom(c)
	state.UpdateCartQuantity(id, *req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(state))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	state := stateFrom(c)
	state.RemoveFromCart(id)
	c.JSON(http.StatusOK, toCartResponse(state))
}

func cartItemFromProduct(p domain.Product) domain.CartItem {
	item := domain.CartItem{
		ProductID:     p.ID,
		Name:          p.Name,
		PriceLabel:    pricing.FormatPrice(p.Price),
		UnitPrice:     p.Price,
		DiscountLabel: pricing.MarkdownLabel(p.Price, p.OriginalPrice),
		Brand:         p.Brand,
		Tag:           p.Tag,
		Image:         firstImage(p.Images),
	}
	if p.OriginalPrice > 0 {
		item.OriginalPrice = pricing.FormatPrice(p.OriginalPrice)
	}
	return item
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
