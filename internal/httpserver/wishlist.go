package httpserver

import (
	"net/http"

	"beauty-storefront/internal/appstate"
	"beauty-storefront/internal/domain"
	"beauty-storefront/internal/pricing"
	"github.com/gin-gonic/gin"
)

type wishlistRequest struct {
	ProductID int `json:"productId" binding:"required,gt=0"`
}

type wishlistResponse struct {
	Items []domain.WishlistEntry `json:"items"`
	Count int                    `json:"count"`
}

func toWishlistResponse(state *appstate.AppState) wishlistResponse {
	items := state.Wishlist()
	if items == nil {
		items = []domain.WishlistEntry{}
	}
	return wishlistResponse{Items: items, Count: len(items)}
}

func (h *handlers) getWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, toWishlistResponse(stateFrom(c)))
}

// addWishlistItem answers 201 when the product was added and 200 when it
// was already there.
func (h *handlers) addWishlistItem(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId is required")
		return
	}
	entry, ok := h.wishlistEntry(c, req.ProductID)
	if !ok {
		return
	}
	state := stateFrom(c)
	status := http.StatusOK
	if state.AddToWishlist(entry) {
		status = http.StatusCreated
	}
	c.JSON(status, toWishlistResponse(state))
}

func (h *handlers) wishlistContains(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"productId": id, "inWishlist": stateFrom(c).IsInWishlist(id)})
}

func (h *handlers) toggleWishlistItem(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	state := stateFrom(c)
	var added bool
	if state.IsInWishlist(id) {
		added = state.ToggleWishlist(domain.WishlistEntry{ProductID: id})
	} else {
		entry, ok := h.wishlistEntry(c, id)
		if !ok {
			return
		}
		added = state.ToggleWishlist(entry)
	}
	resp := toWishlistResponse(state)
	c.JSON(http.StatusOK, gin.H{"productId": id, "inWishlist": added, "items": resp.Items, "count": resp.Count})
}

func (h *handlers) removeWishlistItem(c *gin.Context) {
	id, ok := intParam(c, "productId")
	if !ok {
		return
	}
	state := stateFrom(c)
	state.RemoveFromWishlist(id)
	c.JSON(http.StatusOK, toWishlistResponse(state))
}

func (h *handlers) wishlistEntry(c *gin.Context, productID int) (domain.WishlistEntry, bool) {
	p, err := h.products.Get(c.Request.Context(), productID)
	if err != nil {
		writeError(c, err)
		return domain.WishlistEntry{}, false
	}
	return domain.WishlistEntry{
		ProductID:  p.ID,
		Name:       p.Name,
		PriceLabel: pricing.FormatPrice(p.Price),
		UnitPrice:  p.Price,
		Brand:      p.Brand,
		Tag:        p.Tag,
		Image:      firstImage(p.Images),
	}, true
}
