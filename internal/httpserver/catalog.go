package httpserver

import (
	"net/http"
	"strconv"

	"beauty-storefront/internal/domain"
	"beauty-storefront/internal/pricing"
	"github.com/gin-gonic/gin"
)

// productResponse adds display labels to a catalog product.
type productResponse struct {
	domain.Product
	PriceLabel         string `json:"priceLabel"`
	OriginalPriceLabel string `json:"originalPriceLabel,omitempty"`
	DiscountLabel      string `json:"discountLabel,omitempty"`
}

func toProductResponse(p domain.Product) productResponse {
	resp := productResponse{
		Product:       p,
		PriceLabel:    pricing.FormatPrice(p.Price),
		DiscountLabel: pricing.MarkdownLabel(p.Price, p.OriginalPrice),
	}
	if p.OriginalPrice > 0 {
		resp.OriginalPriceLabel = pricing.FormatPrice(p.OriginalPrice)
	}
	return resp
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	results := make([]productResponse, len(products))
	for i, p := range products {
		results[i] = toProductResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}

func (h *handlers) getProduct(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*p))
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "results": categories})
}

// intParam parses a positive integer path parameter, answering 400 otherwise.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}
