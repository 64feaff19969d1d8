package domain

// CartItem is the payload the storefront sends when a product is put in the cart.
// Quantity is optional; when set it is the item's own default quantity.
type CartItem struct {
	ProductID     int    `json:"productId"`
	Name          string `json:"name"`
	PriceLabel    string `json:"price"`
	UnitPrice     int64  `json:"unitPrice"`
	OriginalPrice string `json:"originalPrice,omitempty"`
	DiscountLabel string `json:"discount,omitempty"`
	Brand         string `json:"brand,omitempty"`
	Tag           string `json:"tag,omitempty"`
	Image         string `json:"image,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
}

type CartLine struct {
	ProductID     int    `json:"productId"`
	Name          string `json:"name"`
	PriceLabel    string `json:"price"`
	UnitPrice     int64  `json:"unitPrice"`
	OriginalPrice string `json:"originalPrice,omitempty"`
	DiscountLabel string `json:"discount,omitempty"`
	Brand         string `json:"brand,omitempty"`
	Tag           string `json:"tag,omitempty"`
	Image         string `json:"image,omitempty"`
	Quantity      int    `json:"quantity"`
}

// TotalPrice is UnitPrice multiplied by Quantity.
func (l CartLine) TotalPrice() int64 {
	return l.UnitPrice * int64(l.Quantity)
}
