package domain

type WishlistEntry struct {
	ProductID  int    `json:"productId"`
	Name       string `json:"name"`
	PriceLabel string `json:"price"`
	UnitPrice  int64  `json:"unitPrice"`
	Brand      string `json:"brand,omitempty"`
	Tag        string `json:"tag,omitempty"`
	Image      string `json:"image,omitempty"`
}
