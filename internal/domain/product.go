package domain

import "time"

// Product is a catalog entry. Prices are whole đồng.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand,omitempty"`
	CategoryKey   string    `json:"category,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"originalPrice,omitempty"`
	Tag           string    `json:"tag,omitempty"`
	Images        []string  `json:"images,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
