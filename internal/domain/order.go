package domain

import "time"

// CheckoutForm holds the fields of the storefront checkout form.
type CheckoutForm struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address"`
	Note          string `json:"note,omitempty"`
	PaymentMethod string `json:"paymentMethod"`
	VoucherCode   string `json:"voucherCode,omitempty"`
}

// Quote is the price breakdown of a cart with an optional voucher applied.
type Quote struct {
	Subtotal      int64  `json:"subtotal"`
	Discount      int64  `json:"discount"`
	Total         int64  `json:"total"`
	VoucherCode   string `json:"voucherCode,omitempty"`
	DiscountLabel string `json:"discountLabel,omitempty"`
	SubtotalLabel string `json:"subtotalLabel"`
	DiscountText  string `json:"discountText"`
	TotalLabel    string `json:"totalLabel"`
}

// Order is the receipt returned by a checkout. Nothing is charged or stored.
type Order struct {
	ID       string       `json:"id"`
	Form     CheckoutForm `json:"form"`
	Lines    []CartLine   `json:"lines"`
	Quote    Quote        `json:"quote"`
	PlacedAt time.Time    `json:"placedAt"`
}
