package pricing

import (
	"beauty-storefront/internal/domain"
)

// BuildQuote prices lines and applies v when it is non-nil. The discount is
// computed on the lines whose products v lists as eligible; a voucher with
// no eligible list applies to the whole cart.
func BuildQuote(lines []domain.CartLine, v *domain.Voucher) (domain.Quote, error) {
	var subtotal, base int64
	for _, l := range lines {
		total := l.TotalPrice()
		subtotal += total
		if v != nil && (len(v.EligibleProductIDs) == 0 || v.Eligible(l.ProductID)) {
			base += total
		}
	}

	q := domain.Quote{Subtotal: subtotal}
	if v != nil {
		d, err := ParseDiscount(v.DiscountLabel)
		if err != nil {
			return domain.Quote{}, err
		}
		q.VoucherCode = v.Code
		q.DiscountLabel = v.DiscountLabel
		q.Discount = d.Amount(base)
	}
	q.Total = q.Subtotal - q.Discount
	q.SubtotalLabel = FormatPrice(q.Subtotal)
	q.DiscountText = "-" + FormatPrice(q.Discount)
	q.TotalLabel = FormatPrice(q.Total)
	return q, nil
}
