package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidDiscount indicates a discount label that is neither a flat
// amount ("50K", "30000") nor a percentage ("15%").
var ErrInvalidDiscount = errors.New("pricing: invalid discount label")

type Kind int

const (
	KindFlat Kind = iota
	KindPercent
)

func (k Kind) String() string {
	if k == KindPercent {
		return "percent"
	}
	return "flat"
}

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// Discount is a parsed voucher discount label.
type Discount struct {
	Kind Kind
	// Value is đồng for flat discounts and a percentage for percent discounts.
	Value decimal.Decimal
}

// ParseDiscount interprets a voucher label. "K" multiplies by one thousand.
func ParseDiscount(label string) (Discount, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	kind := KindFlat
	multiplier := decimal.NewFromInt(1)
	switch {
	case strings.HasSuffix(s, "%"):
		kind = KindPercent
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "K"):
		multiplier = thousand
		s = strings.TrimSuffix(s, "K")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Discount{}, fmt.Errorf("%w: %q", ErrInvalidDiscount, label)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Discount{}, fmt.Errorf("%w: %q", ErrInvalidDiscount, label)
	}
	if !v.IsPositive() {
		return Discount{}, fmt.Errorf("%w: %q must be positive", ErrInvalidDiscount, label)
	}
	if kind == KindPercent && v.GreaterThan(hundred) {
		return Discount{}, fmt.Errorf("%w: %q exceeds 100%%", ErrInvalidDiscount, label)
	}
	return Discount{Kind: kind, Value: v.Mul(multiplier)}, nil
}

// Amount returns the discount in whole đồng for a base amount. Percentages
// round down; flat discounts never exceed base.
func (d Discount) Amount(base int64) int64 {
	if base <= 0 {
		return 0
	}
	b := decimal.NewFromInt(base)
	var off decimal.Decimal
	if d.Kind == KindPercent {
		off = b.Mul(d.Value).Div(hundred).Floor()
	} else {
		off = decimal.Min(d.Value.Floor(), b)
	}
	return off.IntPart()
}
