package domain

// Voucher is one ledger slot. ID names the slot and survives regeneration;
// the remaining fields describe the code currently held by the slot.
type Voucher struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	DiscountLabel      string `json:"discount"`
	Description        string `json:"description"`
	Redeemed           int    `json:"redeemed"`
	Cap                int    `json:"cap"`
	EligibleProductIDs []int  `json:"eligibleProductIds"`
}

// Remaining reports how many redemptions are left before the slot regenerates.
func (v Voucher) Remaining() int {
	return v.Cap - v.Redeemed
}

// Clone returns a copy that shares no memory with v.
func (v Voucher) Clone() Voucher {
	out := v
	if v.EligibleProductIDs != nil {
		out.EligibleProductIDs = append([]int(nil), v.EligibleProductIDs...)
	}
	return out
}

// Eligible reports whether productID is in the voucher's eligible list.
func (v Voucher) Eligible(productID int) bool {
	for _, id := range v.EligibleProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// VoucherTemplate is a candidate code drawn when a slot regenerates.
type VoucherTemplate struct {
	Code          string `json:"code" yaml:"code"`
	DiscountLabel string `json:"discount" yaml:"discount"`
	Description   string `json:"description" yaml:"description"`
}
