package appstate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"beauty-storefront/internal/domain"
	"beauty-storefront/internal/service/voucher"
)

func testSlots() []domain.Voucher {
	return []domain.Voucher{
		{ID: "v1", Code: "BEA50", DiscountLabel: "50K", Redeemed: 99, Cap: voucher.DefaultCap, EligibleProductIDs: []int{1, 2, 3, 4, 5}},
		{ID: "v2", Code: "GLOW15", DiscountLabel: "15%", Redeemed: 10, Cap: voucher.DefaultCap, EligibleProductIDs: []int{1, 1, 1, 1, 1}},
		{ID: "v3", Code: "LIPS30", DiscountLabel: "30K", Redeemed: 10, Cap: voucher.DefaultCap, EligibleProductIDs: []int{6, 7, 8, 9, 10}},
		{ID: "v4", Code: "SKIN20", DiscountLabel: "20%", Redeemed: 10, Cap: voucher.DefaultCap, EligibleProductIDs: []int{2, 4, 6, 8, 10}},
	}
}

func newTestState(t *testing.T) *AppState {
	t.Helper()
	s, err := New(Options{
		Ledger: voucher.Options{
			Catalog: []domain.VoucherTemplate{{Code: "FRESH100", DiscountLabel: "100K"}},
			Rand:    voucher.NewSource(1),
			Slots:   testSlots(),
		},
		RefreshInterval: time.Hour,
		Clock:           func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestNewRejectsBadLedgerOptions(t *testing.T) {
	_, err := New(Options{Ledger: voucher.Options{Catalog: []domain.VoucherTemplate{}}})
	if !errors.Is(err, voucher.ErrEmptyCatalog) {
		t.Fatalf("expected empty catalog error, got %v", err)
	}
}

func TestCloseStopsRefreshLoop(t *testing.T) {
	s, err := New(Options{RefreshInterval: time.Millisecond})
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Close did not return")
	}
	select {
	case <-s.done:
	default:
		t.Fatalf("refresh loop still running after Close")
	}
}

func TestRedeemEndToEnd(t *testing.T) {
	s := newTestState(t)

	res, err := s.Redeem("v1")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if !strings.HasPrefix(res.DisplayCode, "BEA50") {
		t.Fatalf("unexpected display code %q", res.DisplayCode)
	}
	v, err := s.Voucher("v1")
	if err != nil {
		t.Fatalf("voucher: %v", err)
	}
	if v.Redeemed != 0 || v.Code != "FRESH100" {
		t.Fatalf("expected regenerated slot, got %+v", v)
	}
	if _, err := s.Redeem("v1"); err != nil {
		t.Fatalf("second redeem: %v", err)
	}
	if v, _ := s.Voucher("v1"); v.Redeemed != 1 {
		t.Fatalf("expected 1 redemption on fresh slot, got %d", v.Redeemed)
	}
	if codes := s.CopiedCodes(); len(codes) != 2 || codes[0] != res.DisplayCode {
		t.Fatalf("unexpected copied codes %v", codes)
	}
}

func TestCartAndWishlistDelegation(t *testing.T) {
	s := newTestState(t)

	s.AddToCart(domain.CartItem{ProductID: 5, UnitPrice: 1000}, 2)
	s.AddToCart(domain.CartItem{ProductID: 5, UnitPrice: 1000}, 3)
	if lines := s.CartLines(); len(lines) != 1 || lines[0].Quantity != 5 {
		t.Fatalf("unexpected cart %+v", lines)
	}
	s.UpdateCartQuantity(5, 0)
	if s.CartQuantity() != 0 {
		t.Fatalf("expected empty cart after zero quantity")
	}

	s.AddToWishlist(domain.WishlistEntry{ProductID: 3})
	s.AddToWishlist(domain.WishlistEntry{ProductID: 3})
	if !s.IsInWishlist(3) || len(s.Wishlist()) != 1 {
		t.Fatalf("unexpected wishlist %+v", s.Wishlist())
	}
	if s.ToggleWishlist(domain.WishlistEntry{ProductID: 3}) {
		t.Fatalf("toggle should remove present entry")
	}
	s.RemoveFromWishlist(3)
	if s.IsInWishlist(3) {
		t.Fatalf("expected product 3 removed")
	}
}

func TestProfileFlips(t *testing.T) {
	s := newTestState(t)
	if s.Profile().LoggedIn {
		t.Fatalf("new state must be logged out")
	}
	p := s.Login("  Lan  ")
	if !p.LoggedIn || p.Name != "Lan" {
		t.Fatalf("unexpected profile %+v", p)
	}
	s.Logout()
	if s.Profile().LoggedIn {
		t.Fatalf("expected logged out")
	}
	if p := s.Register("Mai"); !p.LoggedIn || s.Profile().Name != "Mai" {
		t.Fatalf("register should log in, got %+v", p)
	}
}

func TestQuote(t *testing.T) {
	s := newTestState(t)
	s.AddToCart(domain.CartItem{ProductID: 1, UnitPrice: 200000}, 1)
	s.AddToCart(domain.CartItem{ProductID: 9, UnitPrice: 100000}, 1)

	q, err := s.Quote("glow15")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if q.Subtotal != 300000 || q.Discount != 30000 || q.Total != 270000 || q.VoucherCode != "GLOW15" {
		t.Fatalf("unexpected quote %+v", q)
	}

	q, err = s.Quote("")
	if err != nil || q.Discount != 0 || q.Total != 300000 {
		t.Fatalf("unexpected plain quote %+v err=%v", q, err)
	}

	if _, err := s.Quote("NOPE"); !errors.Is(err, ErrUnknownVoucher) {
		t.Fatalf("expected unknown voucher, got %v", err)
	}
}

func TestCheckout(t *testing.T) {
	s := newTestState(t)
	form := domain.CheckoutForm{FullName: "Lan", Phone: "0900000000", Address: "1 Le Loi"}

	if _, err := s.Checkout(form); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if _, err := s.Checkout(domain.CheckoutForm{FullName: "Lan"}); !errors.Is(err, ErrInvalidCheckout) {
		t.Fatalf("expected invalid checkout, got %v", err)
	}

	s.AddToCart(domain.CartItem{ProductID: 7, UnitPrice: 150000}, 2)
	form.VoucherCode = "LIPS30"
	order, err := s.Checkout(form)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.ID == "" || len(order.Lines) != 1 || order.Quote.Total != 270000 {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Form.PaymentMethod != "cod" {
		t.Fatalf("expected default payment method, got %q", order.Form.PaymentMethod)
	}
	if !order.PlacedAt.Equal(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected placedAt %v", order.PlacedAt)
	}
	if len(s.CartLines()) != 0 {
		t.Fatalf("cart must be empty after checkout")
	}
}

func TestCheckoutUnknownVoucherKeepsCart(t *testing.T) {
	s := newTestState(t)
	s.AddToCart(domain.CartItem{ProductID: 7, UnitPrice: 150000}, 1)
	_, err := s.Checkout(domain.CheckoutForm{FullName: "Lan", Phone: "09", Address: "x", VoucherCode: "NOPE"})
	if !errors.Is(err, ErrUnknownVoucher) {
		t.Fatalf("expected unknown voucher, got %v", err)
	}
	if len(s.CartLines()) != 1 {
		t.Fatalf("failed checkout must keep the cart")
	}
}

func TestCheckoutConcurrentAddsConserveUnits(t *testing.T) {
	s := newTestState(t)
	form := domain.CheckoutForm{FullName: "Lan", Phone: "0900000000", Address: "1 Le Loi"}
	const adds = 3000

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < adds; i++ {
			s.AddToCart(domain.CartItem{ProductID: 1 + i%4, UnitPrice: 10000}, 1)
		}
	}()

	ordered := 0
	checkout := func() {
		order, err := s.Checkout(form)
		if errors.Is(err, ErrEmptyCart) {
			return
		}
		if err != nil {
			t.Fatalf("checkout: %v", err)
		}
		for _, l := range order.Lines {
			ordered += l.Quantity
		}
	}
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			checkout()
		}
	}
	checkout()

	if remaining := s.CartQuantity(); ordered+remaining != adds {
		t.Fatalf("added %d units, ordered %d, %d left in cart", adds, ordered, remaining)
	}
}
