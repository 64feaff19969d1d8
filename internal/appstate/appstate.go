// Package appstate holds the per-shopper storefront state: the voucher
// ledger, the cart, the wishlist and the cosmetic login flag. An AppState is
// created per session and handed to whatever needs it.
package appstate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"beauty-storefront/internal/domain"
	"beauty-storefront/internal/pricing"
	"beauty-storefront/internal/service/cart"
	"beauty-storefront/internal/service/voucher"
	"beauty-storefront/internal/service/wishlist"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCart indicates a checkout with nothing in the cart.
	ErrEmptyCart = errors.New("appstate: cart is empty")
	// ErrInvalidCheckout indicates a checkout form with missing required fields.
	ErrInvalidCheckout = errors.New("appstate: invalid checkout form")
	// ErrUnknownVoucher indicates a voucher code no slot currently holds.
	ErrUnknownVoucher = errors.New("appstate: unknown voucher code")
)

type Options struct {
	Ledger voucher.Options
	// RefreshInterval drives the periodic voucher refresh. Zero uses
	// voucher.DefaultRefreshInterval.
	RefreshInterval time.Duration
	Clock           func() time.Time
	Logger          *zap.Logger
}

// Profile is the cosmetic login state. Nothing is authenticated.
type Profile struct {
	LoggedIn bool   `json:"loggedIn"`
	Name     string `json:"name,omitempty"`
}

type AppState struct {
	ledger   *voucher.Ledger
	cart     *cart.Store
	wishlist *wishlist.Store

	mu      sync.RWMutex
	profile Profile

	clock  func() time.Time
	logger *zap.Logger

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// New builds the state and starts the voucher refresh loop. Call Close to
// stop it.
func New(opts Options) (*AppState, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ledgerOpts := opts.Ledger
	if ledgerOpts.Logger == nil {
		ledgerOpts.Logger = logger
	}
	if ledgerOpts.Clock == nil {
		ledgerOpts.Clock = opts.Clock
	}
	ledger, err := voucher.New(ledgerOpts)
	if err != nil {
		return nil, fmt.Errorf("init voucher ledger: %w", err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &AppState{
		ledger:   ledger,
		cart:     cart.New(),
		wishlist: wishlist.New(),
		clock:    clock,
		logger:   logger,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		ledger.Run(ctx, opts.RefreshInterval)
	}()
	return s, nil
}

// Close stops the voucher refresh loop and waits for it to exit. It is safe
// to call more than once.
func (s *AppState) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}

func (s *AppState) Redeem(slotID string) (voucher.Redemption, error) {
	return s.ledger.Redeem(slotID)
}

func (s *AppState) CopyCode(code string) {
	s.ledger.CopyCode(code)
}

func (s *AppState) Vouchers() []domain.Voucher {
	return s.ledger.Vouchers()
}

func (s *AppState) Voucher(slotID string) (domain.Voucher, error) {
	return s.ledger.Get(slotID)
}

func (s *AppState) CopiedCodes() []string {
	return s.ledger.CopiedCodes()
}

func (s *AppState) AddToCart(item domain.CartItem, quantity int) {
	s.cart.Add(item, quantity)
}

func (s *AppState) RemoveFromCart(productID int) {
	s.cart.Remove(productID)
}

func (s *AppState) UpdateCartQuantity(productID, quantity int) {
	s.cart.UpdateQuantity(productID, quantity)
}

func (s *AppState) CartLines() []domain.CartLine {
	return s.cart.Lines()
}

func (s *AppState) CartQuantity() int {
	return s.cart.TotalQuantity()
}

func (s *AppState) AddToWishlist(entry domain.WishlistEntry) bool {
	return s.wishlist.Add(entry)
}

func (s *AppState) RemoveFromWishlist(productID int) {
	s.wishlist.Remove(productID)
}

func (s *AppState) ToggleWishlist(entry domain.WishlistEntry) bool {
	return s.wishlist.Toggle(entry)
}

func (s *AppState) IsInWishlist(productID int) bool {
	return s.wishlist.Contains(productID)
}

func (s *AppState) Wishlist() []domain.WishlistEntry {
	return s.wishlist.Entries()
}

// Login flips the profile to logged in. Credentials are not checked.
func (s *AppState) Login(name string) Profile {
	return s.setProfile(Profile{LoggedIn: true, Name: strings.TrimSpace(name)})
}

// Register behaves like Login; there is no account store.
func (s *AppState) Register(name string) Profile {
	return s.Login(name)
}

func (s *AppState) Logout() Profile {
	return s.setProfile(Profile{})
}

func (s *AppState) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *AppState) setProfile(p Profile) Profile {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return p
}

// Quote prices the cart, applying the voucher whose current base code is
// voucherCode. An empty code prices the cart without a discount.
func (s *AppState) Quote(voucherCode string) (domain.Quote, error) {
	return s.quote(s.cart.Lines(), voucherCode)
}

func (s *AppState) quote(lines []domain.CartLine, voucherCode string) (domain.Quote, error) {
	var v *domain.Voucher
	if code := strings.TrimSpace(voucherCode); code != "" {
		found, err := s.ledger.FindByCode(code)
		if err != nil {
			if errors.Is(err, voucher.ErrSlotNotFound) {
				return domain.Quote{}, ErrUnknownVoucher
			}
			return domain.Quote{}, err
		}
		v = &found
	}
	return pricing.BuildQuote(lines, v)
}

// Checkout turns the cart into an order receipt and empties the cart.
// Nothing is charged and the order is not kept.
func (s *AppState) Checkout(form domain.CheckoutForm) (domain.Order, error) {
	if strings.TrimSpace(form.FullName) == "" || strings.TrimSpace(form.Phone) == "" || strings.TrimSpace(form.Address) == "" {
		return domain.Order{}, ErrInvalidCheckout
	}
	lines := s.cart.Drain()
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	quote, err := s.quote(lines, form.VoucherCode)
	if err != nil {
		s.cart.Restore(lines)
		return domain.Order{}, err
	}
	if strings.TrimSpace(form.PaymentMethod) == "" {
		form.PaymentMethod = "cod"
	}
	order := domain.Order{
		ID:       uuid.NewString(),
		Form:     form,
		Lines:    lines,
		Quote:    quote,
		PlacedAt: s.clock().UTC(),
	}
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(lines)),
		zap.Int64("total", quote.Total),
		zap.String("voucher_code", quote.VoucherCode),
	)
	return order, nil
}
