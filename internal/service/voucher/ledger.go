package voucher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"beauty-storefront/internal/domain"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	// SlotCount is the fixed number of voucher slots held by a ledger.
	SlotCount = 4
	// DefaultCap is the redemption cap of every slot.
	DefaultCap = 100
	// DefaultProductIDBound is the upper bound of drawn eligible product ids.
	DefaultProductIDBound = 10
	// DefaultRefreshInterval is how often Run replaces the whole voucher set.
	DefaultRefreshInterval = 5 * time.Minute

	eligibleCount = 5
	suffixLength  = 4
)

// Options configures a Ledger. Zero values fall back to defaults.
type Options struct {
	Catalog        []domain.VoucherTemplate
	Rand           Source
	Clock          func() time.Time
	ProductIDBound int
	// Slots replaces the randomly drawn initial slots. It must hold exactly
	// SlotCount vouchers with 0 <= Redeemed <= Cap.
	Slots  []domain.Voucher
	Logger *zap.Logger
}

// Redemption is the outcome of a successful Redeem call.
type Redemption struct {
	SlotID string `json:"slotId"`
	// Code is the base code that was consumed.
	Code string `json:"code"`
	// DisplayCode is Code plus a random suffix; it is what the shopper copies.
	DisplayCode string `json:"displayCode"`
	// Regenerated reports that this call used the last unit and the slot now
	// holds a freshly drawn code.
	Regenerated bool `json:"regenerated"`
}

// Ledger tracks the active voucher slots and the codes a shopper copied.
// All methods are safe for concurrent use; Redeem and Refresh serialise on
// a single ledger-wide lock.
type Ledger struct {
	mu        sync.Mutex
	slots     []domain.Voucher
	copied    []string
	copiedSet map[string]struct{}

	catalog []domain.VoucherTemplate
	rnd     Source
	clock   func() time.Time
	bound   int
	logger  *zap.Logger
}

// New builds a ledger holding SlotCount vouchers.
func New(opts Options) (*Ledger, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, t := range catalog {
		if strings.TrimSpace(t.Code) == "" {
			return nil, fmt.Errorf("%w: entry %d: code required", ErrInvalidCatalog, i)
		}
	}
	l := &Ledger{
		catalog:   append([]domain.VoucherTemplate(nil), catalog...),
		rnd:       opts.Rand,
		clock:     opts.Clock,
		bound:     opts.ProductIDBound,
		logger:    opts.Logger,
		copiedSet: make(map[string]struct{}),
	}
	if l.rnd == nil {
		l.rnd = defaultSource()
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.bound <= 0 {
		l.bound = DefaultProductIDBound
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}

	if opts.Slots != nil {
		if err := validateSlots(opts.Slots); err != nil {
			return nil, err
		}
		l.slots = make([]domain.Voucher, len(opts.Slots))
		for i, v := range opts.Slots {
			l.slots[i] = v.Clone()
		}
		return l, nil
	}

	l.slots = make([]domain.Voucher, SlotCount)
	for i := range l.slots {
		t := l.catalog[i%len(l.catalog)]
		l.slots[i] = domain.Voucher{
			ID:                 fmt.Sprintf("v%d", i+1),
			Code:               t.Code,
			DiscountLabel:      t.DiscountLabel,
			Description:        t.Description,
			Redeemed:           between(l.rnd, 10, 89),
			Cap:                DefaultCap,
			EligibleProductIDs: l.drawEligible(),
		}
	}
	return l, nil
}

func validateSlots(slots []domain.Voucher) error {
	if len(slots) != SlotCount {
		return fmt.Errorf("%w: want %d slots, got %d", ErrInvalidSlots, SlotCount, len(slots))
	}
	seen := make(map[string]struct{}, len(slots))
	for _, v := range slots {
		if v.ID == "" || v.Code == "" {
			return fmt.Errorf("%w: id and code required", ErrInvalidSlots)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidSlots, v.ID)
		}
		seen[v.ID] = struct{}{}
		if v.Cap <= 0 || v.Redeemed < 0 || v.Redeemed > v.Cap {
			return fmt.Errorf("%w: slot %q redeemed %d of cap %d", ErrInvalidSlots, v.ID, v.Redeemed, v.Cap)
		}
	}
	return nil
}

// Redeem consumes one unit of the slot's current code. When that unit was
// the last one the slot is regenerated before the lock is released, so the
// returned Code may no longer be the slot's code afterwards.
func (l *Ledger) Redeem(slotID string) (Redemption, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(slotID)
	if idx < 0 {
		return Redemption{}, ErrSlotNotFound
	}
	slot := &l.slots[idx]
	if slot.Redeemed >= slot.Cap {
		return Redemption{}, ErrExhausted
	}

	code := slot.Code
	slot.Redeemed++
	regenerated := false
	if slot.Redeemed == slot.Cap {
		l.regenerate(slot)
		regenerated = true
		l.logger.Info("voucher slot regenerated",
			zap.String("slot_id", slot.ID),
			zap.String("old_code", code),
			zap.String("new_code", slot.Code),
		)
	}

	display := code + randomSuffix(l.rnd, suffixLength)
	l.recordCopy(display)

	return Redemption{
		SlotID:      slot.ID,
		Code:        code,
		DisplayCode: display,
		Regenerated: regenerated,
	}, nil
}

// Refresh replaces every slot with a fresh draw. New ids combine the slot
// index with the current time.
func (l *Ledger) Refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	stamp := ulid.MustNew(ulid.Timestamp(now), nil).String()
	fresh := make([]domain.Voucher, SlotCount)
	for i := range fresh {
		t := l.drawTemplate()
		fresh[i] = domain.Voucher{
			ID:                 fmt.Sprintf("v%d-%s", i+1, stamp),
			Code:               t.Code,
			DiscountLabel:      t.DiscountLabel,
			Description:        t.Description,
			Redeemed:           between(l.rnd, 0, 29),
			Cap:                DefaultCap,
			EligibleProductIDs: l.drawEligible(),
		}
	}
	l.slots = fresh
	l.logger.Debug("voucher set refreshed", zap.Time("at", now))
}

// Run calls Refresh every interval until ctx is cancelled.
func (l *Ledger) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Refresh()
		}
	}
}

// CopyCode records code in the copied-codes list unless it is already there.
func (l *Ledger) CopyCode(code string) {
	if code == "" {
		return
	}
	l.mu.Lock()
	l.recordCopy(code)
	l.mu.Unlock()
}

// Vouchers returns a snapshot of the slots in ledger order.
func (l *Ledger) Vouchers() []domain.Voucher {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Voucher, len(l.slots))
	for i, v := range l.slots {
		out[i] = v.Clone()
	}
	return out
}

// Get returns a snapshot of one slot.
func (l *Ledger) Get(slotID string) (domain.Voucher, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(slotID)
	if idx < 0 {
		return domain.Voucher{}, ErrSlotNotFound
	}
	return l.slots[idx].Clone(), nil
}

// FindByCode returns the slot currently holding code, ignoring case.
// Display codes never match.
func (l *Ledger) FindByCode(code string) (domain.Voucher, error) {
	code = strings.TrimSpace(code)
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, v := range l.slots {
		if strings.EqualFold(v.Code, code) {
			return v.Clone(), nil
		}
	}
	return domain.Voucher{}, ErrSlotNotFound
}

// CopiedCodes returns the copied codes in the order they were first recorded.
func (l *Ledger) CopiedCodes() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.copied...)
}

func (l *Ledger) indexOf(slotID string) int {
	for i := range l.slots {
		if l.slots[i].ID == slotID {
			return i
		}
	}
	return -1
}

func (l *Ledger) recordCopy(code string) {
	if _, ok := l.copiedSet[code]; ok {
		return
	}
	l.copiedSet[code] = struct{}{}
	l.copied = append(l.copied, code)
}

// regenerate swaps the slot's content for a fresh draw. ID and Cap are kept.
func (l *Ledger) regenerate(slot *domain.Voucher) {
	t := l.drawTemplate()
	slot.Code = t.Code
	slot.DiscountLabel = t.DiscountLabel
	slot.Description = t.Description
	slot.EligibleProductIDs = l.drawEligible()
	slot.Redeemed = 0
}

func (l *Ledger) drawTemplate() domain.VoucherTemplate {
	return l.catalog[l.rnd.IntN(len(l.catalog))]
}

func (l *Ledger) drawEligible() []int {
	ids := make([]int, eligibleCount)
	for i := range ids {
		ids[i] = between(l.rnd, 1, l.bound)
	}
	return ids
}
