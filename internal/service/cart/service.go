package cart

import (
	"strings"
	"sync"

	"beauty-storefront/internal/domain"
)

// MaxQuantity is the largest quantity a cart line can hold. Adds and
// updates beyond it saturate.
const MaxQuantity = 999

// Store is an in-memory cart keyed by product id. Lines keep the order in
// which products were first added. Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	lines []domain.CartLine
	index map[int]int // product id -> position in lines
}

func New() *Store {
	return &Store{index: make(map[int]int)}
}

// Add puts item in the cart. quantity > 0 wins; otherwise the item's own
// Quantity is used when positive, else 1. An existing line for the same
// product has the quantity added to it.
func (s *Store) Add(item domain.CartItem, quantity int) {
	qty := resolveQuantity(item, quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, ok := s.index[item.ProductID]; ok {
		s.lines[pos].Quantity = addQuantity(s.lines[pos].Quantity, qty)
		return
	}
	s.index[item.ProductID] = len(s.lines)
	s.lines = append(s.lines, lineFromItem(item, min(qty, MaxQuantity)))
}

// UpdateQuantity sets an absolute quantity, capped at MaxQuantity.
// quantity <= 0 removes the line. Unknown products are ignored.
func (s *Store) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos, ok := s.index[productID]; ok {
		s.lines[pos].Quantity = min(quantity, MaxQuantity)
	}
}

// Remove deletes the line for productID if present.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[productID]
	if !ok {
		return
	}
	s.lines = append(s.lines[:pos], s.lines[pos+1:]...)
	delete(s.index, productID)
	for i := pos; i < len(s.lines); i++ {
		s.index[s.lines[i].ProductID] = i
	}
}

// Get returns the line for productID.
func (s *Store) Get(productID int) (domain.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[productID]
	if !ok {
		return domain.CartLine{}, false
	}
	return s.lines[pos], true
}

// Lines returns a snapshot of the cart.
func (s *Store) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartLine{}, s.lines...)
}

// TotalQuantity is the number of units across all lines, shown on the cart badge.
func (s *Store) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

func (s *Store) Subtotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, l := range s.lines {
		total += l.TotalPrice()
	}
	return total
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
}

// Drain returns the lines and empties the cart in one step, so an Add
// racing with it lands either in the returned lines or in the emptied cart.
func (s *Store) Drain() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.lines
	s.reset()
	return lines
}

// Restore merges previously drained lines back into the cart. Lines for
// products added in the meantime have their quantities summed.
func (s *Store) Restore(lines []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if pos, ok := s.index[l.ProductID]; ok {
			s.lines[pos].Quantity = addQuantity(s.lines[pos].Quantity, l.Quantity)
			continue
		}
		l.Quantity = min(l.Quantity, MaxQuantity)
		s.index[l.ProductID] = len(s.lines)
		s.lines = append(s.lines, l)
	}
}

func (s *Store) reset() {
	s.lines = nil
	s.index = make(map[int]int)
}

// addQuantity sums two positive quantities, saturating at MaxQuantity.
func addQuantity(have, more int) int {
	if more >= MaxQuantity-have {
		return MaxQuantity
	}
	return have + more
}

func resolveQuantity(item domain.CartItem, quantity int) int {
	switch {
	case quantity > 0:
		return quantity
	case item.Quantity > 0:
		return item.Quantity
	default:
		return 1
	}
}

func lineFromItem(item domain.CartItem, qty int) domain.CartLine {
	return domain.CartLine{
		ProductID:     item.ProductID,
		Name:          strings.TrimSpace(item.Name),
		PriceLabel:    item.PriceLabel,
		UnitPrice:     item.UnitPrice,
		OriginalPrice: item.OriginalPrice,
		DiscountLabel: item.DiscountLabel,
		Brand:         item.Brand,
		Tag:           item.Tag,
		Image:         item.Image,
		Quantity:      qty,
	}
}
