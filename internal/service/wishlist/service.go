package wishlist

import (
	"sync"

	"beauty-storefront/internal/domain"
)

// Store is an in-memory set of wishlist entries keyed by product id.
type Store struct {
	mu      sync.RWMutex
	entries []domain.WishlistEntry
}

func New() *Store {
	return &Store{}
}

// Add inserts entry unless its product is already present; an existing entry
// is left untouched. It reports whether the entry was inserted.
func (s *Store) Add(entry domain.WishlistEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(entry.ProductID) >= 0 {
		return false
	}
	s.entries = append(s.entries, entry)
	return true
}

func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos := s.indexOf(productID); pos >= 0 {
		s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	}
}

// Toggle removes entry when present and adds it otherwise. It reports
// whether the product is in the wishlist afterwards.
func (s *Store) Toggle(entry domain.WishlistEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos := s.indexOf(entry.ProductID); pos >= 0 {
		s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
		return false
	}
	s.entries = append(s.entries, entry)
	return true
}

func (s *Store) Contains(productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(productID) >= 0
}

// Entries returns a snapshot in insertion order.
func (s *Store) Entries() []domain.WishlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WishlistEntry{}, s.entries...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// indexOf is linear; wishlists hold a handful of products.
func (s *Store) indexOf(productID int) int {
	for i := range s.entries {
		if s.entries[i].ProductID == productID {
			return i
		}
	}
	return -1
}
