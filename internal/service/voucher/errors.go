package voucher

import "errors"

var (
	// ErrSlotNotFound indicates no ledger slot has the requested id.
	ErrSlotNotFound = errors.New("voucher: slot not found")
	// ErrExhausted indicates the slot has no redemptions left.
	ErrExhausted = errors.New("voucher: exhausted")
	// ErrEmptyCatalog indicates the template catalog has no usable entries.
	ErrEmptyCatalog = errors.New("voucher: catalog is empty")
	// ErrInvalidCatalog indicates a catalog entry is missing its code.
	ErrInvalidCatalog = errors.New("voucher: invalid catalog")
	// ErrInvalidSlots indicates initial slots violate the ledger invariants.
	ErrInvalidSlots = errors.New("voucher: invalid initial slots")
)
