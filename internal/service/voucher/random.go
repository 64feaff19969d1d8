package voucher

import (
	"math/rand/v2"
	"time"
)

// Source supplies the ledger's random draws. *rand.Rand from math/rand/v2
// satisfies it. Calls are made with the ledger lock held.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSource returns a PCG-backed source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func defaultSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

// between returns a uniform value in [lo, hi].
func between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

func randomSuffix(src Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[src.IntN(len(suffixAlphabet))]
	}
	return string(b)
}
