package fractal

import (
	"math/big"

	"github.com/agbru/fibduality/internal/fibtable"
)

// DefaultCacheCapacity bounds the multiplier's result cache. The value
// matches the unbounded-within-limit memoization of the reference design.
const DefaultCacheCapacity = 10_000

// Options configures a Multiplier.
type Options struct {
	// CacheCapacity is the maximum number of memoized (a, b) results.
	// If 0, DefaultCacheCapacity is used. Negative values disable caching.
	CacheCapacity int
}

// normalizeOptions returns a copy of opts with defaults filled in for zero
// values.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.CacheCapacity == 0 {
		normalized.CacheCapacity = DefaultCacheCapacity
	}
	return normalized
}

// Multiplier computes products of Fibonacci numbers as sums of squared
// Fibonacci prefix terms. For a pair of consecutive Fibonacci numbers the
// prefix-square sum Σ F(i)² over i = 1..n equals F(n)·F(n+1) exactly, so
// the "analog" sum path reproduces ordinary multiplication.
//
// Non-Fibonacci operands fall back to plain multiplication. This is a
// deliberate, documented degradation rather than an error: the fast path
// is only meaningful for table members, and the multiplier stays usable as
// a general product routine. (The analog simulator makes the opposite
// choice and rejects non-members outright.)
type Multiplier struct {
	table *fibtable.Table
	cache *resultCache
}

// New creates a Multiplier over the given table. The table is shared, not
// copied; it is immutable so sharing is safe.
func New(table *fibtable.Table, opts Options) *Multiplier {
	opts = normalizeOptions(opts)
	return &Multiplier{
		table: table,
		cache: newResultCache(opts.CacheCapacity),
	}
}

// Table returns the Fibonacci table backing this multiplier.
func (m *Multiplier) Table() *fibtable.Table { return m.table }

// ComputeProduct returns a×b. When both operands are table members the
// product is computed as the sum of squares of all table terms up to and
// including min(a, b)'s position; otherwise ordinary multiplication is
// used. Results are memoized per ordered (a, b) pair for the lifetime of
// the instance; (a, b) and (b, a) may occupy separate cache entries but
// always yield the same value.
func (m *Multiplier) ComputeProduct(a, b *big.Int) *big.Int {
	key := a.String() + "|" + b.String()
	if cached, ok := m.cache.get(key); ok {
		product, _ := new(big.Int).SetString(cached, 10)
		return product
	}

	product := m.compute(a, b)
	m.cache.put(key, product.String())
	return product
}

func (m *Multiplier) compute(a, b *big.Int) *big.Int {
	if !m.table.Contains(a) || !m.table.Contains(b) {
		return new(big.Int).Mul(a, b)
	}

	smaller := a
	if b.Cmp(a) < 0 {
		smaller = b
	}
	idx, _ := m.table.IndexOf(smaller)

	sum := new(big.Int)
	for _, term := range m.table.Prefix(idx) {
		sq, err := m.table.SquareOf(term)
		if err != nil {
			// Unreachable: every prefix term is a table member.
			return new(big.Int).Mul(a, b)
		}
		sum.Add(sum, sq)
	}
	return sum
}

// CachedResults reports how many products are currently memoized.
func (m *Multiplier) CachedResults() int { return m.cache.len() }
