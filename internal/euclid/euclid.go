// Package euclid implements a tracing variant of the Euclidean GCD
// algorithm. Beyond the gcd itself, every quotient/remainder iteration and
// the parallel (dividend, divisor) path are recorded so callers can replay
// the computation, expand it into its slow subtraction-only equivalent, or
// mirror it as a cell deactivation walk in the analog simulator.
package euclid

import "math/big"

// Step is a single iteration of the algorithm: the integer quotient, the
// remainder, and the number of unit subtractions the quotient stands for.
// For consecutive Fibonacci inputs every quotient is 1, so Subtractions is
// recorded as 1 per step; this is a structural property of the trace, not
// something the tracer validates for arbitrary inputs.
type Step struct {
	Quotient     *big.Int
	Remainder    *big.Int
	Subtractions int
}

// PathEntry is one (dividend, divisor) pair of the division path. The path
// has exactly one more entry than the step sequence: the final entry holds
// the gcd with a zero divisor.
type PathEntry struct {
	Dividend *big.Int
	Divisor  *big.Int
}

// Trace bundles the complete result of one ComputeGCD call: the gcd, the
// ordered step sequence, and the division path. The record is owned by the
// caller; it is never mutated by subsequent tracer calls.
type Trace struct {
	GCD   *big.Int
	Steps []Step
	Path  []PathEntry
}

// Tracer runs the Euclidean algorithm and retains the most recent trace
// for the Path and SubtractionSequence accessors. The retained state is
// overwritten on every call, so callers that need a trace to survive a
// subsequent computation must hold on to the Trace record returned by Run.
// A Tracer is not safe for concurrent use.
type Tracer struct {
	last *Trace
}

// NewTracer returns a tracer with no recorded trace.
func NewTracer() *Tracer {
	return &Tracer{}
}

// Run executes the standard Euclidean algorithm on non-negative a and b
// and returns the full trace record.
//
// Each iteration records (quotient, remainder, 1) and the (a, b) pair,
// then shifts to (b, remainder) until the divisor reaches zero. A final
// path entry (gcd, 0) is appended after the loop, so a call with b == 0
// yields an empty step sequence and the single path entry (a, 0).
//
// Behavior for negative inputs is undefined; callers pass non-negative
// integers only.
func (t *Tracer) Run(a, b *big.Int) *Trace {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)

	tr := &Trace{}
	for y.Sign() != 0 {
		q, r := new(big.Int).QuoRem(x, y, new(big.Int))
		tr.Steps = append(tr.Steps, Step{Quotient: q, Remainder: r, Subtractions: 1})
		tr.Path = append(tr.Path, PathEntry{
			Dividend: new(big.Int).Set(x),
			Divisor:  new(big.Int).Set(y),
		})
		x, y = y, r
	}
	tr.Path = append(tr.Path, PathEntry{Dividend: new(big.Int).Set(x), Divisor: new(big.Int)})
	tr.GCD = x

	t.last = tr
	return tr
}

// ComputeGCD runs the algorithm and returns the gcd together with the
// ordered step sequence. The full trace remains available through Trace,
// Path, and SubtractionSequence until the next call.
func (t *Tracer) ComputeGCD(a, b *big.Int) (*big.Int, []Step) {
	tr := t.Run(a, b)
	return tr.GCD, tr.Steps
}

// Trace returns the most recent trace record, or nil before the first
// computation.
func (t *Tracer) Trace() *Trace { return t.last }

// Path returns the division path of the most recent computation, or nil
// before the first one.
func (t *Tracer) Path() []PathEntry {
	if t.last == nil {
		return nil
	}
	return t.last.Path
}

// SubtractionSequence expands the most recent trace into its slow
// subtraction-only form. Nil before the first computation.
func (t *Tracer) SubtractionSequence() []*big.Int {
	if t.last == nil {
		return nil
	}
	return t.last.SubtractionSequence()
}

// SubtractionSequence converts the step sequence into the sequence of
// values the subtraction-based Euclidean algorithm would subtract: each
// step contributes its divisor, repeated quotient times, in step order.
// The total length equals the sum of all quotients, and summing the
// sequence reconstructs the original dividend minus the final remainder.
//
// An empty sequence (every quotient zero, or no steps at all) is a valid
// result, not an error.
//
// Quotients are expanded element by element, so they must fit in an int64;
// a sequence whose expansion exceeds that could not be materialized in
// memory anyway.
func (tr *Trace) SubtractionSequence() []*big.Int {
	var seq []*big.Int
	for i, step := range tr.Steps {
		divisor := tr.Path[i].Divisor
		for n := step.Quotient.Int64(); n > 0; n-- {
			seq = append(seq, new(big.Int).Set(divisor))
		}
	}
	return seq
}
