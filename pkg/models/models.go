// Package models defines the shared result records produced by the core
// computation packages. Downstream collaborators (the CLI report printer,
// the HTTP API, external renderers) consume these plain data structures;
// the core never depends on any rendering or console-formatting
// capability.
package models

import "math/big"

// MultiplicationResult is the outcome of one analog multiplication run.
type MultiplicationResult struct {
	// TrueProduct is the exact integer product a×b.
	TrueProduct *big.Int `json:"true_product"`
	// MeasuredProduct is the product reconstructed from the noisy
	// conductance sum (voltage × ΣG / G_base).
	MeasuredProduct float64 `json:"measured_product"`
	// ActiveCells is the number of cells switched on for the run,
	// duplicated unit cells included.
	ActiveCells int `json:"active_cells"`
	// ErrorPercent is |measured − true| / true × 100.
	ErrorPercent float64 `json:"error_percent"`
	// SNRdB is 20·log10(measured / stddev(noisy conductances)), with the
	// denominator floored at 1e-12.
	SNRdB float64 `json:"snr_db"`
}

// DeactivationStep records one cell removal during an analog GCD run.
type DeactivationStep struct {
	// Step is the position of this removal in the Euclidean path walk.
	Step int `json:"step"`
	// Deactivated is the Fibonacci value whose cell was switched off.
	Deactivated *big.Int `json:"deactivated"`
	// RemainingConductance is the noiseless conductance sum of the cells
	// still active after the removal, in siemens.
	RemainingConductance float64 `json:"remaining_conductance"`
}

// DualityEntry pairs the two simulation modes for one operand pair. The
// benchmark suite produces one entry per pair; renderers consume the
// slice as-is.
type DualityEntry struct {
	// A and B are the Fibonacci operands.
	A *big.Int `json:"a"`
	B *big.Int `json:"b"`
	// Multiplication is the analog sum run for the pair.
	Multiplication *MultiplicationResult `json:"multiplication"`
	// GCD is the analog subtraction run for the pair.
	GCD *GCDResult `json:"gcd"`
}

// GCDResult is the outcome of one analog GCD run.
type GCDResult struct {
	// GCD is the greatest common divisor of the operands.
	GCD *big.Int `json:"gcd"`
	// Steps is the number of cells deactivated during the walk.
	Steps int `json:"steps"`
	// CellsDeactivated lists the removals in walk order.
	CellsDeactivated []DeactivationStep `json:"cells_deactivated"`
	// FinalActiveCells holds the values still active when the walk ended,
	// in ascending order.
	FinalActiveCells []*big.Int `json:"final_active_cells"`
}
