package analog

import (
	"math"
	"math/big"
	"sort"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/fibduality/internal/errors"
	"github.com/agbru/fibduality/internal/euclid"
	"github.com/agbru/fibduality/internal/fibtable"
	"github.com/agbru/fibduality/internal/fractal"
	"github.com/agbru/fibduality/pkg/models"
)

// Default simulator parameters.
const (
	// DefaultTableSize is the default number of Fibonacci terms backing
	// the cell array.
	DefaultTableSize = 23
	// DefaultBaseConductance is the nominal unit conductance in siemens
	// (1 microsiemens).
	DefaultBaseConductance = 1e-6
	// DefaultNoiseStd is the default relative device variation (5%).
	DefaultNoiseStd = 0.05
	// DefaultVoltage is the read voltage applied when none is specified.
	DefaultVoltage = 1.0

	// snrEpsilon floors the SNR denominator so a zero-variance sample set
	// yields a large finite ratio instead of a division by zero.
	snrEpsilon = 1e-12
)

// Options configures a Simulator.
type Options struct {
	// TableSize is the number of Fibonacci terms in the cell array.
	// If 0, DefaultTableSize is used.
	TableSize int
	// BaseConductance is the unit conductance G_base in siemens.
	// If 0, DefaultBaseConductance is used.
	BaseConductance float64
	// NoiseStd is the standard deviation of the per-cell noise
	// multiplier. If 0, DefaultNoiseStd is used; to disable noise
	// entirely, inject the Noiseless source via WithNoiseSource.
	NoiseStd float64
	// Seed seeds the default random noise source. If 0, the current time
	// is used, making runs non-deterministic. Ignored when a custom
	// source is injected.
	Seed int64
}

// normalizeOptions returns a copy of opts with defaults filled in for zero
// values.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.TableSize == 0 {
		normalized.TableSize = DefaultTableSize
	}
	if normalized.BaseConductance == 0 {
		normalized.BaseConductance = DefaultBaseConductance
	}
	if normalized.NoiseStd == 0 {
		normalized.NoiseStd = DefaultNoiseStd
	}
	return normalized
}

// Option customizes a Simulator beyond the plain Options struct.
type Option func(*Simulator)

// WithNoiseSource replaces the default seeded random source. Injecting
// Noiseless() makes every run exact; injecting a fixed-seed source makes
// runs reproducible.
func WithNoiseSource(ns NoiseSource) Option {
	return func(s *Simulator) { s.noise = ns }
}

// WithLogger attaches a zerolog logger for per-run debug summaries. The
// default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// cell is one read-only conductance template: base × value². Simulation
// runs operate on ephemeral active sets derived from these templates and
// never mutate them.
type cell struct {
	value       *big.Int
	conductance float64
}

// Simulator models the resistive cell array. It owns a fractal.Multiplier
// and a euclid.Tracer; the tracer's trace state is consumed immediately
// after each GCD invocation, so a Simulator must not be shared across
// goroutines.
type Simulator struct {
	table      *fibtable.Table
	multiplier *fractal.Multiplier
	tracer     *euclid.Tracer
	// cells holds one template per distinct Fibonacci value, keyed by the
	// value's decimal form.
	cells  map[string]cell
	opts   Options
	noise  NoiseSource
	logger zerolog.Logger
}

// New creates a Simulator with its backing Fibonacci table, multiplier,
// tracer, and cell templates.
func New(opts Options, setters ...Option) *Simulator {
	opts = normalizeOptions(opts)

	table := fibtable.Build(opts.TableSize)
	s := &Simulator{
		table:      table,
		multiplier: fractal.New(table, fractal.Options{}),
		tracer:     euclid.NewTracer(),
		cells:      make(map[string]cell, table.Len()),
		opts:       opts,
		logger:     zerolog.Nop(),
	}

	for _, v := range table.Values() {
		key := v.String()
		if _, ok := s.cells[key]; ok {
			continue
		}
		sq, _ := table.SquareOf(v)
		s.cells[key] = cell{value: v, conductance: opts.BaseConductance * bigToFloat(sq)}
	}

	for _, set := range setters {
		set(s)
	}
	if s.noise == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.noise = NewRandomNoise(seed)
	}
	return s
}

// Table returns the Fibonacci table backing the cell array.
func (s *Simulator) Table() *fibtable.Table { return s.table }

// Multiplier returns the simulator-owned fractal multiplier.
func (s *Simulator) Multiplier() *fractal.Multiplier { return s.multiplier }

// SimulateMultiplication performs one analog multiplication run: it
// activates the cell prefix up to min(a, b)'s table position, perturbs
// each cell's conductance with an independent draw from N(1, noiseStd),
// sums the noisy conductances, and reconstructs the product from the
// resulting current.
//
// Both operands must be members of the Fibonacci table; a non-member
// fails with an InvalidInputError immediately. There is no silent
// fallback here, unlike the multiplier's plain-product degradation.
//
// The run consumes entropy from the simulator's noise source, so results
// are only reproducible with a seeded or deterministic source.
func (s *Simulator) SimulateMultiplication(a, b *big.Int, voltage float64) (*models.MultiplicationResult, error) {
	if err := s.validateOperands(a, b, modeMultiplication); err != nil {
		return nil, err
	}

	smaller := a
	if b.Cmp(a) < 0 {
		smaller = b
	}
	idx, _ := s.table.IndexOf(smaller)
	active := s.table.Prefix(idx)

	// One independent noise draw per active cell. The duplicated unit
	// terms count as two cells and draw twice.
	noisy := make([]float64, len(active))
	total := 0.0
	for i, v := range active {
		nominal := s.cells[v.String()].conductance
		noisy[i] = nominal * s.noise.Sample(1, s.opts.NoiseStd)
		total += noisy[i]
	}

	current := voltage * total
	measured := current / s.opts.BaseConductance

	trueProduct := new(big.Int).Mul(a, b)
	trueFloat := bigToFloat(trueProduct)
	errorPercent := math.Abs(measured-trueFloat) / trueFloat * 100

	snr := 20 * math.Log10(measured/math.Max(snrEpsilon, popStdDev(noisy)))

	simulationsTotal.WithLabelValues(modeMultiplication).Inc()
	multiplicationErrorPercent.Observe(errorPercent)
	s.logger.Debug().
		Str("a", a.String()).
		Str("b", b.String()).
		Float64("measured", measured).
		Float64("error_percent", errorPercent).
		Int("active_cells", len(active)).
		Msg("multiplication run")

	return &models.MultiplicationResult{
		TrueProduct:     trueProduct,
		MeasuredProduct: measured,
		ActiveCells:     len(active),
		ErrorPercent:    errorPercent,
		SNRdB:           snr,
	}, nil
}

// SimulateGCDComputation performs one analog GCD run: it builds the full
// active-cell set exactly as a multiplication would, traces the Euclidean
// algorithm on (a, b), and walks the division path deactivating the cell
// of each divisor it encounters, recording the remaining noiseless
// conductance after every removal.
//
// A divisor whose cell was already removed (unreachable with distinct
// table values, but tolerated) is skipped rather than failing. Both
// operands must be Fibonacci table members.
func (s *Simulator) SimulateGCDComputation(a, b *big.Int) (*models.GCDResult, error) {
	if err := s.validateOperands(a, b, modeGCD); err != nil {
		return nil, err
	}

	smaller := a
	if b.Cmp(a) < 0 {
		smaller = b
	}
	idx, _ := s.table.IndexOf(smaller)

	active := make(map[string]*big.Int)
	for _, v := range s.table.Prefix(idx) {
		active[v.String()] = v
	}

	// The trace record is consumed immediately; the tracer's retained
	// state is overwritten on the next invocation.
	trace := s.tracer.Run(a, b)

	var steps []models.DeactivationStep
	for i, entry := range trace.Path[:len(trace.Path)-1] {
		key := entry.Divisor.String()
		if _, on := active[key]; !on {
			continue
		}
		delete(active, key)
		steps = append(steps, models.DeactivationStep{
			Step:                 i,
			Deactivated:          new(big.Int).Set(entry.Divisor),
			RemainingConductance: s.sumConductance(active),
		})
	}

	remaining := make([]*big.Int, 0, len(active))
	for _, v := range active {
		remaining = append(remaining, v)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Cmp(remaining[j]) < 0 })

	simulationsTotal.WithLabelValues(modeGCD).Inc()
	s.logger.Debug().
		Str("a", a.String()).
		Str("b", b.String()).
		Str("gcd", trace.GCD.String()).
		Int("deactivated", len(steps)).
		Msg("gcd run")

	return &models.GCDResult{
		GCD:              new(big.Int).Set(trace.GCD),
		Steps:            len(steps),
		CellsDeactivated: steps,
		FinalActiveCells: remaining,
	}, nil
}

// validateOperands rejects operands outside the Fibonacci table.
func (s *Simulator) validateOperands(a, b *big.Int, mode string) error {
	if !s.table.Contains(a) {
		simulationFailures.WithLabelValues(mode).Inc()
		return apperrors.NewInvalidInputError("a", a.String(), "must be a Fibonacci number within the table")
	}
	if !s.table.Contains(b) {
		simulationFailures.WithLabelValues(mode).Inc()
		return apperrors.NewInvalidInputError("b", b.String(), "must be a Fibonacci number within the table")
	}
	return nil
}

// sumConductance totals the nominal (noiseless) conductances of the
// active set.
func (s *Simulator) sumConductance(active map[string]*big.Int) float64 {
	total := 0.0
	for key := range active {
		total += s.cells[key].conductance
	}
	return total
}

// popStdDev computes the population standard deviation of samples.
func popStdDev(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range samples {
		mean += x
	}
	mean /= float64(len(samples))

	variance := 0.0
	for _, x := range samples {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(samples))
	return math.Sqrt(variance)
}

// bigToFloat converts an exact integer to float64 for the measurement
// arithmetic. Values beyond 2^53 lose precision, which is acceptable for
// the noisy analog domain.
func bigToFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
