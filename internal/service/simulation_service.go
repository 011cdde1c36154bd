// Package service provides the application service layer between the
// transport (HTTP server, CLI) and the core simulation packages. It
// parses wire-level operands, honors context cancellation, and returns
// the core's plain result records.
package service

import (
	"context"
	"math/big"

	"github.com/agbru/fibduality/internal/analog"
	apperrors "github.com/agbru/fibduality/internal/errors"
	"github.com/agbru/fibduality/pkg/models"
)

// Service defines the operations exposed to transport layers.
type Service interface {
	// Multiply runs an analog multiplication for decimal operands a and b.
	Multiply(ctx context.Context, a, b string, voltage float64) (*models.MultiplicationResult, error)

	// GCD runs an analog GCD computation for decimal operands a and b.
	GCD(ctx context.Context, a, b string) (*models.GCDResult, error)
}

// SimulationService implements Service on top of an analog.Simulator.
// The simulator is single-threaded; the service serializes nothing itself
// and therefore must be used by one request at a time or given a
// per-service simulator (the server uses the latter).
type SimulationService struct {
	sim *analog.Simulator
}

// NewSimulationService creates a service bound to the given simulator.
func NewSimulationService(sim *analog.Simulator) *SimulationService {
	return &SimulationService{sim: sim}
}

// Multiply implements Service. The operands are decimal strings so the
// transport layer never handles big.Int directly.
func (s *SimulationService) Multiply(ctx context.Context, a, b string, voltage float64) (*models.MultiplicationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	av, bv, err := parseOperands(a, b)
	if err != nil {
		return nil, err
	}
	if voltage <= 0 {
		return nil, apperrors.NewInvalidInputError("voltage", voltage, "must be strictly positive")
	}
	return s.sim.SimulateMultiplication(av, bv, voltage)
}

// GCD implements Service.
func (s *SimulationService) GCD(ctx context.Context, a, b string) (*models.GCDResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	av, bv, err := parseOperands(a, b)
	if err != nil {
		return nil, err
	}
	return s.sim.SimulateGCDComputation(av, bv)
}

// parseOperands converts decimal operand strings into non-negative
// integers.
func parseOperands(a, b string) (*big.Int, *big.Int, error) {
	av, ok := new(big.Int).SetString(a, 10)
	if !ok || av.Sign() < 0 {
		return nil, nil, apperrors.NewInvalidInputError("a", a, "must be a non-negative decimal integer")
	}
	bv, ok := new(big.Int).SetString(b, 10)
	if !ok || bv.Sign() < 0 {
		return nil, nil, apperrors.NewInvalidInputError("b", b, "must be a non-negative decimal integer")
	}
	return av, bv, nil
}
