package service

import (
	"context"
	"testing"

	"github.com/agbru/fibduality/internal/analog"
	apperrors "github.com/agbru/fibduality/internal/errors"
)

func newTestService() *SimulationService {
	sim := analog.New(analog.Options{}, analog.WithNoiseSource(analog.Noiseless()))
	return NewSimulationService(sim)
}

func TestMultiply(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	res, err := svc.Multiply(context.Background(), "8", "13", 1.0)
	if err != nil {
		t.Fatalf("Multiply() error: %v", err)
	}
	if res.TrueProduct.Int64() != 104 {
		t.Errorf("TrueProduct = %v, want 104", res.TrueProduct)
	}
}

func TestMultiply_InvalidOperands(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	cases := []struct {
		name    string
		a, b    string
		voltage float64
	}{
		{"non-numeric a", "abc", "13", 1.0},
		{"negative b", "8", "-13", 1.0},
		{"non-fibonacci a", "6", "13", 1.0},
		{"non-positive voltage", "8", "13", 0},
	}
	for _, tc := range cases {
		_, err := svc.Multiply(context.Background(), tc.a, tc.b, tc.voltage)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !apperrors.IsInvalidInput(err) {
			t.Errorf("%s: error type = %T, want InvalidInputError", tc.name, err)
		}
	}
}

func TestGCD(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	res, err := svc.GCD(context.Background(), "34", "55")
	if err != nil {
		t.Fatalf("GCD() error: %v", err)
	}
	if res.GCD.Int64() != 1 {
		t.Errorf("GCD = %v, want 1", res.GCD)
	}
	if res.Steps != 8 {
		t.Errorf("Steps = %d, want 8", res.Steps)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Multiply(ctx, "8", "13", 1.0); !apperrors.IsContextError(err) {
		t.Errorf("Multiply with canceled context: err = %v, want context error", err)
	}
	if _, err := svc.GCD(ctx, "8", "13"); !apperrors.IsContextError(err) {
		t.Errorf("GCD with canceled context: err = %v, want context error", err)
	}
}
