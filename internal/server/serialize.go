package server

import (
	"context"
	"sync"

	"github.com/agbru/fibduality/internal/service"
	"github.com/agbru/fibduality/pkg/models"
)

// serializedService guards a Service with a mutex. The analog simulator
// and its tracer keep per-call trace state, so concurrent HTTP handlers
// must take turns.
type serializedService struct {
	mu    sync.Mutex
	inner service.Service
}

func newSerializedService(inner service.Service) *serializedService {
	return &serializedService{inner: inner}
}

// Multiply implements service.Service.
func (s *serializedService) Multiply(ctx context.Context, a, b string, voltage float64) (*models.MultiplicationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Multiply(ctx, a, b, voltage)
}

// GCD implements service.Service.
func (s *serializedService) GCD(ctx context.Context, a, b string) (*models.GCDResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GCD(ctx, a, b)
}
