package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agbru/fibduality/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.AppConfig{
		TableSize:       config.DefaultTableSize,
		SimTableSize:    config.DefaultSimTableSize,
		BaseConductance: config.DefaultBaseConductance,
		NoiseStd:        0, // deterministic runs for assertions
		Voltage:         config.DefaultVoltage,
		Port:            "0",
	}
	return NewServer(cfg, WithLogger(zerolog.Nop()))
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", payload["status"])
	}
}

func TestHandleMultiply(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/multiply?a=8&b=13")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp MultiplyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("missing result")
	}
	if resp.Result.TrueProduct.Int64() != 104 {
		t.Errorf("true product = %v, want 104", resp.Result.TrueProduct)
	}
	if resp.Result.ActiveCells != 6 {
		t.Errorf("active cells = %d, want 6", resp.Result.ActiveCells)
	}
}

func TestHandleMultiply_BadRequests(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"missing operands", "/api/v1/multiply", http.StatusBadRequest},
		{"non-fibonacci operand", "/api/v1/multiply?a=6&b=13", http.StatusBadRequest},
		{"bad voltage", "/api/v1/multiply?a=8&b=13&voltage=abc", http.StatusBadRequest},
		{"negative voltage", "/api/v1/multiply?a=8&b=13&voltage=-1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := doRequest(t, s, http.MethodGet, tc.target)
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestHandleMultiply_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/multiply?a=8&b=13")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleGCD(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/gcd?a=34&b=55")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp GCDResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("missing result")
	}
	if resp.Result.GCD.Int64() != 1 {
		t.Errorf("gcd = %v, want 1", resp.Result.GCD)
	}
	if resp.Result.Steps != 8 {
		t.Errorf("steps = %d, want 8", resp.Result.Steps)
	}
}

func TestHandleMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics body is empty")
	}
}
