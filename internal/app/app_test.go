package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/agbru/fibduality/pkg/models"
)

// TestNew tests the New function for creating Application instances.
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("Valid args create application", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		args := []string{"fibduality", "-sim-table-size", "30"}

		app, err := New(args, &bytes.Buffer{}, &errBuf)

		if err != nil {
			t.Fatalf("New() returned unexpected error: %v", err)
		}
		if app == nil {
			t.Fatal("New() returned nil application")
		}
		if app.Config.SimTableSize != 30 {
			t.Errorf("Expected SimTableSize=30, got %d", app.Config.SimTableSize)
		}
	})

	t.Run("Invalid args return error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		args := []string{"fibduality", "-invalid-flag"}

		app, err := New(args, &bytes.Buffer{}, &errBuf)

		if err == nil {
			t.Error("New() should return error for invalid args")
		}
		if app != nil {
			t.Error("New() should return nil application on error")
		}
	})

	t.Run("Help flag returns help error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		args := []string{"fibduality", "-h"}

		_, err := New(args, &bytes.Buffer{}, &errBuf)

		if err == nil {
			t.Error("New() should return error for help flag")
		}
		if !IsHelpError(err) {
			t.Error("Error should be a help error")
		}
	})

	t.Run("Empty args slice handled correctly", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer

		app, err := New(nil, &bytes.Buffer{}, &errBuf)

		if err != nil {
			t.Errorf("New() should handle empty args without error, got: %v", err)
		}
		if app == nil {
			t.Fatal("New() should return application even with empty args")
		}
	})
}

// TestApplicationRun_JSON runs the full benchmark suite noiselessly and
// checks the JSON output against known duality results.
func TestApplicationRun_JSON(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	args := []string{"fibduality", "-json", "-quiet", "-noise-std", "0"}

	app, err := New(args, &out, &errBuf)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	var entries []models.DualityEntry
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(entries) != len(benchmarkPairs) {
		t.Fatalf("got %d entries, want %d", len(entries), len(benchmarkPairs))
	}

	first := entries[0]
	if first.Multiplication.TrueProduct.Int64() != 104 {
		t.Errorf("8×13 true product = %v, want 104", first.Multiplication.TrueProduct)
	}
	if first.Multiplication.ActiveCells != 6 {
		t.Errorf("8×13 active cells = %d, want 6", first.Multiplication.ActiveCells)
	}

	third := entries[2]
	if third.GCD.GCD.Int64() != 1 {
		t.Errorf("gcd(34,55) = %v, want 1", third.GCD.GCD)
	}
	if third.GCD.Steps != 8 {
		t.Errorf("gcd(34,55) steps = %d, want 8", third.GCD.Steps)
	}
}

// TestApplicationRun_Report checks the human-readable report output.
func TestApplicationRun_Report(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	args := []string{"fibduality", "-quiet", "-no-color", "-noise-std", "0"}

	app, err := New(args, &out, &errBuf)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "104") {
		t.Errorf("report should contain the 8×13 product, got:\n%s", out.String())
	}
}

// TestApplicationRun_Canceled ensures a canceled context aborts the run.
func TestApplicationRun_Canceled(t *testing.T) {
	t.Parallel()
	var out, errBuf bytes.Buffer
	args := []string{"fibduality", "-quiet", "-noise-std", "0"}

	app, err := New(args, &out, &errBuf)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := app.Run(ctx); err == nil {
		t.Error("Run() should fail when the context is already canceled")
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		args []string
		want bool
	}{
		{"long flag", []string{"--version"}, true},
		{"short flag", []string{"-V"}, true},
		{"any position", []string{"-server", "--version"}, true},
		{"absent", []string{"-quiet"}, false},
		{"empty", nil, false},
	}
	for _, tc := range cases {
		if got := HasVersionFlag(tc.args); got != tc.want {
			t.Errorf("%s: HasVersionFlag(%v) = %v, want %v", tc.name, tc.args, got, tc.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "fibduality") {
		t.Errorf("version output missing program name:\n%s", buf.String())
	}
}
