// Package app wires the fibduality application together: configuration
// parsing, logger construction, and dispatch between the benchmark CLI
// mode and the HTTP server mode.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibduality/internal/analog"
	"github.com/agbru/fibduality/internal/cli"
	"github.com/agbru/fibduality/internal/config"
	"github.com/agbru/fibduality/internal/server"
	"github.com/agbru/fibduality/internal/ui"
	"github.com/agbru/fibduality/pkg/models"
)

// benchmarkPairs are the consecutive Fibonacci pairs exercised by the
// default benchmark suite.
var benchmarkPairs = [][2]int64{
	{8, 13},
	{13, 21},
	{34, 55},
	{144, 233},
}

// Application represents the fibduality application instance. It
// encapsulates the configuration and provides methods to run the
// application in its various modes (benchmark CLI, server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// OutWriter receives the benchmark report (typically os.Stdout).
	OutWriter io.Writer
	// ErrWriter receives errors and log output (typically os.Stderr).
	ErrWriter io.Writer
	// Logger is the root structured logger.
	Logger zerolog.Logger
}

// New creates a new Application instance by parsing command-line
// arguments. It validates the configuration and returns an error if
// parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - outWriter: The writer for report output.
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, outWriter, errWriter io.Writer) (*Application, error) {
	programName := "fibduality"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	if cfg.NoColor {
		ui.DisableColor()
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if cfg.Quiet {
		level = zerolog.ErrorLevel
	}
	logger := zerolog.New(errWriter).Level(level).With().Timestamp().Logger()

	return &Application{
		Config:    cfg,
		OutWriter: outWriter,
		ErrWriter: errWriter,
		Logger:    logger,
	}, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The context for managing cancellation (typically bound to
//     SIGINT/SIGTERM via SetupSignals).
//
// Returns:
//   - error: The first error encountered, or nil.
func (a *Application) Run(ctx context.Context) error {
	if a.Config.ServerMode {
		return a.runServer(ctx)
	}
	return a.runBenchmark(ctx)
}

// runServer starts the HTTP API and blocks until shutdown.
func (a *Application) runServer(ctx context.Context) error {
	srv := server.NewServer(a.Config, server.WithLogger(a.Logger))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	return g.Wait()
}

// runBenchmark executes the duality suite: one multiplication run and
// one GCD run per benchmark pair, rendered as a report or as JSON.
func (a *Application) runBenchmark(ctx context.Context) error {
	sim := a.newSimulator()

	spin := cli.NewSpinner(a.ErrWriter, a.Config.Quiet || a.Config.JSONOutput)
	spin.Start()
	defer spin.Stop()

	entries := make([]models.DualityEntry, 0, len(benchmarkPairs))
	for _, pair := range benchmarkPairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		x, y := big.NewInt(pair[0]), big.NewInt(pair[1])
		spin.UpdateSuffix(fmt.Sprintf("simulating %v×%v", x, y))

		entry, err := runPair(sim, x, y, a.Config.Voltage)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	spin.Stop()

	if a.Config.JSONOutput {
		enc := json.NewEncoder(a.OutWriter)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	cli.PrintReport(a.OutWriter, entries, a.Config.Quiet)
	return nil
}

// newSimulator builds the simulator from the configuration. A zero noise
// standard deviation selects the noiseless source so runs are exact.
func (a *Application) newSimulator() *analog.Simulator {
	opts := []analog.Option{analog.WithLogger(a.Logger)}
	if a.Config.NoiseStd == 0 {
		opts = append(opts, analog.WithNoiseSource(analog.Noiseless()))
	}
	return analog.New(a.Config.ToSimulatorOptions(), opts...)
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with
// success after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// runPair executes both simulation modes for one operand pair.
func runPair(sim *analog.Simulator, a, b *big.Int, voltage float64) (models.DualityEntry, error) {
	mul, err := sim.SimulateMultiplication(a, b, voltage)
	if err != nil {
		return models.DualityEntry{}, err
	}
	gcd, err := sim.SimulateGCDComputation(a, b)
	if err != nil {
		return models.DualityEntry{}, err
	}
	return models.DualityEntry{A: a, B: b, Multiplication: mul, GCD: gcd}, nil
}
