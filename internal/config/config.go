// Package config provides the configuration management for the fibduality
// application. It defines the data structure for the configuration,
// handles the parsing of command-line arguments, and performs validation
// on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/fibduality/internal/analog"
	apperrors "github.com/agbru/fibduality/internal/errors"
	"github.com/agbru/fibduality/internal/fibtable"
	"github.com/agbru/fibduality/internal/fractal"
)

// EnvPrefix is the prefix for all environment variables used by
// fibduality. Environment variables provide an alternative to CLI flags
// for configuration, following the 12-Factor App methodology.
const EnvPrefix = "FIBDUALITY_"

// Default configuration values. These can be overridden via command-line
// flags or environment variables.
const (
	// DefaultTableSize is the default multiplier table size.
	DefaultTableSize = fibtable.DefaultSize
	// DefaultSimTableSize is the default simulator table size.
	DefaultSimTableSize = analog.DefaultTableSize
	// DefaultBaseConductance is the default unit conductance in siemens.
	DefaultBaseConductance = analog.DefaultBaseConductance
	// DefaultNoiseStd is the default device variation (5%).
	DefaultNoiseStd = analog.DefaultNoiseStd
	// DefaultVoltage is the default read voltage.
	DefaultVoltage = analog.DefaultVoltage
	// DefaultCacheCapacity is the default multiplier cache capacity.
	DefaultCacheCapacity = fractal.DefaultCacheCapacity
	// DefaultPort is the default server port.
	DefaultPort = "8080"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the Fibonacci table sizes to the simulated device
// characteristics.
type AppConfig struct {
	// TableSize is the number of Fibonacci terms for the standalone
	// multiplier.
	TableSize int
	// SimTableSize is the number of Fibonacci terms backing the analog
	// simulator's cell array.
	SimTableSize int
	// BaseConductance is the nominal unit conductance in siemens.
	BaseConductance float64
	// NoiseStd is the standard deviation of the simulated device
	// variation. Zero disables noise injection entirely.
	NoiseStd float64
	// Voltage is the read voltage applied during multiplication runs.
	Voltage float64
	// Seed seeds the noise source; 0 selects a time-based seed.
	Seed int64
	// CacheCapacity bounds the multiplier's memoization cache.
	CacheCapacity int
	// JSONOutput, if true, emits the benchmark results as JSON.
	JSONOutput bool
	// Quiet suppresses banners and progress output for scripting.
	Quiet bool
	// NoColor disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Verbose enables debug-level logging.
	Verbose bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
}

// ToSimulatorOptions converts the application configuration into
// analog.Options for the simulator.
func (c AppConfig) ToSimulatorOptions() analog.Options {
	return analog.Options{
		TableSize:       c.SimTableSize,
		BaseConductance: c.BaseConductance,
		NoiseStd:        c.NoiseStd,
		Seed:            c.Seed,
	}
}

// ToMultiplierOptions converts the application configuration into
// fractal.Options for the standalone multiplier.
func (c AppConfig) ToMultiplierOptions() fractal.Options {
	return fractal.Options{CacheCapacity: c.CacheCapacity}
}

// Validate checks the semantic consistency of the configuration
// parameters. It ensures numerical values are within valid ranges.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is
//     invalid, nil otherwise.
func (c AppConfig) Validate() error {
	if c.TableSize < 2 {
		return apperrors.NewConfigError("table size must be at least 2: %d", c.TableSize)
	}
	if c.SimTableSize < 2 {
		return apperrors.NewConfigError("simulator table size must be at least 2: %d", c.SimTableSize)
	}
	if c.BaseConductance <= 0 {
		return apperrors.NewConfigError("base conductance must be strictly positive: %g", c.BaseConductance)
	}
	if c.NoiseStd < 0 {
		return apperrors.NewConfigError("noise standard deviation cannot be negative: %g", c.NoiseStd)
	}
	if c.Voltage <= 0 {
		return apperrors.NewConfigError("voltage must be strictly positive: %g", c.Voltage)
	}
	if c.Port == "" {
		return apperrors.NewConfigError("port cannot be empty")
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an
// AppConfig struct. It defines all the command-line flags, sets their
// default values, and handles the parsing process. After parsing, it
// applies environment variable overrides for flags not explicitly set and
// validates the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments
// and output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage
//     information will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.IntVar(&config.TableSize, "table-size", DefaultTableSize, "Number of Fibonacci terms in the multiplier table.")
	fs.IntVar(&config.SimTableSize, "sim-table-size", DefaultSimTableSize, "Number of Fibonacci terms in the simulated cell array.")
	fs.Float64Var(&config.BaseConductance, "base-conductance", DefaultBaseConductance, "Nominal unit conductance in siemens.")
	fs.Float64Var(&config.NoiseStd, "noise-std", DefaultNoiseStd, "Standard deviation of the simulated device variation (0 disables noise).")
	fs.Float64Var(&config.Voltage, "voltage", DefaultVoltage, "Read voltage applied during multiplication runs.")
	fs.Int64Var(&config.Seed, "seed", 0, "Noise source seed (0 uses a time-based seed).")
	fs.IntVar(&config.CacheCapacity, "cache-capacity", DefaultCacheCapacity, "Maximum number of memoized multiplier results.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug-level logging.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
