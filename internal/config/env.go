// Package config provides the configuration management for the fibduality
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// getEnvString returns the value of the environment variable with the
// given key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int, or the default value if
// not set or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt64 returns the value of the environment variable with the
// given key (prefixed with EnvPrefix) parsed as int64, or the default
// value if not set or invalid.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvFloat returns the value of the environment variable with the
// given key (prefixed with EnvPrefix) parsed as float64, or the default
// value if not set or invalid.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as bool, or the default value if
// not set. Accepts "true", "1", "yes" as true; "false", "0", "no" as
// false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line. This
// is used to determine whether to apply environment variable overrides:
// explicit flags always win over the environment.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides overrides configuration fields from FIBDUALITY_*
// environment variables for every flag the user did not set explicitly.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "table-size") {
		config.TableSize = getEnvInt("TABLE_SIZE", config.TableSize)
	}
	if !isFlagSet(fs, "sim-table-size") {
		config.SimTableSize = getEnvInt("SIM_TABLE_SIZE", config.SimTableSize)
	}
	if !isFlagSet(fs, "base-conductance") {
		config.BaseConductance = getEnvFloat("BASE_CONDUCTANCE", config.BaseConductance)
	}
	if !isFlagSet(fs, "noise-std") {
		config.NoiseStd = getEnvFloat("NOISE_STD", config.NoiseStd)
	}
	if !isFlagSet(fs, "voltage") {
		config.Voltage = getEnvFloat("VOLTAGE", config.Voltage)
	}
	if !isFlagSet(fs, "seed") {
		config.Seed = getEnvInt64("SEED", config.Seed)
	}
	if !isFlagSet(fs, "cache-capacity") {
		config.CacheCapacity = getEnvInt("CACHE_CAPACITY", config.CacheCapacity)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR_OUTPUT", config.NoColor)
	}
	// The conventional NO_COLOR variable (no prefix) also disables color.
	if os.Getenv("NO_COLOR") != "" {
		config.NoColor = true
	}
}
