// Package ui provides theme and color support for the application's user
// interface. It defines ANSI escape code helpers so the CLI report layer
// stays decoupled from concrete terminal styling.
package ui

import (
	"os"
	"sync"
)

// Theme defines a color scheme for UI output. Each field contains an ANSI
// escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes.
	Success string
	// Warning is used for caution messages.
	Warning string
	// Error indicates failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all styling. Selected when color output is
	// suppressed via configuration or the NO_COLOR convention.
	NoColorTheme = Theme{Name: "none"}
)

var (
	themeMu      sync.RWMutex
	currentTheme = defaultTheme()
)

func defaultTheme() Theme {
	if os.Getenv("NO_COLOR") != "" {
		return NoColorTheme
	}
	return DarkTheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// DisableColor switches to the no-color theme.
func DisableColor() { SetTheme(NoColorTheme) }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorPrimary returns the primary accent color from the current theme.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary color from the current theme.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the success color from the current theme.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the warning color from the current theme.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error color from the current theme.
func ColorError() string { return GetCurrentTheme().Error }

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return GetCurrentTheme().Reset }
