package promptpath

import "github.com/fatih/color"

// ColorMode defines color output behavior.
type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"   // Color when TTY
	ColorModeAlways ColorMode = "always" // Always color
	ColorModeNever  ColorMode = "never"  // No color
)

var (
	// Report section headers
	colorHeader = color.New(color.FgCyan, color.Bold).SprintFunc()

	// Speedup summary line
	colorSpeedup = color.New(color.FgGreen).SprintFunc()
)

// SetColorMode configures color output based on mode.
func SetColorMode(mode ColorMode) {
	switch mode {
	case ColorModeAlways:
		color.NoColor = false
	case ColorModeNever:
		color.NoColor = true
	case ColorModeAuto:
		// Use fatih/color default behavior (TTY detection)
	}
}

// IsColorEnabled returns whether color output is enabled.
// This should be called after SetColorMode.
func IsColorEnabled() bool {
	return !color.NoColor
}
