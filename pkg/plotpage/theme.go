package plotpage

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme is returned by ParseTheme for names it does not know.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme represents a color theme for generated pages.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ParseTheme converts a theme name into a Theme.
func ParseTheme(name string) (Theme, error) {
	switch Theme(name) {
	case ThemeLight, ThemeDark:
		return Theme(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// ThemeConfig holds the styling values of one theme.
type ThemeConfig struct {
	// Page colors.
	Background  string
	Surface     string
	Border      string
	TextPrimary string
	TextMuted   string
	Accent      string

	// Chart colors.
	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string

	// Series is the palette cycled through for bar series.
	Series []string
}

// GetThemeConfig returns the configuration for a given theme.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	Background:  "#fafaf9", // stone-50.
	Surface:     "#ffffff",
	Border:      "#e7e5e4", // stone-200.
	TextPrimary: "#1c1917", // stone-900.
	TextMuted:   "#78716c", // stone-500.
	Accent:      "#a16207", // amber-700.

	ChartBackground: "transparent",
	ChartGrid:       "#e7e5e4",
	ChartAxis:       "#a8a29e", // stone-400.
	ChartText:       "#44403c", // stone-700.
	ChartTextMuted:  "#78716c",

	Series: []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b"},
}

var darkTheme = ThemeConfig{
	Background:  "#0c0a09", // stone-950.
	Surface:     "#1c1917",
	Border:      "#44403c",
	TextPrimary: "#fafaf9",
	TextMuted:   "#a8a29e",
	Accent:      "#d97706", // amber-600.

	ChartBackground: "transparent",
	ChartGrid:       "#44403c",
	ChartAxis:       "#57534e", // stone-600.
	ChartText:       "#d6d3d1", // stone-300.
	ChartTextMuted:  "#a8a29e",

	Series: []string{"#38bdf8", "#fb923c", "#4ade80", "#f87171", "#a78bfa", "#fbbf24"},
}
