// Package style defines the visual styling for proflink's terminal output.
//
// Styles use semantic names and adaptive colors loaded from an embedded YAML
// definition, so light and dark terminals both get readable output.
package style

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	MarginTop  int    `yaml:"marginTop,omitempty"`
	PaddingLeft int   `yaml:"paddingLeft,omitempty"`
}

type stylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

func init() {
	var cfg stylesConfig
	if err := yaml.Unmarshal(stylesYAML, &cfg); err != nil {
		registry = map[string]lipgloss.Style{}
		return
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		s := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)
		if color, ok := colors[def.Foreground]; ok {
			s = s.Foreground(color)
		}
		if def.MarginTop > 0 {
			s = s.MarginTop(def.MarginTop)
		}
		if def.PaddingLeft > 0 {
			s = s.PaddingLeft(def.PaddingLeft)
		}
		registry[name] = s
	}
}

// Get returns the named style, or a zero style for unknown names.
func Get(name string) lipgloss.Style {
	return registry[name]
}

// Colorized reports whether the terminal supports color output at all.
func Colorized() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

// Render applies the named style when the terminal supports color,
// and returns the raw text otherwise.
func Render(name, text string) string {
	if !Colorized() {
		return text
	}
	return Get(name).Render(text)
}
