// Package styles holds the color palette and lipgloss styles of the CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for command reports.
type Theme struct {
	// Accent colors
	Primary   lipgloss.Color // Purple - method names, headings
	Secondary lipgloss.Color // Gold - paths

	// Text hierarchy
	FgBase  lipgloss.Color
	FgMuted lipgloss.Color // labels, timestamps

	// Status colors
	Success lipgloss.Color // Green - fits
	Error   lipgloss.Color // Red - does not fit
	Warning lipgloss.Color // Orange - resized

	styles *Styles
}

// Styles contains pre-built lipgloss styles for report lines.
type Styles struct {
	Base    lipgloss.Style
	Label   lipgloss.Style // left column of key/value lines
	Title   lipgloss.Style
	Method  lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:  lipgloss.Color("#c0c0c0"),
	FgMuted: lipgloss.Color("#808080"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// labelWidth aligns the values of key/value report lines.
const labelWidth = 11

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Label:   lipgloss.NewStyle().Foreground(t.FgMuted).Width(labelWidth),
		Title:   base.Bold(true),
		Method:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(t.Secondary),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Field renders a "label value" line.
func (s *Styles) Field(label, value string) string {
	return s.Label.Render(label) + " " + value
}
