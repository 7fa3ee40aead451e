// Package theme colorizes rendered message boxes with lipgloss without
// touching their geometry. Painting happens after layout, so a themed box
// and its plain rendering always agree on visible width.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/msgbox"
)

// Theme defines a color scheme for rendered boxes.
type Theme struct {
	Name        string
	Description string
	// Colors
	Border  lipgloss.Color
	Caption lipgloss.Color
	Content lipgloss.Color
	// BoldCaption renders the caption tag in bold.
	BoldCaption bool
	// Enabled gates all painting. A disabled theme passes output through
	// unchanged.
	Enabled bool
}

// Predefined themes.
var (
	// MonitoringTheme is the default theme with purple borders and cyan
	// captions, content left unstyled.
	MonitoringTheme = Theme{
		Name:        "monitoring",
		Description: "Purple borders with cyan captions",
		Border:      lipgloss.Color("#7C3AED"),
		Caption:     lipgloss.Color("#06B6D4"),
		Content:     "",
		BoldCaption: true,
		Enabled:     true,
	}

	// MinimalTheme is a low-contrast theme with muted borders.
	MinimalTheme = Theme{
		Name:        "minimal",
		Description: "Muted borders, plain content",
		Border:      lipgloss.Color("#9CA3AF"),
		Caption:     lipgloss.Color("#8B5CF6"),
		Content:     "",
		BoldCaption: false,
		Enabled:     true,
	}

	// FullTheme styles borders, captions, and content.
	FullTheme = Theme{
		Name:        "full",
		Description: "Borders, captions, and content all styled",
		Border:      lipgloss.Color("#A78BFA"),
		Caption:     lipgloss.Color("#22D3EE"),
		Content:     lipgloss.Color("#D1D5DB"),
		BoldCaption: true,
		Enabled:     true,
	}

	// NoColorTheme disables painting entirely.
	NoColorTheme = Theme{
		Name:        "nocolor",
		Description: "No styling",
		Enabled:     false,
	}
)

// allThemes is the canonical list of available themes.
var allThemes = []Theme{MonitoringTheme, MinimalTheme, FullTheme, NoColorTheme}

// ByName returns the theme matching the given name.
// Unknown names return MonitoringTheme as the default.
func ByName(name string) Theme {
	for _, t := range allThemes {
		if t.Name == name {
			return t
		}
	}
	return MonitoringTheme
}

// All returns all available themes.
func All() []Theme {
	out := make([]Theme, len(allThemes))
	copy(out, allThemes)
	return out
}

// Names returns the available theme names in listing order.
func Names() []string {
	names := make([]string, len(allThemes))
	for i, t := range allThemes {
		names[i] = t.Name
	}
	return names
}

// Paint colorizes a box previously rendered with the given style. Border
// glyphs take the border color, the "<caption>" tag takes the caption
// color, and interior text takes the content color when one is set.
// Disabled themes return rendered unchanged.
func (t Theme) Paint(rendered string, style msgbox.Style) string {
	if !t.Enabled {
		return rendered
	}

	border := lipgloss.NewStyle().Foreground(t.Border)
	caption := lipgloss.NewStyle().Foreground(t.Caption).Bold(t.BoldCaption)

	rows := strings.Split(rendered, "\n")
	for i, row := range rows {
		switch {
		case i == 0 || (i == len(rows)-1 && style.Caption == ""):
			rows[i] = border.Render(row)
		case i == len(rows)-1:
			tag := "<" + style.Caption + ">"
			rows[i] = caption.Render(tag) + border.Render(strings.TrimPrefix(row, tag))
		default:
			rows[i] = t.paintContentRow(row, style, border)
		}
	}
	return strings.Join(rows, "\n")
}

func (t Theme) paintContentRow(row string, style msgbox.Style, border lipgloss.Style) string {
	body := strings.TrimPrefix(row, style.Vertical)
	body = strings.TrimSuffix(body, style.Vertical)
	if t.Content != "" {
		body = lipgloss.NewStyle().Foreground(t.Content).Render(body)
	}
	return border.Render(style.Vertical) + body + border.Render(style.Vertical)
}

// Generate renders lines with the given style and paints the result with
// the theme.
func (t Theme) Generate(lines []string, style msgbox.Style) string {
	return t.Paint(msgbox.GenerateWithStyle(lines, style), style)
}
