// Package msgbox renders slices of text lines as Unicode box-drawing
// frames ("message boxes"). Every line is padded to a common interior
// width, and an optional caption can be embedded in the bottom border:
//
//	╭─────────────────────╮
//	│ A vec:    [1, 2, 3] │
//	│ A tuple:  (1, 2, 3) │
//	│ A string: abcdefghi │
//	<Config>──────────────╯
//
// Rendering is a pure computation over its inputs: no I/O, no shared
// state, and no failure modes. Widths are counted in characters (runes),
// not bytes, so multi-byte glyphs such as the box-drawing characters
// themselves count as a single column. Wide and combining characters are
// outside the width contract and may misalign the frame visually.
//
// The package ships border presets (Light, Double, Sharp, Heavy, ASCII)
// that all share the same width arithmetic. Named catalogs of styles,
// colored rendering, and an interactive preview live in the styles,
// theme, and tui subpackages.
package msgbox

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/msgbox/internal/format"
)

// ErrInvalidStyle is the sentinel error wrapped by Style.Validate failures.
var ErrInvalidStyle = errors.New("invalid border style")

// Style configures the six border glyphs and the optional caption of a
// message box. Each glyph is substituted verbatim into the frame; glyphs
// must be non-empty and should occupy one visual column each (the
// renderer counts characters but cannot verify terminal columns, so
// matching glyph widths across fields is the caller's responsibility).
type Style struct {
	// Horizontal is the glyph repeated along the top and bottom borders.
	Horizontal string
	// Vertical is the glyph at both ends of every content row.
	Vertical string
	// TopLeft is the top-left corner glyph.
	TopLeft string
	// TopRight is the top-right corner glyph.
	TopRight string
	// BottomLeft is the bottom-left corner glyph. It is replaced by the
	// "<caption>" tag when a caption is set.
	BottomLeft string
	// BottomRight is the bottom-right corner glyph.
	BottomRight string
	// Caption is rendered inside the bottom border as "<caption>" in
	// place of the bottom-left corner. An empty caption means none.
	Caption string
}

// WithCaption returns a copy of the style with the given caption set.
// The receiver is left unmodified; presets stay reusable after deriving
// captioned variants from them. An empty caption clears the field,
// restoring the symmetric bottom border.
func (s Style) WithCaption(caption string) Style {
	s.Caption = caption
	return s
}

// Validate reports whether every border glyph is present. Rendering never
// validates (it is total over all inputs, and an unusual style is the
// caller's prerogative); this is for code that accepts styles from the
// outside, such as catalog files. The returned error wraps
// ErrInvalidStyle.
func (s Style) Validate() error {
	glyphs := []struct {
		name  string
		glyph string
	}{
		{"horizontal", s.Horizontal},
		{"vertical", s.Vertical},
		{"top_left", s.TopLeft},
		{"top_right", s.TopRight},
		{"bottom_left", s.BottomLeft},
		{"bottom_right", s.BottomRight},
	}
	for _, g := range glyphs {
		if g.glyph == "" {
			return fmt.Errorf("%w: %s glyph is required", ErrInvalidStyle, g.name)
		}
	}
	return nil
}

// Generate renders lines as a message box using the Light preset.
//
//	msg := msgbox.Generate([]string{"status: ok", "uptime: 4d"})
func Generate(lines []string) string {
	return GenerateWithStyle(lines, Light())
}

// GenerateWithCaption renders lines using the Light preset with the given
// caption embedded in the bottom border.
func GenerateWithCaption(lines []string, caption string) string {
	return GenerateWithStyle(lines, Light().WithCaption(caption))
}

// GenerateWithStyle renders lines as a message box framed by the given
// style. The result is len(lines)+2 rows joined by newlines with no
// trailing newline, and every row has the same character length:
// interior width plus four (two border glyphs and two padding columns).
//
// The interior width is the maximum of the longest line and the caption,
// so the caption competes with content for width, never the reverse.
// Inputs may be empty: zero lines produce just the two border rows, and
// empty lines render as blank padded rows.
func GenerateWithStyle(lines []string, style Style) string {
	interior := format.Longest(lines)
	if w := format.Width(style.Caption); w > interior {
		interior = w
	}

	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, style.TopLeft+strings.Repeat(style.Horizontal, interior+2)+style.TopRight)

	for _, line := range lines {
		rows = append(rows, style.Vertical+" "+format.PadRight(line, interior)+" "+style.Vertical)
	}

	if style.Caption != "" {
		// The "<" and ">" occupy the two padding columns that the
		// symmetric border spends on bar repetition, so the repeat count
		// is interior-len(caption)+1, keeping every row the same width.
		rows = append(rows, "<"+style.Caption+">"+
			strings.Repeat(style.Horizontal, interior-format.Width(style.Caption)+1)+
			style.BottomRight)
	} else {
		rows = append(rows, style.BottomLeft+strings.Repeat(style.Horizontal, interior+2)+style.BottomRight)
	}

	return strings.Join(rows, "\n")
}
