// Package format provides shared string width and padding utilities.
//
// Widths are counted in runes, matching the message box contract that one
// character occupies one column. VisibleWidth additionally skips ANSI
// escape sequences so colored output can be measured against its plain
// rendering.
package format

import (
	"strings"
	"unicode/utf8"
)

// Width returns the number of runes in s.
//
// This is deliberately not a terminal-cell measure: box geometry is
// defined over characters, so a box stays self-consistent even when wide
// glyphs render it visually ragged.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// VisibleWidth returns the rune count of s with ANSI escape sequences
// excluded. Sequences run from ESC to the next letter or tilde, which
// covers SGR color codes and the common cursor controls.
func VisibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '~' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		width++
	}
	return width
}

// PadRight pads s with spaces to exactly width runes. Strings already at
// or beyond width are returned unchanged; padding never truncates.
func PadRight(s string, width int) string {
	if gap := width - Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Longest returns the rune width of the longest string in lines, or 0
// for an empty slice.
func Longest(lines []string) int {
	longest := 0
	for _, line := range lines {
		if w := Width(line); w > longest {
			longest = w
		}
	}
	return longest
}
