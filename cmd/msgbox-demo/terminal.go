// Terminal size detection and input helpers for msgbox-demo.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/msgbox/internal/format"
)

// maxLineBytes caps a single input line at 1 MiB, well past the 64KB
// bufio.Scanner default that real log lines do exceed.
const maxLineBytes = 1 << 20

// detectTerminalSize returns the current terminal dimensions.
// It attempts TTY detection first via the term package, then falls back
// to COLUMNS/LINES environment variables, and finally to 80x24 defaults.
func detectTerminalSize() (width, height int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err == nil && w > 0 && h > 0 {
		return w, h
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			width = w
		}
	}
	if lines := os.Getenv("LINES"); lines != "" {
		if h, err := strconv.Atoi(lines); err == nil && h > 0 {
			height = h
		}
	}

	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	return width, height
}

// readLines collects newline-separated lines from r. Trailing newlines do
// not produce an extra empty line; interior empty lines are preserved.
// Lines beyond maxLineBytes surface a scan error rather than a silent
// partial read.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// blockWidth returns the visible width of the widest row, ignoring ANSI
// color sequences so themed boxes center the same as plain ones.
func blockWidth(rows []string) int {
	widest := 0
	for _, row := range rows {
		if w := format.VisibleWidth(row); w > widest {
			widest = w
		}
	}
	return widest
}
