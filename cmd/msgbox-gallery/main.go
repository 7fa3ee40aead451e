// msgbox-gallery renders a sample box in every style and theme.
//
// Developer preview tool for eyeballing border glyphs and theme colors,
// including entries from a custom style catalog.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/msgbox/styles"
	"gitlab.com/tinyland/lab/msgbox/theme"
)

func main() {
	termWidth := flag.Int("width", 100, "Terminal width to pack boxes into")
	stylesPath := flag.String("styles", "", "Path to a YAML style catalog")
	themeName := flag.String("theme", "", "Render a single theme (default: all)")
	flag.Parse()

	catalog, err := styles.Load(*stylesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load style catalog: %v\n", err)
		os.Exit(1)
	}

	themes := theme.All()
	if *themeName != "" {
		themes = []theme.Theme{theme.ByName(*themeName)}
	}

	fmt.Println("=== msgbox style gallery ===")
	fmt.Printf("Styles: %d, Themes: %d\n", catalog.Len(), len(themes))
	fmt.Println()

	lines := sampleLines()

	for _, th := range themes {
		fmt.Printf("--- %s: %s\n\n", th.Name, th.Description)

		// Each box carries its own style name as the caption.
		var blocks []string
		for _, e := range catalog.Entries() {
			st := e.Style().WithCaption(e.Name)
			blocks = append(blocks, th.Generate(lines, st))
		}

		for _, row := range packRows(blocks, *termWidth) {
			fmt.Println(row)
			fmt.Println()
		}
	}
}

func sampleLines() []string {
	return []string{
		"The quick brown fox",
		"jumps over the lazy dog.",
	}
}

// packRows joins blocks side by side, starting a new row whenever the
// next block would push past width. A block wider than the terminal
// gets a row of its own.
func packRows(blocks []string, width int) []string {
	var rows []string
	var row []string
	used := 0

	const gap = "  "

	for _, block := range blocks {
		w := lipgloss.Width(block)
		if len(row) > 0 && used+len(gap)+w > width {
			rows = append(rows, joinRow(row, gap))
			row = nil
			used = 0
		}
		if len(row) > 0 {
			used += len(gap)
		}
		row = append(row, block)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, joinRow(row, gap))
	}

	return rows
}

func joinRow(blocks []string, gap string) string {
	spaced := make([]string, 0, len(blocks)*2)
	for i, block := range blocks {
		if i > 0 {
			spaced = append(spaced, gap)
		}
		spaced = append(spaced, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Preview every msgbox style and theme at once.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # All styles in all themes, packed to 100 columns\n")
		fmt.Fprintf(os.Stderr, "  %s\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview a custom catalog without color\n")
		fmt.Fprintf(os.Stderr, "  %s -styles ~/.config/msgbox/styles.yaml -theme nocolor\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Narrow terminal\n")
		fmt.Fprintf(os.Stderr, "  %s -width 60\n", os.Args[0])
	}
}
