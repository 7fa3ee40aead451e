// msgbox-demo renders text inside a Unicode message box.
//
// Lines come from stdin when piped, otherwise a built-in sample is used.
// The border style, an optional caption embedded in the bottom border,
// and a color theme are selected with flags; -tui opens an interactive
// playground for trying styles with the keyboard or mouse.
//
// Usage:
//
//	msgbox-demo [flags]
//
// Flags:
//
//	-caption string   Caption embedded in the bottom border
//	-style string     Border style name (default "light")
//	-styles string    Path to a YAML style catalog
//	-theme string     Color theme (monitoring|minimal|full|nocolor)
//	-list-styles      List available styles and exit
//	-list-themes      List available themes and exit
//	-center           Center the box horizontally in the terminal
//	-term-width int   Terminal width override (0 = auto-detect)
//	-tui              Launch the interactive style playground
//	-man              Print the man page in roff format and exit
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/msgbox/docs/manpage"
	"gitlab.com/tinyland/lab/msgbox/styles"
	"gitlab.com/tinyland/lab/msgbox/theme"
	"gitlab.com/tinyland/lab/msgbox/tui"
)

func main() {
	var (
		caption     = flag.String("caption", "", "Caption embedded in the bottom border")
		styleName   = flag.String("style", "light", "Border style name")
		stylesPath  = flag.String("styles", "", "Path to a YAML style catalog")
		themeName   = flag.String("theme", "", "Color theme (monitoring|minimal|full|nocolor)")
		listStyles  = flag.Bool("list-styles", false, "List available styles and exit")
		listThemes  = flag.Bool("list-themes", false, "List available themes and exit")
		center      = flag.Bool("center", false, "Center the box horizontally in the terminal")
		termWidth   = flag.Int("term-width", 0, "Terminal width override (0 = auto-detect)")
		runTUI      = flag.Bool("tui", false, "Launch the interactive style playground")
		showMan     = flag.Bool("man", false, "Print the man page in roff format and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("msgbox-demo %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *showMan {
		fmt.Print(manpage.Generate(version, commit, date))
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	catalog, err := styles.Load(*stylesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load style catalog: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("style catalog loaded",
		slog.String("path", *stylesPath),
		slog.Int("styles", catalog.Len()),
	)

	// ---------------------------------------------------------------
	// Listing modes
	// ---------------------------------------------------------------

	if *listStyles {
		for _, e := range catalog.Entries() {
			marker := "  "
			if e.Name == *styleName {
				marker = "* "
			}
			fmt.Printf("%s%-12s %s %s %s %s %s %s\n", marker, e.Name,
				e.TopLeft, e.TopRight, e.BottomLeft, e.BottomRight,
				e.Horizontal, e.Vertical)
		}
		os.Exit(0)
	}

	if *listThemes {
		for _, t := range theme.All() {
			marker := "  "
			if t.Name == *themeName {
				marker = "* "
			}
			fmt.Printf("%s%-12s %s\n", marker, t.Name, t.Description)
		}
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Input
	// ---------------------------------------------------------------

	lines := sampleLines()
	if !term.IsTerminal(os.Stdin.Fd()) {
		var err error
		lines, err = readLines(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read stdin: %v\n", err)
			os.Exit(1)
		}
	}
	logger.Debug("input collected", slog.Int("lines", len(lines)))

	// ---------------------------------------------------------------
	// TUI mode
	// ---------------------------------------------------------------

	if *runTUI {
		defer func() {
			if r := recover(); r != nil {
				// Attempt to restore terminal from alt-screen before printing error.
				fmt.Print("\x1b[?1049l\x1b[?25h")
				fmt.Fprintf(os.Stderr, "msgbox-demo: TUI panic: %v\n", r)
				os.Exit(1)
			}
		}()

		model := tui.NewModel(catalog, lines)
		model.SetCaption(*caption)
		if *themeName != "" {
			model.SetTheme(*themeName)
		}

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Render
	// ---------------------------------------------------------------

	style, err := catalog.Get(*styleName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	style = style.WithCaption(*caption)

	th := theme.NoColorTheme
	if *themeName != "" {
		th = theme.ByName(*themeName)
	}
	logger.Debug("rendering",
		slog.String("style", *styleName),
		slog.String("theme", th.Name),
		slog.String("caption", *caption),
	)

	out := th.Generate(lines, style)

	if *center {
		width := *termWidth
		if width <= 0 {
			width, _ = detectTerminalSize()
		}
		out = centerBlock(out, width)
	}

	fmt.Println(out)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render stdin (or sample text) inside a Unicode message box.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Box a command's output with a caption\n")
		fmt.Fprintf(os.Stderr, "  ls | %s -caption files\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # DOS-style double borders, centered\n")
		fmt.Fprintf(os.Stderr, "  %s -style double -center\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Interactive playground with a custom catalog\n")
		fmt.Fprintf(os.Stderr, "  %s -styles ~/.config/msgbox/styles.yaml -tui\n", os.Args[0])
	}
}

// sampleLines is the demo content shown when stdin is a terminal.
func sampleLines() []string {
	return []string{
		"msgbox renders text in Unicode frames.",
		"",
		"Pipe any text to box it:",
		"  dmesg | msgbox-demo -caption kernel",
	}
}

// centerBlock left-pads every row of block so the box sits horizontally
// centered in the given terminal width. Blocks wider than the terminal
// are returned unchanged.
func centerBlock(block string, width int) string {
	rows := strings.Split(block, "\n")
	if len(rows) == 0 {
		return block
	}

	pad := (width - blockWidth(rows)) / 2
	if pad <= 0 {
		return block
	}

	indent := strings.Repeat(" ", pad)
	for i, row := range rows {
		rows[i] = indent + row
	}
	return strings.Join(rows, "\n")
}
