// Package manpage generates a roff-formatted man page for msgbox-demo.
//
// The man page is generated at runtime from the live key map, style
// catalog, and compiled-in version information, keeping documentation
// in sync with the code automatically.
//
// Usage:
//
//	msgbox-demo --man | man -l -
//	msgbox-demo --man > ~/.local/share/man/man1/msgbox-demo.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/msgbox/styles"
	"gitlab.com/tinyland/lab/msgbox/theme"
	"gitlab.com/tinyland/lab/msgbox/tui"
)

// Generate produces a complete roff-formatted man(1) page for msgbox-demo.
// The version, commit, and date parameters are passed from the build-time
// linker variables so the man page always reflects the current build.
func Generate(version, commit, date string) string {
	var b strings.Builder

	writeHeader(&b, version)
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b)
	writeKeybindings(&b)
	writeStyles(&b)
	writeThemes(&b)
	writeFiles(&b)
	writeExamples(&b)
	writeEnvironment(&b)
	writeExitStatus(&b)
	writeSeeAlso(&b)
	writeAuthors(&b)
	writeBugs(&b)
	writeFooter(&b, version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeHeader(b *strings.Builder, version string) {
	month := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH MSGBOX-DEMO 1 \"%s\" \"msgbox-demo %s\" \"User Commands\"\n", month, version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
msgbox\-demo \- render text inside a Unicode message box
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B msgbox\-demo
[\fIOPTIONS\fR]
.br
.I command
|
.B msgbox\-demo
[\fIOPTIONS\fR]
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B msgbox\-demo
draws a box around text. Lines are read from stdin when it is piped,
otherwise a built-in sample is rendered. The box is sized to the longest
line, an optional caption is embedded in the bottom border, and border
glyphs come from a named style that can be overridden or extended through
a YAML catalog.
.PP
The tool operates in several modes:
.IP \(bu 2
.B Render mode
(default): Boxes the input with the selected style, caption, and theme,
then prints the result to stdout. \fB\-\-center\fR pads the box to the
middle of the terminal.
.IP \(bu 2
.B Listing modes
(\fB\-\-list\-styles\fR, \fB\-\-list\-themes\fR): Print the available
border styles or color themes and exit. Catalog files passed with
\fB\-\-styles\fR are included.
.IP \(bu 2
.B Playground mode
(\fB\-\-tui\fR): Launches an interactive Bubbletea UI for cycling styles
and themes and editing the caption, with keyboard and mouse support.
`)
}

func writeOptions(b *strings.Builder) {
	b.WriteString(`.SH OPTIONS
`)

	flags := []struct {
		flag string
		arg  string
		desc string
	}{
		{"caption", "TEXT", "Caption embedded in the bottom border. The box widens when the caption is longer than the longest input line. Empty (default) renders a plain bottom border."},
		{"style", "NAME", "Border style name. Default: light. Built-in styles and any catalog entries are accepted; \\fB\\-\\-list\\-styles\\fR shows what is available."},
		{"styles", "PATH", "Path to a YAML style catalog. Entries are merged over the built-in styles; an entry reusing a built-in name replaces it."},
		{"theme", "NAME", "Color theme for the rendered box. NAME must be one of: monitoring, minimal, full, nocolor. Unset (default) renders without color so piped output stays clean."},
		{"list\\-styles", "", "List available border styles with their glyphs and exit. The selected style is marked with an asterisk."},
		{"list\\-themes", "", "List available color themes and exit."},
		{"center", "", "Center the box horizontally in the terminal. Width is auto-detected unless \\fB\\-\\-term\\-width\\fR is set."},
		{"term\\-width", "N", "Override terminal width detection. 0 (default) means auto-detect."},
		{"tui", "", "Launch the interactive style playground instead of rendering once."},
		{"man", "", "Print this man page to stdout in roff format. Pipe to man(1) for formatted viewing: \\fBmsgbox\\-demo \\-\\-man | man \\-l \\-\\fR."},
		{"verbose", "", "Enable verbose (debug-level) logging to stderr."},
		{"version", "", "Print the version, commit hash, and build date, then exit."},
	}

	for _, f := range flags {
		b.WriteString(".TP\n")
		if f.arg != "" {
			fmt.Fprintf(b, ".BR \\-\\-%s \" \\fI%s\\fR\"\n", f.flag, f.arg)
		} else {
			fmt.Fprintf(b, ".B \\-\\-%s\n", f.flag)
		}
		b.WriteString(f.desc + "\n")
	}
}

func writeKeybindings(b *strings.Builder) {
	b.WriteString(`.SH KEYBINDINGS
The playground (\fB\-\-tui\fR) reads the following bindings. They are
taken from the live key map, so this list always matches the binary.
`)

	for _, group := range tui.Bindings() {
		fmt.Fprintf(b, ".PP\n\\fI%s:\\fR\n", group.Name)
		for _, binding := range group.Bindings {
			keysStr := strings.Join(binding.Keys(), ", ")
			fmt.Fprintf(b, ".TP\n.B %s\n%s\n", roffEscape(keysStr), binding.Help().Desc)
		}
	}

	b.WriteString(`.PP
Style tabs and the caption in the preview are also clickable.
`)
}

func writeStyles(b *strings.Builder) {
	b.WriteString(`.SH STYLES
A border style is six glyphs: the horizontal and vertical edges and the
four corners. Additional styles are loaded from a YAML catalog passed
with \fB\-\-styles\fR:
.PP
.nf
styles:
  \- name: dots
    horizontal: "."
    vertical: ":"
    top_left: "."
    top_right: "."
    bottom_left: "'"
    bottom_right: "'"
.fi
.PP
Every field is required. An entry named after a built-in style replaces
it; new names are appended after the built-ins.
.PP
The built-in styles are:
`)

	for _, e := range styles.Default().Entries() {
		fmt.Fprintf(b, ".TP\n.B %s\n%s %s %s %s %s %s\n", e.Name,
			e.TopLeft, e.TopRight, e.BottomLeft, e.BottomRight,
			e.Horizontal, e.Vertical)
	}
}

func writeThemes(b *strings.Builder) {
	b.WriteString(`.SH THEMES
Themes color the border, caption, and content without changing the box
geometry. Rendering is plain unless \fB\-\-theme\fR is given.
`)

	for _, t := range theme.All() {
		fmt.Fprintf(b, ".TP\n.B %s\n%s\n", t.Name, roffEscape(t.Description))
	}
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/msgbox/styles.yaml
Conventional location for a user style catalog. Catalogs are only read
when passed explicitly with \fB\-\-styles\fR.
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
Box a command's output with a caption:
.PP
.nf
ls | msgbox\-demo \-\-caption files
.fi
.PP
DOS-style double borders, centered in the terminal:
.PP
.nf
msgbox\-demo \-\-style double \-\-center
.fi
.PP
Render a colored box from a custom catalog:
.PP
.nf
dmesg | msgbox\-demo \-\-styles ~/.config/msgbox/styles.yaml \\
    \-\-style dots \-\-theme monitoring
.fi
.PP
List the available styles and themes:
.PP
.nf
msgbox\-demo \-\-list\-styles
msgbox\-demo \-\-list\-themes
.fi
.PP
Try styles interactively:
.PP
.nf
msgbox\-demo \-\-tui
.fi
.PP
View this man page:
.PP
.nf
msgbox\-demo \-\-man | man \-l \-
.fi
.PP
Install the man page permanently:
.PP
.nf
msgbox\-demo \-\-man > ~/.local/share/man/man1/msgbox\-demo.1
.fi
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(`.SH ENVIRONMENT
.TP
.B COLUMNS
Terminal width fallback when size detection fails and
\fB\-\-term\-width\fR is not set.
.TP
.B LINES
Terminal height fallback when size detection fails.
.TP
.B NO_COLOR
Disables colored output regardless of \fB\-\-theme\fR.
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(".SH EXIT STATUS\n")
	b.WriteString(".TP\n.B 0\n")
	b.WriteString("Success.\n")
	b.WriteString(".TP\n.B 1\n")
	b.WriteString("Failure: unknown style name, unreadable style catalog, or a playground error.\n")
}

func writeSeeAlso(b *strings.Builder) {
	b.WriteString(`.SH SEE ALSO
.BR boxes (1),
.BR figlet (1),
.BR cowsay (1),
.BR man (1)
`)
}

func writeAuthors(b *strings.Builder) {
	b.WriteString(`.SH AUTHORS
Tinyland Lab <https://gitlab.com/tinyland/lab>
`)
}

func writeBugs(b *strings.Builder) {
	b.WriteString(`.SH BUGS
Report bugs at <https://gitlab.com/tinyland/lab/msgbox/\-/issues>.
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, ".SH VERSION\n%s (%s) built %s\n", version, commit, date)
}
