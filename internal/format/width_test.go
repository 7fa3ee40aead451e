package format

import "testing"

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"accented", "héllo wörld", 11},
		{"box drawing", "╭──╮", 4},
		{"multibyte only", "日本語", 3},
		{"spaces preserved", "  a  ", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.s); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"plain text", "hello", 5},
		{"empty", "", 0},
		{"ansi color", "\x1b[31mred\x1b[0m", 3},
		{"mixed ansi", "pre\x1b[32mgreen\x1b[0mpost", 12},
		{"bold", "\x1b[1mbold\x1b[0m", 4},
		{"multiple escapes", "\x1b[1;31;40mtext\x1b[0m", 4},
		{"cursor show", "\x1b[?25h", 0},
		{"tilde terminator", "\x1b[15~", 0},
		{"styled box row", "\x1b[35m│\x1b[0m text \x1b[35m│\x1b[0m", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleWidth(tt.s); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"pads short string", "ab", 5, "ab   "},
		{"exact width unchanged", "abcde", 5, "abcde"},
		{"never truncates", "abcdef", 3, "abcdef"},
		{"empty to width", "", 3, "   "},
		{"runes not bytes", "héllo", 7, "héllo  "},
		{"zero width", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadRight(tt.s, tt.width); got != tt.want {
				t.Errorf("PadRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestLongest(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"nil", nil, 0},
		{"empty slice", []string{}, 0},
		{"single empty line", []string{""}, 0},
		{"picks longest", []string{"ab", "abcd", "a"}, 4},
		{"counts runes", []string{"héllo wörld", "ascii"}, 11},
		{"trailing spaces count", []string{"ab   ", "abc"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Longest(tt.lines); got != tt.want {
				t.Errorf("Longest(%q) = %d, want %d", tt.lines, got, tt.want)
			}
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exact limit", "abcde", 5, "abcde"},
		{"truncated with ellipsis", "abcdefghij", 7, "abcd..."},
		{"tiny limit hard cut", "abcdef", 3, "abc"},
		{"zero limit", "abc", 0, ""},
		{"unicode aware", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWithEllipsis(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q",
					tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"light", "double", "light", "sharp", "double"})
	want := []string{"light", "double", "sharp"}
	if len(got) != len(want) {
		t.Fatalf("UniqueStrings returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueStrings[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
