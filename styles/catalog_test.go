package styles

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/msgbox"
)

func TestDefault(t *testing.T) {
	c := Default()

	want := []string{"light", "double", "sharp", "heavy", "ascii"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d built-in styles, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if c.Len() != len(want) {
		t.Errorf("expected Len()=%d, got %d", len(want), c.Len())
	}
}

func TestDefaultEntriesValidate(t *testing.T) {
	file := File{Styles: Default().Entries()}
	if err := file.Validate(); err != nil {
		t.Errorf("built-in styles should be valid, got error: %v", err)
	}
}

func TestGet(t *testing.T) {
	c := Default()

	style, err := c.Get("double")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style.Horizontal != "═" || style.Vertical != "║" {
		t.Errorf("expected double bars, got horizontal=%q vertical=%q",
			style.Horizontal, style.Vertical)
	}
	if style.Caption != "" {
		t.Errorf("expected no caption on catalog style, got %q", style.Caption)
	}
}

func TestGetUnknown(t *testing.T) {
	c := Default()

	_, err := c.Get("neon")
	if err == nil {
		t.Fatal("expected error for unknown style")
	}
	if !strings.Contains(err.Error(), "neon") {
		t.Errorf("expected error to name the style, got %q", err)
	}
	if !strings.Contains(err.Error(), "light") {
		t.Errorf("expected error to list available styles, got %q", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error for empty path: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("expected 5 default styles, got %d", c.Len())
	}
}

func TestLoadNonExistent(t *testing.T) {
	c, err := Load("/nonexistent/path/styles.yaml")
	if err != nil {
		t.Fatalf("unexpected error for non-existent file: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("expected 5 default styles, got %d", c.Len())
	}
}

func TestLoadValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "styles.yaml")
	content := `
styles:
  - name: dots
    horizontal: "."
    vertical: ":"
    top_left: "."
    top_right: "."
    bottom_left: ":"
    bottom_right: ":"
  - name: stars
    horizontal: "*"
    vertical: "*"
    top_left: "*"
    top_right: "*"
    bottom_left: "*"
    bottom_right: "*"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// User styles append after built-ins.
	names := c.Names()
	if len(names) != 7 {
		t.Fatalf("expected 7 styles, got %d (%v)", len(names), names)
	}
	if names[5] != "dots" || names[6] != "stars" {
		t.Errorf("expected user styles last, got %v", names)
	}

	style, err := c.Get("dots")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style.Horizontal != "." {
		t.Errorf("expected dots horizontal=\".\", got %q", style.Horizontal)
	}

	// Built-ins still present.
	if _, err := c.Get("light"); err != nil {
		t.Errorf("expected built-in light to survive load, got error: %v", err)
	}
}

func TestLoadOverridesBuiltin(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "styles.yaml")
	content := `
styles:
  - name: ascii
    horizontal: "="
    vertical: "|"
    top_left: "#"
    top_right: "#"
    bottom_left: "#"
    bottom_right: "#"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Len() != 5 {
		t.Errorf("expected override to keep 5 styles, got %d", c.Len())
	}

	style, err := c.Get("ascii")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style.Horizontal != "=" || style.TopLeft != "#" {
		t.Errorf("expected overridden ascii glyphs, got horizontal=%q top_left=%q",
			style.Horizontal, style.TopLeft)
	}

	// The overridden name keeps its built-in position.
	names := c.Names()
	if names[4] != "ascii" {
		t.Errorf("expected ascii to stay at position 4, got %v", names)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "styles.yaml")
	content := `
styles:
  - name: [broken
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestParseMissingName(t *testing.T) {
	content := `
styles:
  - horizontal: "-"
    vertical: "|"
    top_left: "+"
    top_right: "+"
    bottom_left: "+"
    bottom_right: "+"
`
	_, err := Parse([]byte(content))
	if err == nil {
		t.Fatal("expected validation error for missing name")
	}
	if !strings.Contains(err.Error(), "styles[0].name") {
		t.Errorf("expected indexed field in error, got %q", err)
	}
}

func TestParseMissingGlyph(t *testing.T) {
	content := `
styles:
  - name: holes
    horizontal: "-"
    vertical: "|"
    top_left: "+"
    top_right: "+"
    bottom_left: "+"
`
	_, err := Parse([]byte(content))
	if err == nil {
		t.Fatal("expected validation error for missing glyph")
	}
	if !errors.Is(err, msgbox.ErrInvalidStyle) {
		t.Errorf("expected ErrInvalidStyle, got %v", err)
	}
	if !strings.Contains(err.Error(), "holes") {
		t.Errorf("expected error to name the entry, got %q", err)
	}
	if !strings.Contains(err.Error(), "bottom_right") {
		t.Errorf("expected error to name the missing glyph, got %q", err)
	}
}

func TestParseDuplicateName(t *testing.T) {
	content := `
styles:
  - name: dots
    horizontal: "."
    vertical: "."
    top_left: "."
    top_right: "."
    bottom_left: "."
    bottom_right: "."
  - name: dots
    horizontal: ":"
    vertical: ":"
    top_left: ":"
    top_right: ":"
    bottom_left: ":"
    bottom_right: ":"
`
	_, err := Parse([]byte(content))
	if err == nil {
		t.Fatal("expected validation error for duplicate name")
	}
	if !strings.Contains(err.Error(), "styles[1]") {
		t.Errorf("expected error to index the second entry, got %q", err)
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate in error, got %q", err)
	}
	if !strings.Contains(err.Error(), "dots") {
		t.Errorf("expected error to name the entry, got %q", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "styles.yaml")

	original := Default()
	if err := original.Save(path); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if loaded.Len() != original.Len() {
		t.Fatalf("expected %d styles after round trip, got %d",
			original.Len(), loaded.Len())
	}
	for _, name := range original.Names() {
		want, _ := original.Get(name)
		got, err := loaded.Get(name)
		if err != nil {
			t.Errorf("style %q missing after round trip", name)
			continue
		}
		if got != want {
			t.Errorf("style %q = %+v after round trip, want %+v", name, got, want)
		}
	}
}

func TestEntryStyleRenders(t *testing.T) {
	c := Default()
	style, err := c.Get("ascii")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := msgbox.GenerateWithStyle([]string{"hi"}, style.WithCaption("c"))
	want := strings.Join([]string{
		"+----+",
		"| hi |",
		"<c>--+",
	}, "\n")
	if got != want {
		t.Errorf("rendered catalog style =\n%s\nwant:\n%s", got, want)
	}
}
