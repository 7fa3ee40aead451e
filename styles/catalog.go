// Package styles provides named catalogs of message box border styles,
// loadable from YAML files.
package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/msgbox"
	"gitlab.com/tinyland/lab/msgbox/internal/format"
)

// Entry is a named border style as it appears in a catalog file.
type Entry struct {
	// Name identifies the style for lookup.
	Name string `yaml:"name"`
	// Horizontal is the glyph repeated along the top and bottom borders.
	Horizontal string `yaml:"horizontal"`
	// Vertical is the glyph at both ends of every content row.
	Vertical string `yaml:"vertical"`
	// TopLeft is the top-left corner glyph.
	TopLeft string `yaml:"top_left"`
	// TopRight is the top-right corner glyph.
	TopRight string `yaml:"top_right"`
	// BottomLeft is the bottom-left corner glyph.
	BottomLeft string `yaml:"bottom_left"`
	// BottomRight is the bottom-right corner glyph.
	BottomRight string `yaml:"bottom_right"`
}

// Style converts the entry to a renderable msgbox.Style. Captions are
// not part of catalog entries; derive them with WithCaption at the call
// site.
func (e Entry) Style() msgbox.Style {
	return msgbox.Style{
		Horizontal:  e.Horizontal,
		Vertical:    e.Vertical,
		TopLeft:     e.TopLeft,
		TopRight:    e.TopRight,
		BottomLeft:  e.BottomLeft,
		BottomRight: e.BottomRight,
	}
}

// File is the on-disk catalog document.
type File struct {
	// Styles holds the style entries in file order.
	Styles []Entry `yaml:"styles"`
}

// Validate checks every entry for a name, a complete glyph set, and a
// name unique within the file. Reusing a built-in name is an override
// and stays legal; naming two entries alike in one file shadows one of
// them and is rejected.
func (f *File) Validate() error {
	seen := make(map[string]int, len(f.Styles))
	for i, e := range f.Styles {
		if e.Name == "" {
			return fmt.Errorf("styles[%d].name is required", i)
		}
		if first, ok := seen[e.Name]; ok {
			return fmt.Errorf("styles[%d]: duplicate name %q (already defined at styles[%d])", i, e.Name, first)
		}
		seen[e.Name] = i
		if err := e.Style().Validate(); err != nil {
			return fmt.Errorf("styles[%d] (%s): %w", i, e.Name, err)
		}
	}
	return nil
}

// Catalog is an ordered collection of named styles. Lookups are by name;
// iteration order is built-ins first, then user entries in file order.
type Catalog struct {
	names   []string
	entries map[string]Entry
}

func builtinEntries() []Entry {
	presets := []struct {
		name  string
		style msgbox.Style
	}{
		{"light", msgbox.Light()},
		{"double", msgbox.Double()},
		{"sharp", msgbox.Sharp()},
		{"heavy", msgbox.Heavy()},
		{"ascii", msgbox.ASCII()},
	}

	entries := make([]Entry, 0, len(presets))
	for _, p := range presets {
		entries = append(entries, Entry{
			Name:        p.name,
			Horizontal:  p.style.Horizontal,
			Vertical:    p.style.Vertical,
			TopLeft:     p.style.TopLeft,
			TopRight:    p.style.TopRight,
			BottomLeft:  p.style.BottomLeft,
			BottomRight: p.style.BottomRight,
		})
	}
	return entries
}

// Default returns a catalog holding only the built-in presets, in order:
// light, double, sharp, heavy, ascii.
func Default() *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}
	for _, e := range builtinEntries() {
		c.put(e)
	}
	return c
}

func (c *Catalog) put(e Entry) {
	c.names = append(c.names, e.Name)
	c.entries[e.Name] = e
}

// Parse builds a catalog from YAML catalog data, merging over the
// built-in presets. User entries sharing a built-in name replace that
// built-in; new names append after the built-ins.
func Parse(data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing styles: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}

	catalog := Default()
	for _, e := range file.Styles {
		catalog.put(e)
	}
	return catalog, nil
}

// Load loads a catalog from a YAML file, merging with the built-in
// presets. An empty path or a missing file yields the defaults.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Save writes the catalog to a YAML file, creating parent directories as
// needed. Built-in entries are written too, so a saved file round-trips
// to the same catalog.
func (c *Catalog) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file := File{Styles: c.Entries()}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Get returns the named style. Unknown names report the available set.
func (c *Catalog) Get(name string) (msgbox.Style, error) {
	e, ok := c.entries[name]
	if !ok {
		return msgbox.Style{}, fmt.Errorf("unknown style %q (available: %s)",
			name, strings.Join(c.Names(), ", "))
	}
	return e.Style(), nil
}

// Names returns the style names in catalog order. Overriding entries
// keep the position of the name they replace.
func (c *Catalog) Names() []string {
	return format.UniqueStrings(c.names)
}

// Entries returns the catalog entries in catalog order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.names))
	for _, name := range c.Names() {
		entries = append(entries, c.entries[name])
	}
	return entries
}

// Len returns the number of styles in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
