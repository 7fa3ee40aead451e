// Package tui provides an interactive playground for trying message box
// styles, themes, and captions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/msgbox"
	"gitlab.com/tinyland/lab/msgbox/internal/format"
	"gitlab.com/tinyland/lab/msgbox/styles"
	"gitlab.com/tinyland/lab/msgbox/theme"
)

// zoneCaption is the click zone covering the preview box.
const zoneCaption = "caption"

// styleZoneID returns the click zone ID for a style tab.
func styleZoneID(name string) string {
	return "style:" + name
}

// Model is the top-level Bubbletea model for the playground. Style tabs
// are clickable; the preview box opens the caption editor on click.
type Model struct {
	catalog  *styles.Catalog
	names    []string
	styleIdx int

	themes   []theme.Theme
	themeIdx int

	lines   []string
	caption string

	captionInput textinput.Model
	editing      bool

	help  help.Model
	zones *zone.Manager

	width  int
	height int
	ready  bool
}

// NewModel returns an initialized Model previewing lines with the first
// catalog style. A nil or empty catalog falls back to the built-in
// presets, so the model always has at least one style to cycle.
func NewModel(catalog *styles.Catalog, lines []string) Model {
	if catalog == nil || catalog.Len() == 0 {
		catalog = styles.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "caption"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = "> "

	return Model{
		catalog:      catalog,
		names:        catalog.Names(),
		themes:       theme.All(),
		lines:        lines,
		captionInput: ti,
		help:         help.New(),
		zones:        zone.New(),
	}
}

// SetCaption sets the caption embedded in the preview box.
func (m *Model) SetCaption(caption string) {
	m.caption = caption
}

// SetTheme selects the named theme for the preview.
func (m *Model) SetTheme(name string) {
	for i, t := range m.themes {
		if t.Name == name {
			m.themeIdx = i
			return
		}
	}
}

func (m Model) currentStyle() msgbox.Style {
	style, err := m.catalog.Get(m.names[m.styleIdx])
	if err != nil {
		return msgbox.Light()
	}
	return style
}

func (m Model) currentTheme() theme.Theme {
	return m.themes[m.themeIdx]
}

// Init implements tea.Model. No initial commands are needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It handles key presses, mouse clicks, and
// window resize events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextStyle):
			m.styleIdx = (m.styleIdx + 1) % len(m.names)
		case key.Matches(msg, keys.PrevStyle):
			m.styleIdx = (m.styleIdx - 1 + len(m.names)) % len(m.names)
		case key.Matches(msg, keys.NextTheme):
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
		case key.Matches(msg, keys.EditCaption):
			return m.startEditing()
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
	}

	return m, nil
}

// updateEditing handles key presses while the caption editor is open.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, keys.Accept):
		m.caption = strings.TrimSpace(m.captionInput.Value())
		m.editing = false
		m.captionInput.Blur()
		return m, nil
	case key.Matches(msg, keys.Cancel):
		m.editing = false
		m.captionInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.captionInput, cmd = m.captionInput.Update(msg)
	return m, cmd
}

// updateMouse selects the style tab under a left click, or opens the
// caption editor when the preview box is clicked.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i, name := range m.names {
		if m.zones.Get(styleZoneID(name)).InBounds(msg) {
			m.styleIdx = i
			return m, nil
		}
	}
	if m.zones.Get(zoneCaption).InBounds(msg) {
		return m.startEditing()
	}
	return m, nil
}

func (m Model) startEditing() (tea.Model, tea.Cmd) {
	m.editing = true
	m.captionInput.SetValue(m.caption)
	m.captionInput.Focus()
	return m, textinput.Blink
}

// View implements tea.Model. It renders the style tabs, the themed
// preview box, and the footer, then registers the click zones.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	preview := m.renderPreview()
	footer := m.renderFooter()

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, header, preview, footer))
}

// renderHeader renders the style tab bar with the active style highlighted.
func (m Model) renderHeader() string {
	var tabs []string
	for i, name := range m.names {
		var label string
		if i == m.styleIdx {
			label = styleActiveTab.Render(name)
		} else {
			label = styleInactiveTab.Render(name)
		}
		tabs = append(tabs, m.zones.Mark(styleZoneID(name), label))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return styleHeader.Width(m.width).Render(tabBar)
}

// renderPreview renders the box with the current style, caption, and
// theme, plus the caption editor when open.
func (m Model) renderPreview() string {
	style := m.currentStyle().WithCaption(m.caption)
	box := m.zones.Mark(zoneCaption, m.currentTheme().Generate(m.lines, style))

	if m.editing {
		prompt := stylePrompt.Render("caption: ") + m.captionInput.View()
		box = lipgloss.JoinVertical(lipgloss.Left, box, "", prompt)
	}

	return stylePreview.Render(box)
}

// renderFooter renders the current selection and the help bubble.
func (m Model) renderFooter() string {
	status := fmt.Sprintf("style: %s | theme: %s", m.names[m.styleIdx], m.currentTheme().Name)
	if m.caption != "" {
		status += fmt.Sprintf(" | caption: %s", format.TruncateWithEllipsis(m.caption, 24))
	}
	return styleFooter.Width(m.width).Render(status + "\n" + m.help.View(keys))
}
