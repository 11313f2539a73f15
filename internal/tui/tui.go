// Package tui provides an interactive terminal UI for spelling out text.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/kanaspell/internal/clipboard"
	"github.com/f3rmion/kanaspell/internal/reading"
	"github.com/f3rmion/kanaspell/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

// Clipboard messages
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Options configures the TUI.
type Options struct {
	Renderer  *bigchar.Renderer
	Clipboard clipboard.Writer
	Reading   reading.ReadingOptions
}

// Model is the Bubble Tea model for the kanaspell TUI.
type Model struct {
	input    textinput.Model
	engine   *reading.Engine
	renderer *bigchar.Renderer
	clip     clipboard.Writer
	opts     reading.ReadingOptions

	inputText  string
	characters []reading.CharDescription
	selected   int
	reading    string

	copied bool
	err    error

	width  int
	height int
}

// New creates a new TUI model.
func New(engine *reading.Engine, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter text to spell out..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 40
	ti.PromptStyle = InputPromptStyle
	ti.TextStyle = InputTextStyle

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewSystem()
	}

	return Model{
		input:    ti,
		engine:   engine,
		renderer: opts.Renderer,
		clip:     clip,
		opts:     opts.Reading,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.analyzeInput()
			return m, nil
		case "tab":
			if len(m.characters) > 0 {
				m.selected = (m.selected + 1) % len(m.characters)
			}
			return m, nil
		case "shift+tab":
			if len(m.characters) > 0 {
				m.selected--
				if m.selected < 0 {
					m.selected = len(m.characters) - 1
				}
			}
			return m, nil
		case "ctrl+b":
			m.opts.ForBraille = !m.opts.ForBraille
			m.reanalyze()
			return m, nil
		case "ctrl+k":
			m.opts.CapAnnounced = !m.opts.CapAnnounced
			m.reanalyze()
			return m, nil
		case "ctrl+y":
			if m.reading == "" {
				return m, nil
			}
			if err := m.clip.Write(m.reading); err != nil {
				m.err = fmt.Errorf("copy failed: %w", err)
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// analyzeInput processes the current input.
func (m *Model) analyzeInput() {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return
	}
	m.inputText = input
	m.selected = 0
	m.reanalyze()
}

func (m *Model) reanalyze() {
	m.err = nil
	if m.inputText == "" {
		return
	}
	m.characters = m.engine.Describe(m.inputText, m.opts)
	m.reading = m.engine.DiscriminantReading(m.inputText, m.opts)
	if m.selected >= len(m.characters) {
		m.selected = 0
	}
}

// Reading returns the discriminant reading of the last analyzed input.
func (m Model) Reading() string { return m.reading }

// Selected returns the character under the cursor.
func (m Model) Selected() (reading.CharDescription, bool) {
	if m.selected >= len(m.characters) {
		return reading.CharDescription{}, false
	}
	return m.characters[m.selected], true
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	header := TitleStyle.Render("  かな Spell  ") + "  " +
		SubtitleStyle.Render("Discriminant character reader")
	b.WriteString(header)
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("  " + m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.characters) > 0 {
		b.WriteString(m.renderReading())
		b.WriteString("\n")
		b.WriteString(m.renderCharBar())
		b.WriteString("\n")
		if c, ok := m.Selected(); ok {
			b.WriteString(m.renderCharacterDetail(c))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("  Type text and press Enter"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("  " + strings.Join(m.helpParts(), " • ")))
	return b.String()
}

func (m Model) helpParts() []string {
	var parts []string
	if len(m.characters) > 1 {
		parts = append(parts, "tab/shift+tab: navigate")
	}
	if m.reading != "" {
		parts = append(parts, "ctrl+y: copy")
	}
	parts = append(parts,
		"ctrl+b: braille "+onOff(m.opts.ForBraille),
		"ctrl+k: caps announced "+onOff(m.opts.CapAnnounced),
		"enter: spell",
		"esc: quit",
	)
	return parts
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) boxWidth() int {
	width := 80
	if m.width > 0 && m.width-6 < width {
		width = m.width - 6
	}
	return width
}

// renderReading renders the wrapped discriminant reading.
func (m Model) renderReading() string {
	width := m.boxWidth()
	header := SubtitleStyle.Render("Reading")
	if m.copied {
		header += "  " + CopiedStyle.Render("Copied!")
	}
	return ReadingBoxStyle.Width(width).Render(
		header + "\n\n" + wordWrap(m.reading, width-6),
	)
}

// renderCharBar renders the horizontal character navigation bar.
func (m Model) renderCharBar() string {
	var tabs []string
	for i, c := range m.characters {
		label := c.Char
		if c.Labels != "" {
			label += "\n" + CharTabLabelStyle.Render(c.Labels)
		}
		if i == m.selected {
			tabs = append(tabs, CharTabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, CharTabStyle.Render(label))
		}
	}
	nav := NavStyle.Render(fmt.Sprintf("◀ %d/%d ▶", m.selected+1, len(m.characters)))
	return WordDisplayStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, tabs...) + "  " + nav)
}

// renderCharacterDetail renders the detail view for a single character.
func (m Model) renderCharacterDetail(c reading.CharDescription) string {
	var b strings.Builder

	// too short for block art below the reading box
	tooShort := m.height > 0 && m.height < 30
	if art := m.renderer.Render(c.Char, 24, 10); art != "" && !tooShort {
		b.WriteString(BigCharStyle.Render(art))
	} else {
		b.WriteString(CharacterLargeStyle.Render(c.Char))
	}
	b.WriteString("\n")

	labels := c.Labels
	if labels == "" {
		labels = "-"
	}
	b.WriteString(renderRow("Reading", c.Description))
	b.WriteString(renderRow("Attributes", labels))
	b.WriteString(renderRow("Code", fmt.Sprintf("%s  %s", c.Hex, m.engine.CodeToSpokenDigits(c.Code))))
	b.WriteString(renderRow("Width", fmt.Sprintf("%d", runewidth.StringWidth(c.Char))))
	return b.String()
}

// renderRow renders a label-value row.
func renderRow(label, value string) string {
	return "  " + LabelStyle.Render(label+":") + " " + ValueStyle.Render(value) + "\n"
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}

// Run starts the TUI in the alternate screen.
func Run(engine *reading.Engine, opts Options) error {
	p := tea.NewProgram(New(engine, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
