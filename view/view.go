// Package view shows text art full-screen in the terminal.
package view

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

const (
	// classicStyle is black glyphs on a white background.
	classicStyle = "\033[30;47m"
	// invertedStyle is white glyphs on a black background.
	invertedStyle = "\033[97;40m"
	resetStyle    = "\033[0m"
)

// Run displays content until the user quits. Inverted art is shown light
// on dark, everything else dark on light.
func Run(title, content string, inverted bool, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(newModel(title, content, inverted), opts...)

	_, err := p.Run()

	return err
}

// model is the bubbletea model of the art viewer. It keeps a vertical
// and horizontal scroll offset into the art lines.
type model struct {
	title    string
	lines    []string
	inverted bool
	cols     int
	rows     int
	top      int
	left     int
}

func newModel(title, content string, inverted bool) *model {
	return &model{
		title:    title,
		lines:    strings.Split(content, "\n"),
		inverted: inverted,
		cols:     80,
		rows:     24,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles resize, scroll and quit keys.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.scroll(0, 0)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.scroll(1, 0)
		case "up", "k":
			m.scroll(-1, 0)
		case "right", "l":
			m.scroll(0, 1)
		case "left", "h":
			m.scroll(0, -1)
		case "pgdown", "space":
			m.scroll(m.bodyRows(), 0)
		case "pgup":
			m.scroll(-m.bodyRows(), 0)
		case "home", "g":
			m.top, m.left = 0, 0
		case "end", "G":
			m.scroll(len(m.lines), 0)
		}
	}

	return m, nil
}

// View renders the visible window of the art.
func (m *model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true

	return v
}

// bodyRows is the number of art lines that fit under the title bar.
func (m *model) bodyRows() int {
	return max(m.rows-1, 1)
}

// scroll moves the window by dy lines and dx columns, clamped to the art.
func (m *model) scroll(dy, dx int) {
	maxTop := max(len(m.lines)-m.bodyRows(), 0)
	m.top = min(max(m.top+dy, 0), maxTop)

	widest := 0
	for _, line := range m.lines {
		widest = max(widest, len([]rune(line)))
	}

	maxLeft := max(widest-m.cols, 0)
	m.left = min(max(m.left+dx, 0), maxLeft)
}

func (m *model) render() string {
	style := classicStyle
	if m.inverted {
		style = invertedStyle
	}

	var sb strings.Builder

	sb.WriteString(m.title)
	sb.WriteString(" (q to quit, arrows to scroll)\n")

	end := min(m.top+m.bodyRows(), len(m.lines))
	for i := m.top; i < end; i++ {
		line := []rune(m.lines[i])
		line = line[min(m.left, len(line)):]
		line = line[:min(m.cols, len(line))]

		sb.WriteString(style)
		sb.WriteString(string(line))
		sb.WriteString(resetStyle)

		if i < end-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
