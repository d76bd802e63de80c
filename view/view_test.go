package view

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func art(rows, cols int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(string(rune('a'+i%26)), cols)
	}

	return strings.Join(lines, "\n")
}

func TestRenderStyles(t *testing.T) {
	t.Parallel()

	classic := newModel("cat", "¶¶\n¶¶", false)
	out := classic.render()
	assert.Contains(t, out, classicStyle+"¶¶"+resetStyle)
	assert.True(t, strings.HasPrefix(out, "cat"))

	inverted := newModel("cat", "``\n``", true)
	assert.Contains(t, inverted.render(), invertedStyle+"``"+resetStyle)
}

func TestWindowSizeClipsArt(t *testing.T) {
	t.Parallel()

	m := newModel("big", art(50, 200), false)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})
	assert.Nil(t, cmd)

	lines := strings.Split(m.render(), "\n")
	require.Len(t, lines, 11)

	for _, line := range lines[1:] {
		body := strings.TrimSuffix(strings.TrimPrefix(line, classicStyle), resetStyle)
		assert.Len(t, []rune(body), 40)
	}
}

func TestScrollClamps(t *testing.T) {
	t.Parallel()

	m := newModel("big", art(30, 100), false)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 11})

	m.scroll(-5, -5)
	assert.Equal(t, 0, m.top)
	assert.Equal(t, 0, m.left)

	m.scroll(1000, 1000)
	assert.Equal(t, 20, m.top)
	assert.Equal(t, 40, m.left)

	m.scroll(-3, 0)
	assert.Equal(t, 17, m.top)
	assert.Contains(t, m.render(), strings.Repeat("r", 60))
}

func TestSmallArtDoesNotScroll(t *testing.T) {
	t.Parallel()

	m := newModel("small", art(3, 5), true)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.scroll(10, 10)
	assert.Equal(t, 0, m.top)
	assert.Equal(t, 0, m.left)
}

func TestKeys(t *testing.T) {
	t.Parallel()

	m := newModel("big", art(30, 10), false)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 11})

	m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, 2, m.top)

	m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 1, m.top)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
