package tui

import (
	"fmt"
	"strings"

	"pacplan/pkg/backend"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const visibleRows = 15

// ErrAborted is returned when the user quits the picker without accepting.
var ErrAborted = fmt.Errorf("selection aborted")

// model holds the picker state
type model struct {
	candidates []backend.Candidate
	cursor     int
	offset     int
	picked     map[int]bool

	accepted bool
	aborted  bool

	keys   KeyMap
	styles *Styles
}

func newModel(candidates []backend.Candidate) model {
	return model{
		candidates: candidates,
		picked:     make(map[int]bool),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		if m.cursor < m.offset {
			m.offset = m.cursor
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
		if m.cursor >= m.offset+visibleRows {
			m.offset = m.cursor - visibleRows + 1
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		m.picked[m.cursor] = !m.picked[m.cursor]

	case key.Matches(keyMsg, m.keys.All):
		for i := range m.candidates {
			m.picked[i] = true
		}

	case key.Matches(keyMsg, m.keys.None):
		m.picked = make(map[int]bool)

	case key.Matches(keyMsg, m.keys.Accept):
		m.accepted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m model) View() string {
	if m.accepted || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Select packages to install (%d picked)", m.pickedCount())))
	b.WriteString("\n")

	end := m.offset + visibleRows
	if end > len(m.candidates) {
		end = len(m.candidates)
	}

	for i := m.offset; i < end; i++ {
		c := m.candidates[i]

		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("▸ ")
		}

		mark := "[ ]"
		nameStyle := m.styles.Item
		if m.picked[i] {
			mark = "[x]"
			nameStyle = m.styles.ItemPicked
		}

		b.WriteString(fmt.Sprintf("%s%s %3d. %s %s\n",
			cursor, mark, c.SourceIndex,
			nameStyle.Render(c.Name),
			m.styles.Version.Render(c.Version)))

		if i == m.cursor && c.Description != "" {
			b.WriteString(m.styles.Description.Render("        "+c.Description) + "\n")
		}
	}

	b.WriteString(m.styles.Help.Render("space toggle · a all · n none · enter accept · q abort"))
	return b.String()
}

func (m model) pickedCount() int {
	n := 0
	for _, v := range m.picked {
		if v {
			n++
		}
	}
	return n
}

// PickCandidates runs the interactive picker and returns the chosen
// candidates in source order. Aborting returns ErrAborted.
func PickCandidates(candidates []backend.Candidate) ([]backend.Candidate, error) {
	p := tea.NewProgram(newModel(candidates))

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(model)
	if !ok || m.aborted {
		return nil, ErrAborted
	}

	var picked []backend.Candidate
	for i, c := range candidates {
		if m.picked[i] {
			picked = append(picked, c)
		}
	}
	return picked, nil
}
