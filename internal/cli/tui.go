package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/relgraph/relgraph/pkg/instance"
	"github.com/relgraph/relgraph/pkg/instance/wire"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// AtomListModel - Interactive atom selection for projection
// =============================================================================

// AtomListModel is the bubbletea model for picking projection atoms.
// Multiple atoms can be marked as long as their top-level types differ.
type AtomListModel struct {
	Atoms    []instance.Atom
	TopLevel []string
	Cursor   int
	Marked   map[int]bool
	Done     bool
	Height   int
	Offset   int
}

// NewAtomListModel creates a new atom list model for the given instance.
func NewAtomListModel(atoms []instance.Atom, in *wire.Instance) AtomListModel {
	topLevel := make([]string, len(atoms))
	for i, a := range atoms {
		topLevel[i] = in.TopLevelOf(a.Type)
	}
	return AtomListModel{
		Atoms:    atoms,
		TopLevel: topLevel,
		Marked:   make(map[int]bool),
		Height:   15,
	}
}

func (m AtomListModel) Init() tea.Cmd {
	return nil
}

func (m AtomListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Marked = map[int]bool{}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Atoms)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			if m.Marked[m.Cursor] {
				delete(m.Marked, m.Cursor)
			} else if !m.sortTaken(m.Cursor) {
				m.Marked[m.Cursor] = true
			}
		case "enter":
			if len(m.Marked) == 0 && !m.sortTaken(m.Cursor) {
				m.Marked[m.Cursor] = true
			}
			m.Done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// sortTaken reports whether another marked atom already claims the same
// top-level type, which would make the projection conflict.
func (m AtomListModel) sortTaken(idx int) bool {
	for marked := range m.Marked {
		if marked != idx && m.TopLevel[marked] == m.TopLevel[idx] {
			return true
		}
	}
	return false
}

// SelectedIDs returns the ids of the marked atoms in display order.
func (m AtomListModel) SelectedIDs() []string {
	if !m.Done {
		return nil
	}
	var ids []string
	for i, a := range m.Atoms {
		if m.Marked[i] {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func (m AtomListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Projection Atoms"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space mark  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Atoms) {
		end = len(m.Atoms)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		a := m.Atoms[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := " "
		if m.Marked[i] {
			mark = "✓"
		}

		label := a.Label
		if label == a.ID {
			label = "—"
		}
		rows = append(rows, []string{cursor, mark, a.ID, a.Type, m.TopLevel[i], label})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Atom", "Type", "Sort", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Atoms) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor
			isMarked := m.Marked[actualIdx]
			blocked := !isMarked && m.sortTaken(actualIdx)

			base := lipgloss.NewStyle()
			switch {
			case blocked:
				return base.Foreground(colorDim)
			case isCurrent && isMarked:
				return base.Foreground(colorGreen).Bold(true)
			case isCurrent:
				return listSelectedStyle
			case isMarked:
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d marked", m.Cursor+1, len(m.Atoms), len(m.Marked))))

	return b.String()
}
