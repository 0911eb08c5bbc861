package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/scriptures/pkg/app/styles"
)

// NavItem is one selectable cell of the grid. Items sharing a Group are
// rendered under the same heading.
type NavItem struct {
	Label string
	Hash  string
	Group string
}

// NavList lays book or chapter links out as a wrapped grid.
type NavList struct {
	Items         []NavItem
	SelectedIndex int
	Width         int
	Height        int
	Empty         string
}

func NewNavList() *NavList {
	return &NavList{
		Items:         []NavItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		Empty:         "Nothing to show",
	}
}

func (m *NavList) SetItems(items []NavItem) {
	m.Items = items
	m.SelectedIndex = 0
}

func (m *NavList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *NavList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

// NextGroup moves the selection to the first item of the following group.
func (m *NavList) NextGroup() {
	if len(m.Items) == 0 {
		return
	}
	current := m.Items[m.SelectedIndex].Group
	for i := m.SelectedIndex + 1; i < len(m.Items); i++ {
		if m.Items[i].Group != current {
			m.SelectedIndex = i
			return
		}
	}
}

// PrevGroup moves the selection to the first item of the preceding group,
// or of the current one when it is not already there.
func (m *NavList) PrevGroup() {
	if len(m.Items) == 0 {
		return
	}
	start := m.groupStart(m.SelectedIndex)
	if start == m.SelectedIndex && start > 0 {
		start = m.groupStart(start - 1)
	}
	m.SelectedIndex = start
}

func (m *NavList) groupStart(i int) int {
	group := m.Items[i].Group
	for i > 0 && m.Items[i-1].Group == group {
		i--
	}
	return i
}

func (m *NavList) Selected() *NavItem {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

func (m *NavList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(m.Empty)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	var line []string
	lineWidth := 0

	flush := func() {
		if len(line) > 0 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
			b.WriteString("\n")
		}
		line, lineWidth = nil, 0
	}

	for i, item := range m.Items {
		if i == 0 || item.Group != m.Items[i-1].Group {
			flush()
			if item.Group != "" {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(styles.SubtitleStyle.Render(item.Group))
				b.WriteString("\n")
			}
		}

		style := styles.LinkStyle
		if i == m.SelectedIndex {
			style = styles.SelectedLinkStyle
		}
		cell := style.Render(item.Label)

		w := lipgloss.Width(cell)
		if lineWidth > 0 && lineWidth+w > m.Width {
			flush()
		}
		line = append(line, cell)
		lineWidth += w
	}
	flush()

	return b.String()
}
