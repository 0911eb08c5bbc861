package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/scriptures/pkg/app/components"
	"github.com/kerbaras/scriptures/pkg/app/styles"
	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/services"
)

const markerPanelWidth = 34

// ReaderScreen shows a chapter's text next to the places it mentions.
type ReaderScreen struct {
	view     *services.View
	viewport viewport.Model
	markers  *components.MarkerPanel
	width    int
	height   int
}

func NewReaderScreen() *ReaderScreen {
	return &ReaderScreen{
		viewport: viewport.New(80, 20),
		markers:  components.NewMarkerPanel(),
	}
}

func (s *ReaderScreen) SetView(view *services.View) {
	s.view = view
	s.markers.Set(nil, nil)
	s.refreshContent()
	s.viewport.GotoTop()
}

// SetMarkers shows the places placed on the map, or err when placing failed.
func (s *ReaderScreen) SetMarkers(markers []data.Marker, err error) {
	s.markers.Set(markers, err)
}

func (s *ReaderScreen) refreshContent() {
	if s.view == nil || s.view.Content == nil {
		s.viewport.SetContent("")
		return
	}
	text := s.view.Content.Text
	if text == "" {
		text = styles.MutedStyle.Render("This chapter has no text.")
	}
	s.viewport.SetContent(lipgloss.NewStyle().Width(s.viewport.Width).Render(text))
}

func (s *ReaderScreen) Init() tea.Cmd {
	return nil
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.viewport.Width = max(msg.Width-markerPanelWidth-8, 20)
		s.viewport.Height = max(msg.Height-10, 5)
		s.markers.Width = markerPanelWidth
		s.markers.Height = s.viewport.Height
		s.refreshContent()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			if s.view != nil && s.view.Next != nil {
				return s, navigateTo(s.view.Next.Hash())
			}
			return s, nil
		case "p":
			if s.view != nil && s.view.Previous != nil {
				return s, navigateTo(s.view.Previous.Hash())
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ReaderScreen) View() string {
	if s.view == nil {
		return ""
	}

	header := styles.TitleStyle.Render(s.view.Title())

	reader := styles.ReaderStyle.Render(s.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, reader, " ", s.markers.View())

	prev, next := "", ""
	if s.view.Previous != nil {
		prev = fmt.Sprintf("‹ p: %s", s.view.Previous.Title)
	}
	if s.view.Next != nil {
		next = fmt.Sprintf("n: %s ›", s.view.Next.Title)
	}
	pager := styles.MutedStyle.Render(prev)
	if next != "" {
		gap := max(lipgloss.Width(body)-lipgloss.Width(prev)-lipgloss.Width(next), 1)
		pager += fmt.Sprintf("%*s", gap, "") + styles.MutedStyle.Render(next)
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: scroll • n/p: next/previous chapter • e: export EPUB • esc: back • :: go to • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, pager, help)
}
