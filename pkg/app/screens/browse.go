package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/scriptures/pkg/app/components"
	"github.com/kerbaras/scriptures/pkg/app/styles"
	"github.com/kerbaras/scriptures/pkg/navigation"
	"github.com/kerbaras/scriptures/pkg/services"
)

// BrowseScreen shows the home and book views: a grid of book or chapter
// links.
type BrowseScreen struct {
	view   *services.View
	list   *components.NavList
	width  int
	height int
}

func NewBrowseScreen() *BrowseScreen {
	return &BrowseScreen{list: components.NewNavList()}
}

func (s *BrowseScreen) SetView(view *services.View) {
	s.view = view

	var items []components.NavItem
	switch view.Kind {
	case services.HomeView:
		s.list.Empty = "No volumes available"
		for _, section := range view.Sections {
			for _, link := range section.Links {
				items = append(items, components.NavItem{
					Label: link.Label,
					Hash:  link.Hash,
					Group: section.Volume.FullName,
				})
			}
		}
	case services.BookView:
		s.list.Empty = "No chapters"
		for _, link := range view.Chapters {
			items = append(items, components.NavItem{Label: link.Label, Hash: link.Hash})
		}
	}
	s.list.SetItems(items)
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			s.list.Next()
		case "left", "h", "shift+tab":
			s.list.Prev()
		case "down", "j":
			s.list.NextGroup()
		case "up", "k":
			s.list.PrevGroup()
		case "enter":
			if selected := s.list.Selected(); selected != nil {
				return s, navigateTo(selected.Hash)
			}
		}
	}

	return s, nil
}

func (s *BrowseScreen) View() string {
	if s.view == nil {
		return ""
	}

	header := styles.TitleStyle.Render(s.view.Title())
	listView := s.list.View()

	keys := "←/h →/l: move • ↑/k ↓/j: volume • enter: open • :: go to • q: quit"
	if s.view.Kind == services.BookView {
		keys = "←/h →/l: move • enter: read • e: export EPUB • esc: back • :: go to • q: quit"
	} else if s.view.Target.Kind == navigation.ShowVolume {
		keys = "←/h →/l: move • enter: open • esc: back • :: go to • q: quit"
	}
	help := styles.HelpStyle.Render(keys)

	return fmt.Sprintf("%s\n%s\n%s", header, listView, help)
}
