package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/scriptures/pkg/app/styles"
)

// JumpScreen is the ":" prompt taking a raw hash such as 0:101:12.
type JumpScreen struct {
	input textinput.Model
}

type jumpClosedMsg struct{}

func NewJumpScreen() *JumpScreen {
	ti := textinput.New()
	ti.Placeholder = "volume[:book[:chapter]]"
	ti.Prompt = ":"
	ti.CharLimit = 32
	ti.Width = 30

	return &JumpScreen{input: ti}
}

// Open focuses the prompt with an empty value.
func (s *JumpScreen) Open() tea.Cmd {
	s.input.SetValue("")
	s.input.Focus()
	return textinput.Blink
}

func (s *JumpScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *JumpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			hash := strings.TrimSpace(s.input.Value())
			s.input.Blur()
			return s, tea.Sequence(closeJump, navigateTo(hash))
		case "esc":
			s.input.Blur()
			return s, closeJump
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *JumpScreen) View() string {
	return fmt.Sprintf("%s\n%s",
		styles.FocusedInputStyle.Render(s.input.View()),
		styles.HelpStyle.Render("enter: go • esc: cancel"),
	)
}

func closeJump() tea.Msg {
	return jumpClosedMsg{}
}
