package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#E0B46C")
	Secondary  = lipgloss.Color("#8FB8DE")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Volume headings on the home view
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Breadcrumb links and the current crumb
	CrumbLinkStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)

	CrumbCurrentStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// Grid cells for books and chapters
	LinkStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Padding(0, 1)

	SelectedLinkStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 1)

	// Chapter text pane
	ReaderStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Marker panel
	MarkerPanelStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Muted).
				Padding(0, 1)

	// Status styles
	StatusActive = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Degraded but usable, e.g. no map
	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	// Progress bar styles
	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	// Focused input
	FocusedInputStyle = lipgloss.NewStyle().
				Border(ThickBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// StatusStyle picks the style of an export status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "fetching", "processing":
		return StatusActive
	case "complete":
		return StatusCompleted
	case "error":
		return StatusError
	default:
		return MutedStyle
	}
}
