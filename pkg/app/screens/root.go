package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/scriptures/pkg/app/components"
	"github.com/kerbaras/scriptures/pkg/app/styles"
	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/services"
)

// NavigateMsg asks the root screen to show the view of Hash.
type NavigateMsg struct {
	Hash string
}

func navigateTo(hash string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Hash: hash}
	}
}

// Messages
type referenceLoadedMsg struct {
	nav *services.Navigator
	err error
}

type viewLoadedMsg struct {
	hash string
	view *services.View
	err  error
}

type markersPlacedMsg struct {
	generation uint64
	markers    []data.Marker
	err        error
}

type exportProgressMsg struct {
	ch       <-chan services.ExportProgress
	progress services.ExportProgress
}

type exportDoneMsg struct {
	bookID int
	path   string
	err    error
}

// RootScreen owns the navigation state: it loads the reference tables,
// routes hashes through the navigator and shows whichever screen fits the
// resulting view.
type RootScreen struct {
	ctx       context.Context
	ctrl      *services.Controller
	nav       *services.Navigator // nil until the reference tables are loaded
	startHash string

	spinner spinner.Model
	loading bool
	err     error

	view    *services.View
	browse  *BrowseScreen
	reader  *ReaderScreen
	jump    *JumpScreen
	jumping bool
	exports *components.ExportTracker

	width  int
	height int
}

func NewRootScreen(ctx context.Context, ctrl *services.Controller, startHash string) *RootScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &RootScreen{
		ctx:       ctx,
		ctrl:      ctrl,
		startHash: startHash,
		spinner:   s,
		loading:   true,
		browse:    NewBrowseScreen(),
		reader:    NewReaderScreen(),
		jump:      NewJumpScreen(),
		exports:   components.NewExportTracker(80),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.spinner.Tick, r.loadReference)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.exports.SetWidth(msg.Width - 4)
		// the marker panel exists once the terminal has been laid out
		r.ctrl.Markers().SetReady(true)
		r.browse.Update(msg)
		r.reader.Update(msg)
		return r, nil

	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case referenceLoadedMsg:
		if msg.err != nil {
			r.loading = false
			r.err = msg.err
			return r, nil
		}
		r.nav = msg.nav
		return r, r.navigate(r.startHash)

	case NavigateMsg:
		if r.nav == nil {
			return r, nil
		}
		r.loading = true
		return r, tea.Batch(r.spinner.Tick, r.navigate(msg.Hash))

	case viewLoadedMsg:
		return r, r.showView(msg)

	case markersPlacedMsg:
		if r.view != nil && r.view.Generation == msg.generation {
			r.reader.SetMarkers(msg.markers, msg.err)
		}
		return r, nil

	case exportProgressMsg:
		r.exports.Update(msg.progress)
		return r, listenForExport(msg.ch)

	case exportDoneMsg:
		r.exports.Finish(msg.bookID, msg.path, msg.err)
		return r, nil

	case jumpClosedMsg:
		r.jumping = false
		return r, nil

	case tea.KeyMsg:
		if r.jumping {
			_, cmd := r.jump.Update(msg)
			return r, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case ":":
			if r.nav == nil {
				return r, nil
			}
			r.jumping = true
			return r, r.jump.Open()
		case "esc", "backspace":
			if r.view != nil {
				if parent, ok := r.view.Crumbs.Parent(); ok {
					return r, navigateTo(parent)
				}
			}
			return r, nil
		case "e":
			return r, r.startExport()
		}
	}

	if r.jumping {
		_, cmd := r.jump.Update(msg)
		return r, cmd
	}
	return r, r.forward(msg)
}

// forward hands msg to the screen of the current view.
func (r *RootScreen) forward(msg tea.Msg) tea.Cmd {
	if r.view == nil {
		return nil
	}
	var cmd tea.Cmd
	if r.view.Kind == services.ChapterView {
		_, cmd = r.reader.Update(msg)
	} else {
		_, cmd = r.browse.Update(msg)
	}
	return cmd
}

func (r *RootScreen) showView(msg viewLoadedMsg) tea.Cmd {
	if errors.Is(msg.err, services.ErrStale) {
		return nil
	}
	if msg.err != nil {
		r.loading = false
		r.err = fmt.Errorf("could not load %q: %w", msg.hash, msg.err)
		return nil
	}
	if !r.nav.Current(msg.view.Generation) {
		return nil
	}

	r.loading = false
	r.err = nil
	r.view = msg.view

	if msg.view.Kind != services.ChapterView {
		r.browse.SetView(msg.view)
		return nil
	}

	r.reader.SetView(msg.view)
	return r.placeMarkers(msg.view)
}

func (r *RootScreen) View() string {
	if r.view == nil {
		if r.err != nil {
			return styles.StatusError.Render(fmt.Sprintf("Error: %s", r.err)) + "\n\n" +
				styles.HelpStyle.Render("q: quit")
		}
		return fmt.Sprintf("%s Loading the scriptures...", r.spinner.View())
	}

	crumbs := r.renderCrumbs()
	if r.loading {
		crumbs += "  " + r.spinner.View()
	}

	var content string
	if r.view.Kind == services.ChapterView {
		content = r.reader.View()
	} else {
		content = r.browse.View()
	}

	out := crumbs + "\n\n" + content
	if r.err != nil {
		out += "\n" + styles.StatusError.Render(fmt.Sprintf("Error: %s", r.err))
	}
	if exports := r.exports.View(); exports != "" {
		out += "\n" + exports
	}
	if r.jumping {
		out += "\n" + r.jump.View()
	}
	return out
}

func (r *RootScreen) renderCrumbs() string {
	parts := make([]string, 0, 2*len(r.view.Crumbs))
	for i, crumb := range r.view.Crumbs {
		if i > 0 {
			parts = append(parts, styles.MutedStyle.Render(" › "))
		}
		if crumb.Link {
			parts = append(parts, styles.CrumbLinkStyle.Render(crumb.Label))
		} else {
			parts = append(parts, styles.CrumbCurrentStyle.Render(crumb.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Commands
func (r *RootScreen) loadReference() tea.Msg {
	if _, err := r.ctrl.Bootstrap(r.ctx); err != nil {
		return referenceLoadedMsg{err: err}
	}
	return referenceLoadedMsg{nav: r.ctrl.Navigator()}
}

func (r *RootScreen) navigate(hash string) tea.Cmd {
	nav := r.nav
	return func() tea.Msg {
		view, err := nav.Navigate(r.ctx, hash)
		return viewLoadedMsg{hash: hash, view: view, err: err}
	}
}

func (r *RootScreen) placeMarkers(view *services.View) tea.Cmd {
	placer := r.ctrl.Placer()
	return func() tea.Msg {
		markers, err := placer.Place(r.ctx, view.Content.Markers)
		return markersPlacedMsg{generation: view.Generation, markers: markers, err: err}
	}
}

func (r *RootScreen) startExport() tea.Cmd {
	if r.view == nil || r.view.Book == nil {
		return nil
	}
	book := r.view.Book
	if r.exports.HasActive() {
		return nil
	}

	r.exports.Start(book.ID, book.FullName)
	exporter := r.ctrl.NewExporter("")
	run := func() tea.Msg {
		path, err := exporter.ExportBook(r.ctx, book.ID)
		exporter.Close()
		return exportDoneMsg{bookID: book.ID, path: path, err: err}
	}
	return tea.Batch(run, listenForExport(exporter.GetProgressChannel()))
}

func listenForExport(ch <-chan services.ExportProgress) tea.Cmd {
	return func() tea.Msg {
		progress, ok := <-ch
		if !ok {
			return nil
		}
		return exportProgressMsg{ch: ch, progress: progress}
	}
}
