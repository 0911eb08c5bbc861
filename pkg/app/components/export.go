package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbaras/scriptures/pkg/app/styles"
	"github.com/kerbaras/scriptures/pkg/services"
)

// ExportTracker keeps the latest progress of each book being exported.
type ExportTracker struct {
	exports map[int]*services.ExportProgress
	titles  map[int]string
	width   int
}

func NewExportTracker(width int) *ExportTracker {
	return &ExportTracker{
		exports: make(map[int]*services.ExportProgress),
		titles:  make(map[int]string),
		width:   width,
	}
}

func (p *ExportTracker) SetWidth(width int) {
	p.width = width
}

// Start registers an export of bookID shown under title.
func (p *ExportTracker) Start(bookID int, title string) {
	p.titles[bookID] = title
	p.exports[bookID] = &services.ExportProgress{BookID: bookID, Status: "fetching"}
}

func (p *ExportTracker) Update(progress services.ExportProgress) {
	prev, ok := p.exports[progress.BookID]
	// updates are sent concurrently, never move a counter backwards
	if ok && progress.Status == "fetching" && prev.Done > progress.Done {
		return
	}
	prog := progress // Copy
	p.exports[progress.BookID] = &prog
}

// Finish records the final outcome of an export.
func (p *ExportTracker) Finish(bookID int, path string, err error) {
	prog, ok := p.exports[bookID]
	if !ok {
		prog = &services.ExportProgress{BookID: bookID}
		p.exports[bookID] = prog
	}
	if err != nil {
		prog.Status = "error"
		prog.Error = err
		return
	}
	prog.Status = "complete"
	prog.Done = prog.Total
	p.titles[bookID] = fmt.Sprintf("%s → %s", p.title(bookID), path)
}

func (p *ExportTracker) Clear() {
	p.exports = make(map[int]*services.ExportProgress)
	p.titles = make(map[int]string)
}

func (p *ExportTracker) HasActive() bool {
	for _, prog := range p.exports {
		if prog.Status == "fetching" || prog.Status == "processing" {
			return true
		}
	}
	return false
}

func (p *ExportTracker) title(bookID int) string {
	if title, ok := p.titles[bookID]; ok {
		return title
	}
	return fmt.Sprintf("Book %d", bookID)
}

func (p *ExportTracker) View() string {
	if len(p.exports) == 0 {
		return ""
	}

	ids := make([]int, 0, len(p.exports))
	for id := range p.exports {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Exports"))
	b.WriteString("\n")

	for _, id := range ids {
		progress := p.exports[id]

		b.WriteString(styles.TextStyle.Render(p.title(id)))
		b.WriteString("\n")

		statusText := progress.Status
		if progress.Total > 0 {
			percentage := float64(progress.Done) / float64(progress.Total) * 100
			statusText = fmt.Sprintf("%s (%d/%d chapters - %.0f%%)",
				progress.Status, progress.Done, progress.Total, percentage)

			bar := renderProgressBar(progress.Done, progress.Total, p.width-4)
			b.WriteString(bar)
			b.WriteString("\n")
		}

		b.WriteString(styles.StatusStyle(progress.Status).Render(statusText))
		b.WriteString("\n")

		if progress.Error != nil {
			b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", progress.Error)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
	return bar
}
