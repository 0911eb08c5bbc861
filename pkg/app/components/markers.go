package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/scriptures/pkg/app/styles"
	"github.com/kerbaras/scriptures/pkg/data"
)

// MarkerPanel lists the places mentioned in the displayed chapter.
type MarkerPanel struct {
	Markers []data.Marker
	Err     error
	Width   int
	Height  int
}

func NewMarkerPanel() *MarkerPanel {
	return &MarkerPanel{Width: 30, Height: 20}
}

func (p *MarkerPanel) Set(markers []data.Marker, err error) {
	p.Markers = markers
	p.Err = err
}

func (p *MarkerPanel) View() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Places"))
	b.WriteString("\n")

	switch {
	case p.Err != nil:
		b.WriteString(styles.WarningStyle.Render("Map unavailable"))
	case len(p.Markers) == 0:
		b.WriteString(styles.MutedStyle.Render("No places in this chapter"))
	default:
		rows := p.Height - 3
		for i, m := range p.Markers {
			if rows > 0 && i >= rows {
				b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("… %d more", len(p.Markers)-i)))
				break
			}
			b.WriteString(styles.TextStyle.Render(m.Placename))
			b.WriteString(" ")
			b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%.3f, %.3f", m.Latitude, m.Longitude)))
			b.WriteString("\n")
		}
	}

	return styles.MarkerPanelStyle.Width(p.Width).Render(strings.TrimRight(b.String(), "\n"))
}
