package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/kerbaras/scriptures/pkg/app/styles"
	"github.com/kerbaras/scriptures/pkg/data"
)

func TestMarkerPanelEmpty(t *testing.T) {
	panel := NewMarkerPanel()

	if !strings.Contains(panel.View(), "No places") {
		t.Error("Expected empty message in view")
	}
}

func TestMarkerPanelListsPlaces(t *testing.T) {
	panel := NewMarkerPanel()
	panel.Width = 50
	panel.Set([]data.Marker{
		{Placename: "Bethel", Latitude: 31.93, Longitude: 35.22},
		{Placename: "Shechem", Latitude: 32.2138, Longitude: 35.2817},
	}, nil)

	view := panel.View()
	if !strings.Contains(view, "Bethel") || !strings.Contains(view, "Shechem") {
		t.Errorf("Expected placenames in view, got: %s", view)
	}
	if !strings.Contains(view, "32.214, 35.282") {
		t.Errorf("Expected coordinates in view, got: %s", view)
	}
}

func TestMarkerPanelTruncates(t *testing.T) {
	panel := NewMarkerPanel()
	panel.Height = 5

	markers := make([]data.Marker, 6)
	for i := range markers {
		markers[i] = data.Marker{Placename: "Ai"}
	}
	panel.Set(markers, nil)

	if !strings.Contains(panel.View(), "4 more") {
		t.Errorf("Expected overflow count, got: %s", panel.View())
	}
}

func TestMarkerPanelError(t *testing.T) {
	panel := NewMarkerPanel()
	panel.Set(nil, errors.New("map markers unavailable"))

	view := panel.View()
	if !strings.Contains(view, "Map unavailable") {
		t.Error("Expected error message in view")
	}
	if !strings.Contains(view, styles.WarningStyle.Render("Map unavailable")) {
		t.Errorf("Expected the warning style for a missing map, got: %s", view)
	}
}
