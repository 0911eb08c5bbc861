package integrations

import (
	"testing"

	"github.com/kerbaras/scriptures/pkg/data"
)

func TestMarkerBoard(t *testing.T) {
	board := NewMarkerBoard()

	if board.Ready() {
		t.Error("Expected new board not to be ready")
	}

	board.SetReady(true)
	if !board.Ready() {
		t.Error("Expected board to be ready")
	}

	board.AddMarker(data.Marker{Placename: "Jerusalem", Latitude: 31.78, Longitude: 35.23})
	board.AddMarker(data.Marker{Placename: "Bethel", Latitude: 31.93, Longitude: 35.22})

	markers := board.Markers()
	if len(markers) != 2 {
		t.Fatalf("Expected 2 markers, got %d", len(markers))
	}

	markers[0].Placename = "changed"
	if board.Markers()[0].Placename != "Jerusalem" {
		t.Error("Expected Markers to return a copy")
	}

	board.ClearMarkers()
	if len(board.Markers()) != 0 {
		t.Errorf("Expected markers to be cleared, got %d", len(board.Markers()))
	}
}
