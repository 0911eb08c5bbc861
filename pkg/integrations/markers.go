package integrations

import (
	"sync"

	"github.com/kerbaras/scriptures/pkg/data"
)

// MarkerBoard is the terminal stand-in for a map: it holds the markers of
// the displayed chapter. It reports ready once the UI has laid it out.
type MarkerBoard struct {
	mu      sync.RWMutex
	ready   bool
	markers []data.Marker
}

func NewMarkerBoard() *MarkerBoard {
	return &MarkerBoard{}
}

func (b *MarkerBoard) SetReady(ready bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ready = ready
}

func (b *MarkerBoard) Ready() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ready
}

func (b *MarkerBoard) AddMarker(marker data.Marker) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.markers = append(b.markers, marker)
}

func (b *MarkerBoard) ClearMarkers() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.markers = nil
}

// Markers returns a copy of the placed markers.
func (b *MarkerBoard) Markers() []data.Marker {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]data.Marker, len(b.markers))
	copy(out, b.markers)
	return out
}
