package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kerbaras/scriptures/pkg/data"
)

// ErrMarkersUnavailable is returned once the map widget failed to become
// ready within the retry budget.
var ErrMarkersUnavailable = errors.New("map markers unavailable")

// MapWidget is the map surface markers are forwarded to.
type MapWidget interface {
	Ready() bool
	AddMarker(marker data.Marker)
	ClearMarkers()
}

// MarkerPlacer forwards a chapter's markers to the map, waiting for the
// widget with a doubling delay for at most maxAttempts retries.
type MarkerPlacer struct {
	widget       MapWidget
	initialDelay time.Duration
	maxAttempts  int
	log          *zap.Logger

	mu sync.Mutex // serializes writes to widget
}

func NewMarkerPlacer(widget MapWidget, initialDelay time.Duration, maxAttempts int, log *zap.Logger) *MarkerPlacer {
	return &MarkerPlacer{
		widget:       widget,
		initialDelay: initialDelay,
		maxAttempts:  maxAttempts,
		log:          log,
	}
}

// Place replaces the widget's markers with markers and returns what it
// placed. Markers sharing a coordinate are merged into one whose placename
// lists every name.
func (p *MarkerPlacer) Place(ctx context.Context, markers []data.Marker) ([]data.Marker, error) {
	if err := p.waitReady(ctx); err != nil {
		return nil, err
	}

	merged := MergeMarkers(markers)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.widget.ClearMarkers()
	for _, m := range merged {
		p.widget.AddMarker(m)
	}
	return merged, nil
}

func (p *MarkerPlacer) waitReady(ctx context.Context) error {
	delay := p.initialDelay
	for attempt := 0; !p.widget.Ready(); attempt++ {
		if attempt >= p.maxAttempts {
			p.log.Warn("map widget never became ready", zap.Int("attempts", attempt))
			return fmt.Errorf("%w after %d attempts", ErrMarkersUnavailable, attempt)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return nil
}

// MergeMarkers collapses markers at the same coordinate, keeping first-seen
// order and joining distinct placenames with ", ".
func MergeMarkers(markers []data.Marker) []data.Marker {
	type coord struct{ lat, lon float64 }

	index := make(map[coord]int, len(markers))
	var out []data.Marker
	for _, m := range markers {
		key := coord{m.Latitude, m.Longitude}
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, m)
			continue
		}
		if !containsName(out[i].Placename, m.Placename) {
			out[i].Placename += ", " + m.Placename
		}
	}
	return out
}

func containsName(list, name string) bool {
	for _, existing := range strings.Split(list, ", ") {
		if existing == name {
			return true
		}
	}
	return false
}
