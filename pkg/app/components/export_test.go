package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/kerbaras/scriptures/pkg/services"
)

func TestNewExportTracker(t *testing.T) {
	tracker := NewExportTracker(80)

	if tracker.width != 80 {
		t.Errorf("Expected width 80, got %d", tracker.width)
	}

	if tracker.HasActive() {
		t.Error("Expected no active exports initially")
	}

	if view := tracker.View(); view != "" {
		t.Errorf("Expected empty view, got: %s", view)
	}
}

func TestExportTrackerLifecycle(t *testing.T) {
	tracker := NewExportTracker(80)
	tracker.Start(101, "Genesis")

	if !tracker.HasActive() {
		t.Error("Expected an active export after Start")
	}

	tracker.Update(services.ExportProgress{BookID: 101, Chapter: 3, Done: 2, Total: 50, Status: "fetching"})
	view := tracker.View()

	if !strings.Contains(view, "Genesis") {
		t.Error("Expected book title in view")
	}
	if !strings.Contains(view, "2/50") {
		t.Error("Expected chapter progress in view")
	}

	tracker.Finish(101, "/tmp/Genesis.epub", nil)

	if tracker.HasActive() {
		t.Error("Expected no active export after Finish")
	}
	view = tracker.View()
	if !strings.Contains(view, "complete") || !strings.Contains(view, "/tmp/Genesis.epub") {
		t.Errorf("Expected completed export in view, got: %s", view)
	}
}

func TestExportTrackerIgnoresOutOfOrderProgress(t *testing.T) {
	tracker := NewExportTracker(80)

	tracker.Update(services.ExportProgress{BookID: 1, Done: 3, Total: 5, Status: "fetching"})
	tracker.Update(services.ExportProgress{BookID: 1, Done: 2, Total: 5, Status: "fetching"})

	if got := tracker.exports[1].Done; got != 3 {
		t.Errorf("Expected Done to stay at 3, got %d", got)
	}
}

func TestExportTrackerError(t *testing.T) {
	tracker := NewExportTracker(80)
	tracker.Start(7, "Moses")
	tracker.Finish(7, "", errors.New("status 503"))

	view := tracker.View()
	if !strings.Contains(view, "Error: status 503") {
		t.Errorf("Expected error in view, got: %s", view)
	}

	tracker.Clear()
	if len(tracker.exports) != 0 {
		t.Errorf("Expected 0 exports after clear, got %d", len(tracker.exports))
	}
}

func TestRenderProgressBarZeroTotal(t *testing.T) {
	if bar := renderProgressBar(0, 0, 20); bar != "" {
		t.Errorf("Expected empty string for zero total, got: %s", bar)
	}
}

func TestRenderProgressBarFull(t *testing.T) {
	bar := renderProgressBar(100, 100, 20)

	if got := strings.Count(bar, "█"); got != 20 {
		t.Errorf("Expected 20 filled chars, got %d", got)
	}
	if strings.Contains(bar, "░") {
		t.Error("Expected no empty chars in a full bar")
	}
}

func TestRenderProgressBarHalf(t *testing.T) {
	bar := renderProgressBar(50, 100, 20)

	if got := strings.Count(bar, "█"); got != 10 {
		t.Errorf("Expected 10 filled chars, got %d", got)
	}
	if got := strings.Count(bar, "░"); got != 10 {
		t.Errorf("Expected 10 empty chars, got %d", got)
	}
}
