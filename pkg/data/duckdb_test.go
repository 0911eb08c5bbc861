package data

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "scriptures-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewDuckDBRepository(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func TestInitDuckDBCreatesTables(t *testing.T) {
	tmpDir := t.TempDir()

	db, err := InitDuckDB(filepath.Join(tmpDir, "nested", "dir", "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	defer db.Close()

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM information_schema.tables WHERE table_name IN ('volumes', 'books', 'history')`).Scan(&tableCount)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	if tableCount != 3 {
		t.Errorf("Expected 3 tables, got %d", tableCount)
	}
}

func TestSaveAndLoadReference(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	volumes := []Volume{
		{ID: 1, Abbr: "ot", FullName: "Old Testament", MinBookID: 101, MaxBookID: 102},
		{ID: 2, Abbr: "nt", FullName: "New Testament", MinBookID: 103, MaxBookID: 103},
	}
	books := []Book{
		{ID: 101, VolumeID: 1, FullName: "Genesis", GridName: "Gen.", TocName: "Genesis", NumChapters: 50},
		{ID: 102, VolumeID: 1, FullName: "Exodus", GridName: "Ex.", TocName: "Exodus", NumChapters: 40},
		{ID: 103, VolumeID: 2, FullName: "Matthew", GridName: "Matt.", TocName: "Matthew", NumChapters: 28},
	}

	if err := repo.SaveReference(volumes, books); err != nil {
		t.Fatalf("Failed to save reference: %v", err)
	}

	gotVolumes, gotBooks, err := repo.LoadReference()
	if err != nil {
		t.Fatalf("Failed to load reference: %v", err)
	}

	if len(gotVolumes) != 2 {
		t.Fatalf("Expected 2 volumes, got %d", len(gotVolumes))
	}
	if gotVolumes[1].FullName != "New Testament" {
		t.Errorf("Expected 'New Testament', got '%s'", gotVolumes[1].FullName)
	}
	if gotVolumes[0].MaxBookID != 102 {
		t.Errorf("Expected MaxBookID 102, got %d", gotVolumes[0].MaxBookID)
	}

	if len(gotBooks) != 3 {
		t.Fatalf("Expected 3 books, got %d", len(gotBooks))
	}
	if gotBooks[2].NumChapters != 28 || gotBooks[2].VolumeID != 2 {
		t.Errorf("Unexpected book row: %+v", gotBooks[2])
	}
}

func TestSaveReferenceReplacesPreviousTables(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	repo.SaveReference(
		[]Volume{{ID: 1, FullName: "Old"}, {ID: 2, FullName: "Gone"}},
		[]Book{{ID: 1, VolumeID: 1, TocName: "Old"}},
	)

	err := repo.SaveReference(
		[]Volume{{ID: 1, FullName: "New"}},
		[]Book{{ID: 1, VolumeID: 1, TocName: "New"}},
	)
	if err != nil {
		t.Fatalf("Failed to replace reference: %v", err)
	}

	volumes, books, err := repo.LoadReference()
	if err != nil {
		t.Fatalf("Failed to load reference: %v", err)
	}
	if len(volumes) != 1 || volumes[0].FullName != "New" {
		t.Errorf("Expected only the replaced volume, got %+v", volumes)
	}
	if len(books) != 1 || books[0].TocName != "New" {
		t.Errorf("Expected only the replaced book, got %+v", books)
	}
}

func TestLoadReferenceEmpty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	volumes, books, err := repo.LoadReference()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(volumes) != 0 || len(books) != 0 {
		t.Errorf("Expected empty cache, got %d volumes and %d books", len(volumes), len(books))
	}
}

func TestRecordAndListVisits(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, hash := range []string{"0:101:1", "0:101:2", "0:103:5"} {
		if err := repo.RecordVisit(hash, "title "+hash); err != nil {
			t.Fatalf("Failed to record visit: %v", err)
		}
	}

	visits, err := repo.RecentVisits(2)
	if err != nil {
		t.Fatalf("Failed to list visits: %v", err)
	}

	if len(visits) != 2 {
		t.Fatalf("Expected 2 visits, got %d", len(visits))
	}
	if visits[0].Hash != "0:103:5" {
		t.Errorf("Expected newest visit first, got '%s'", visits[0].Hash)
	}
	if visits[0].VisitedAt.IsZero() {
		t.Error("Expected visit timestamp to be set")
	}
}
