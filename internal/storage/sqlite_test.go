package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entries := []ResultEntry{
		{Title: "Orb Arena", Seed: 1, Winner: "Crimson", Ticks: 3200, Duration: 53.3, Agents: 2},
		{Title: "Orb Arena", Seed: 2, Winner: "Azure", Ticks: 2800, Duration: 46.7, Agents: 2},
		{Title: "Orb Arena", Seed: 3, Winner: "", Ticks: 4500, Duration: 75, Agents: 2},
		{Title: "Other", Seed: 4, Winner: "Viridian", Ticks: 1000, Duration: 16.7, Agents: 3},
	}
	for _, e := range entries {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}

	// Newest first
	if results[0].Seed != 4 {
		t.Errorf("Expected newest entry first, got seed %d", results[0].Seed)
	}
	if results[3].Winner != "Crimson" {
		t.Errorf("Expected oldest winner Crimson, got %q", results[3].Winner)
	}

	// A timed-out match stores an empty winner.
	if results[1].Winner != "" {
		t.Errorf("Expected empty winner for the timed-out match, got %q", results[1].Winner)
	}
	if results[1].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreRecentResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveResult(ResultEntry{Title: "Orb Arena", Seed: int64(i), Winner: "Crimson", Ticks: 100, Duration: 1.7, Agents: 2})
	}

	results, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}

	// Non-positive limit falls back to a default rather than erroring.
	results, err = store.RecentResults(0)
	if err != nil {
		t.Fatalf("RecentResults(0) failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("Expected all 5 results under the default limit, got %d", len(results))
	}
}

func TestStoreWinnerCounts(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	wins := []string{"Crimson", "Crimson", "Azure", "Crimson", ""}
	for i, w := range wins {
		store.SaveResult(ResultEntry{Title: "Orb Arena", Seed: int64(i), Winner: w, Ticks: 100, Duration: 1.7, Agents: 2})
	}
	// A different title must not leak into the counts.
	store.SaveResult(ResultEntry{Title: "Other", Seed: 99, Winner: "Azure", Ticks: 100, Duration: 1.7, Agents: 2})

	counts, err := store.WinnerCounts("Orb Arena")
	if err != nil {
		t.Fatalf("WinnerCounts() failed: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("Expected 3 winner groups, got %d", len(counts))
	}
	if counts[0].Winner != "Crimson" || counts[0].Wins != 3 {
		t.Errorf("Expected Crimson with 3 wins first, got %s with %d", counts[0].Winner, counts[0].Wins)
	}

	empty, err := store.WinnerCounts("Missing")
	if err != nil {
		t.Fatalf("WinnerCounts() failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no counts for an unknown title, got %d", len(empty))
	}
}
