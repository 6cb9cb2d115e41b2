package leaderboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSubmitScoreUpsert(t *testing.T) {
	store := openTestStore(t)

	// No prior entry: submitting 5 creates one.
	if err := store.SubmitScore("player-a", "Alice", 5); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	entry, err := store.EntryFor("player-a")
	if err != nil {
		t.Fatalf("EntryFor() failed: %v", err)
	}
	if entry == nil || entry.Score != 5 {
		t.Fatalf("Expected entry with score 5, got %+v", entry)
	}

	// Lower score leaves the stored one untouched.
	if err := store.SubmitScore("player-a", "Alice", 3); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	entry, _ = store.EntryFor("player-a")
	if entry.Score != 5 {
		t.Errorf("Score after lower submission = %d, expected 5", entry.Score)
	}

	// Strictly greater score updates.
	if err := store.SubmitScore("player-a", "Alice", 9); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	entry, _ = store.EntryFor("player-a")
	if entry.Score != 9 {
		t.Errorf("Score after higher submission = %d, expected 9", entry.Score)
	}

	// Equal score is a no-op too (strictly greater required).
	if err := store.SubmitScore("player-a", "Alice", 9); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}
	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected a single entry per identity, got %d", count)
	}
}

func TestEntryForMissing(t *testing.T) {
	store := openTestStore(t)

	entry, err := store.EntryFor("nobody")
	if err != nil {
		t.Fatalf("EntryFor() failed: %v", err)
	}
	if entry != nil {
		t.Errorf("Expected nil entry for unknown identity, got %+v", entry)
	}
}

func TestTopOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	scores := map[string]int{
		"p1": 40, "p2": 10, "p3": 70, "p4": 20, "p5": 55,
		"p6": 5, "p7": 90, "p8": 35, "p9": 60, "p10": 15,
		"p11": 80, "p12": 25,
	}
	for id, sc := range scores {
		if err := store.SubmitScore(id, "name-"+id, sc); err != nil {
			t.Fatalf("SubmitScore(%s) failed: %v", id, err)
		}
	}

	top, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}

	if len(top) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(top))
	}
	if top[0].Score != 90 {
		t.Errorf("Expected highest score 90 first, got %d", top[0].Score)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Errorf("Entries not descending at index %d: %d > %d",
				i, top[i].Score, top[i-1].Score)
		}
	}

	// The two lowest scores must have been cut off.
	for _, e := range top {
		if e.Score == 5 || e.Score == 10 {
			t.Errorf("Score %d should not be in the top 10", e.Score)
		}
	}
}

func TestTopDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SubmitScore(string(rune('a'+i)), "p", i+1)
	}

	top, err := store.Top(0)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != DefaultLimit {
		t.Errorf("Expected default limit of %d entries, got %d", DefaultLimit, len(top))
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	store.SubmitScore("a", "A", 1)
	store.SubmitScore("b", "B", 2)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	count, _ := store.Count()
	if count != 0 {
		t.Errorf("Expected 0 entries after Clear, got %d", count)
	}
}

func TestWatchStreamsTop(t *testing.T) {
	store := openTestStore(t)
	store.SubmitScore("a", "A", 7)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := store.Watch(ctx, 10*time.Millisecond, 10)

	select {
	case entries := <-ch:
		if len(entries) != 1 || entries[0].Score != 7 {
			t.Errorf("Unexpected first update: %+v", entries)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for first leaderboard update")
	}

	// A new best score shows up in a later poll.
	store.SubmitScore("b", "B", 12)
	deadline := time.After(2 * time.Second)
	for {
		select {
		case entries := <-ch:
			if len(entries) == 2 && entries[0].Score == 12 {
				cancel()
				// Channel closes after cancellation.
				for range ch {
				}
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for updated leaderboard")
		}
	}
}
