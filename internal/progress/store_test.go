package progress

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveAndLookup(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("/books/a.mp3", 123.5); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	pos, err := store.Lookup("/books/a.mp3")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if pos != 123.5 {
		t.Errorf("position = %v, expected 123.5", pos)
	}
}

func TestStore_SaveReplacesEarlierPosition(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("/books/a.mp3", 10); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save("/books/a.mp3", 200); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	pos, err := store.Lookup("/books/a.mp3")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if pos != 200 {
		t.Errorf("position = %v, expected 200", pos)
	}
}

func TestStore_LookupUnknownTrack(t *testing.T) {
	store := openTestStore(t)

	pos, err := store.Lookup("/books/never-played.mp3")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if pos != 0 {
		t.Errorf("position = %v, expected 0 for unknown track", pos)
	}
}

func TestStore_Reset(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("/books/a.mp3", 55); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Reset("/books/a.mp3"); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	pos, err := store.Lookup("/books/a.mp3")
	if err != nil {
		t.Fatalf("Lookup after reset failed: %v", err)
	}
	if pos != 0 {
		t.Errorf("position = %v, expected 0 after reset", pos)
	}
}

func TestStore_TracksAreIndependent(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("/books/a.mp3", 11); err != nil {
		t.Fatalf("Save a failed: %v", err)
	}
	if err := store.Save("/books/b.mp3", 22); err != nil {
		t.Fatalf("Save b failed: %v", err)
	}

	posA, _ := store.Lookup("/books/a.mp3")
	posB, _ := store.Lookup("/books/b.mp3")
	if posA != 11 || posB != 22 {
		t.Errorf("positions = %v/%v, expected 11/22", posA, posB)
	}
}
