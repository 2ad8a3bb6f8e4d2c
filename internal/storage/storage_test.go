package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := t.TempDir()
	st, err := NewStorageAt(filepath.Join(dir, "db"))
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionRoundTrip(t *testing.T) {
	st := newTestStorage(t)

	sess := Session{ID: "game-1", Handicap: 0, HumMoves: []string{"7g7f", "3c3d"}}
	if err := st.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := st.LoadSession("game-1")
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if got.ID != sess.ID || got.Handicap != sess.Handicap || len(got.HumMoves) != len(sess.HumMoves) {
		t.Errorf("LoadSession = %+v, want %+v", got, sess)
	}
	for i := range sess.HumMoves {
		if got.HumMoves[i] != sess.HumMoves[i] {
			t.Errorf("HumMoves[%d] = %q, want %q", i, got.HumMoves[i], sess.HumMoves[i])
		}
	}
}

func TestSessionMissing(t *testing.T) {
	st := newTestStorage(t)
	if _, err := st.LoadSession("nonexistent"); err == nil {
		t.Errorf("LoadSession(nonexistent): expected error, got nil")
	}
}

func TestSessionListAndDelete(t *testing.T) {
	st := newTestStorage(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := st.SaveSession(Session{ID: id}); err != nil {
			t.Fatalf("SaveSession(%s): %v", id, err)
		}
	}

	ids, err := st.ListSessionIDs()
	if err != nil {
		t.Fatalf("ListSessionIDs: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("ListSessionIDs = %v, want 3 entries", ids)
	}

	if err := st.DeleteSession("b"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	ids, err = st.ListSessionIDs()
	if err != nil {
		t.Fatalf("ListSessionIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ListSessionIDs after delete = %v, want 2 entries", ids)
	}
	for _, id := range ids {
		if id == "b" {
			t.Errorf("deleted session %q still listed", id)
		}
	}
}

func TestSolverEntryRoundTrip(t *testing.T) {
	st := newTestStorage(t)

	sfenPos := "sfen lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"
	entry := SolverEntry{BestMove: "7g7f", ScoreNega: 12, CapturePrice: 0, DisadvPrice: 0}

	if err := st.SaveSolverEntry(sfenPos, entry); err != nil {
		t.Fatalf("SaveSolverEntry: %v", err)
	}

	got, found, err := st.LoadSolverEntry(sfenPos)
	if err != nil {
		t.Fatalf("LoadSolverEntry: %v", err)
	}
	if !found {
		t.Fatalf("LoadSolverEntry: expected a hit")
	}
	if got != entry {
		t.Errorf("LoadSolverEntry = %+v, want %+v", got, entry)
	}
}

func TestSolverEntryMiss(t *testing.T) {
	st := newTestStorage(t)
	_, found, err := st.LoadSolverEntry("sfen startpos")
	if err != nil {
		t.Fatalf("LoadSolverEntry: %v", err)
	}
	if found {
		t.Errorf("LoadSolverEntry: expected a miss on an empty store")
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}
}
