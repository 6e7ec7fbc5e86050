package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunLifecycle(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	started := time.Now().Add(-time.Minute)
	if err := store.BeginRun(ctx, "run-1", "/library", false, started); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := store.RecordOutcome(ctx, "run-1", "/library/a.mkv", "eligible", ""); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if err := store.RecordOutcome(ctx, "run-1", "/library/b.mkv", "already-default", "English track already default"); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if err := store.FinishRun(ctx, "run-1", 2, 1, 1); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs", len(runs))
	}
	run := runs[0]
	if run.ID != "run-1" || run.Root != "/library" || run.FilesSeen != 2 || run.Successes != 1 || run.Warnings != 1 {
		t.Fatalf("run = %+v", run)
	}
	if run.FinishedAt.IsZero() {
		t.Fatal("finished_at not recorded")
	}

	outcomes, err := store.RunOutcomes(ctx, "run-1")
	if err != nil {
		t.Fatalf("RunOutcomes: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes", len(outcomes))
	}
	if outcomes[0].Path != "/library/a.mkv" || outcomes[0].Reason != "" {
		t.Fatalf("outcomes[0] = %+v", outcomes[0])
	}
	if outcomes[1].Reason != "English track already default" {
		t.Fatalf("outcomes[1] = %+v", outcomes[1])
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"old", "mid", "new"} {
		if err := store.BeginRun(ctx, id, "/library", false, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("BeginRun %s: %v", id, err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "new" || runs[1].ID != "mid" {
		t.Fatalf("runs = %+v", runs)
	}
}

func TestFinishRunUnknownID(t *testing.T) {
	store := openStore(t)
	if err := store.FinishRun(context.Background(), "ghost", 0, 0, 0); err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.BeginRun(context.Background(), "run-1", "/library", true, time.Now()); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.RecentRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || !runs[0].DryRun {
		t.Fatalf("runs = %+v", runs)
	}
}
