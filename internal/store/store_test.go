package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode reports "memory" for in-memory databases, so
		// journal_mode is only meaningful against file-backed DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPathwayCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathwayRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "hex-drills", "hexadecimal fluency", "INTERMEDIATE")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "hex-drills" {
		t.Errorf("Name = %q, want hex-drills", created.Name)
	}
	if created.Level != "INTERMEDIATE" {
		t.Errorf("Level = %q, want INTERMEDIATE", created.Level)
	}

	got, err := repo.Get(ctx, "hex-drills")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Description != "hexadecimal fluency" {
		t.Errorf("Description = %q, want %q", got.Description, "hexadecimal fluency")
	}
}

func TestPathwayDuplicateName(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathwayRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "binary-basics", "", "BEGINNER"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := repo.Create(ctx, "binary-basics", "again", "EXPERT")
	if !errors.Is(err, ErrPathwayExists) {
		t.Errorf("duplicate Create: error = %v, want ErrPathwayExists", err)
	}
}

func TestPathwayGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathwayRepo()

	_, err := repo.Get(context.Background(), "no-such-pathway")
	if !errors.Is(err, ErrPathwayNotFound) {
		t.Errorf("Get missing: error = %v, want ErrPathwayNotFound", err)
	}
}

func TestPathwayList(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathwayRepo()
	ctx := context.Background()

	names := []string{"octal-tour", "base36-sprint", "binary-fractions"}
	for _, n := range names {
		if _, err := repo.Create(ctx, n, "", "BEGINNER"); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("List returned %d pathways, want %d", len(all), len(names))
	}
}

func TestPathwayEdit(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathwayRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "fraction-focus", "old text", "BEGINNER"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	level := "ADVANCED"
	updated, err := repo.Edit(ctx, "fraction-focus", PathwayUpdate{Level: &level})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if updated.Level != "ADVANCED" {
		t.Errorf("Level = %q, want ADVANCED", updated.Level)
	}
	// Unset fields stay untouched.
	if updated.Description != "old text" {
		t.Errorf("Description = %q, want %q", updated.Description, "old text")
	}

	_, err = repo.Edit(ctx, "no-such-pathway", PathwayUpdate{Level: &level})
	if !errors.Is(err, ErrPathwayNotFound) {
		t.Errorf("Edit missing: error = %v, want ErrPathwayNotFound", err)
	}
}

func TestPathwayDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathwayRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "short-lived", "", "BEGINNER"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, "short-lived"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "short-lived"); !errors.Is(err, ErrPathwayNotFound) {
		t.Errorf("Get after delete: error = %v, want ErrPathwayNotFound", err)
	}

	if err := repo.Delete(ctx, "short-lived"); !errors.Is(err, ErrPathwayNotFound) {
		t.Errorf("Delete missing: error = %v, want ErrPathwayNotFound", err)
	}
}

func TestAttemptAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats on empty log: %v", err)
	}
	if stats.Total != 0 || stats.Correct != 0 || stats.Accuracy != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}

	attempts := []AttemptEventData{
		{SessionID: "sess-1", Kind: "base_conversion", SourceBase: 10, TargetBase: 16, Value: "255", Level: "BEGINNER", Complexity: 3.1, UserAnswer: "FF", Correct: true, SolvingTime: 12, ErrorRate: 0},
		{SessionID: "sess-1", Kind: "base_conversion", SourceBase: 16, TargetBase: 2, Value: "FF", Level: "INTERMEDIATE", Complexity: 5.5, UserAnswer: "1111", Correct: false, SolvingTime: 40, ErrorRate: 1},
		{SessionID: "sess-2", Kind: "base_conversion", SourceBase: 2, TargetBase: 10, Value: "1010", Level: "BEGINNER", Complexity: 2.0, UserAnswer: "10", Correct: true, SolvingTime: 8, ErrorRate: 0},
	}
	for i, a := range attempts {
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
	}

	stats, err = repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Correct != 2 {
		t.Errorf("Correct = %d, want 2", stats.Correct)
	}
	if want := 2.0 / 3.0; stats.Accuracy != want {
		t.Errorf("Accuracy = %v, want %v", stats.Accuracy, want)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	data, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if data != nil {
		t.Errorf("Latest on empty store = %s, want nil", data)
	}

	first := []byte(`{"difficulty_level":"BEGINNER","completed_challenges":[]}`)
	second := []byte(`{"difficulty_level":"INTERMEDIATE","completed_challenges":[]}`)
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	data, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if string(data) == "" {
		t.Fatal("Latest returned empty data")
	}

	var payload struct {
		DifficultyLevel string `json:"difficulty_level"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode latest snapshot: %v", err)
	}
	if payload.DifficultyLevel != "INTERMEDIATE" {
		t.Errorf("latest difficulty_level = %q, want INTERMEDIATE", payload.DifficultyLevel)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
		if seq <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, []byte(`{"difficulty_level":"BEGINNER","completed_challenges":[]}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	remaining, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if remaining != 1 {
		t.Errorf("snapshots after prune = %d, want 1", remaining)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		data := []byte(fmt.Sprintf(`{"difficulty_level":"BEGINNER","completed_challenges":[],"n":%d}`, i))
		if err := repo.Save(ctx, data); err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	remaining, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if remaining != 2 {
		t.Errorf("snapshots after prune = %d, want 2", remaining)
	}

	// Latest survives the prune.
	data, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest after prune: %v", err)
	}
	var payload struct {
		N int `json:"n"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode latest snapshot: %v", err)
	}
	if payload.N != 4 {
		t.Errorf("latest snapshot n = %d, want 4", payload.N)
	}
}
