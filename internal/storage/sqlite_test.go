package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("dinorun", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("dinorun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	rounds := []Round{
		{GameID: "dinorun", Score: 3, Ticks: 120, Seed: 1},
		{GameID: "dinorun", Score: 9, Ticks: 400, Seed: 2},
		{GameID: "dinorun", Score: 5, Ticks: 200, Seed: 3},
		{GameID: "other", Score: 50},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	scores, err := store.TopScores("dinorun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{9, 5, 3}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("score[%d] = %d, expected %d", i, s.Score, want[i])
		}
	}
	if scores[0].Ticks != 400 || scores[0].Seed != 2 {
		t.Errorf("round details lost: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTemp(t)

	store.SaveRound(Round{GameID: "dinorun", Score: 4, Ticks: 100})
	store.SaveRound(Round{GameID: "dinorun", Score: 4, Ticks: 300})

	scores, err := store.TopScores("dinorun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Ticks != 300 {
		t.Errorf("Expected the longer run first on a tie, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("dinorun", i+1)
	}

	scores, err := store.TopScores("dinorun", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("dinorun", 0)
	if len(all) != 5 {
		t.Errorf("Expected default limit to cover 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("dinorun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("dinorun", 2)
	store.SaveScore("dinorun", 7)
	store.SaveScore("dinorun", 4)

	high, err = store.HighScore("dinorun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected high score of 7, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("dinorun", 1)
	store.SaveScore("dinorun", 2)
	store.SaveScore("other", 3)

	if err := store.ClearScores("dinorun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("dinorun", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("Other game scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetGameStats("dinorun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRound(Round{GameID: "dinorun", Score: 2, Ticks: 50})
	store.SaveRound(Round{GameID: "dinorun", Score: 6, Ticks: 90})

	stats, err := store.GetGameStats("dinorun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.TotalCoins != 8 || stats.LongestRun != 90 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("Expected average 4, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.dinorun/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".dinorun", "scores.db"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}

	if got, _ := expandHome("relative.db"); got != "relative.db" {
		t.Errorf("relative path changed to %q", got)
	}
}
