package score

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

func testDifficulty(seed int64, beats int) game.Difficulty {
	return game.Difficulty{BPM: 100, Beats: beats, Speed: 6, LeadIn: 500 * time.Millisecond, Seed: seed}
}

func openScorer(t *testing.T) *DefaultScorer {
	s := &DefaultScorer{}
	if err := s.Init(filepath.Join(t.TempDir(), "scores.db")); nil != err {
		t.Fatal(err)
	}
	t.Cleanup(s.Deinit)
	return s
}

func result(perfect, miss int) Result {
	tally := NewTally()
	for i := 0; i < perfect; i++ {
		tally.Add(game.Perfect, 4)
	}
	for i := 0; i < miss; i++ {
		tally.Add(game.Miss, 0)
	}
	return Result{
		Tally:    tally,
		Accuracy: tally.Accuracy(),
		Inputs:   []game.Input{{Lane: 1, HitTime: time.Second}, {Lane: 3, HitTime: 2 * time.Second}},
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := openScorer(t)
	chart := testDifficulty(1, 16)

	if err := s.Save(chart, result(3, 1)); nil != err {
		t.Fatal(err)
	}
	if err := s.Save(testDifficulty(2, 16), result(1, 3)); nil != err {
		t.Fatal(err)
	}
	// Different shape, not loaded.
	if err := s.Save(testDifficulty(3, 8), result(4, 0)); nil != err {
		t.Fatal(err)
	}

	histories, err := s.Load(chart)
	if nil != err {
		t.Fatal(err)
	}
	if len(histories) != 2 {
		t.Fatalf("%d histories, expected 2", len(histories))
	}
	h := histories[0]
	if h.Seed != 1 || h.Score != 12 || h.MaxScore != 16 || h.Accuracy != 75 {
		t.Errorf("history %+v", h)
	}
	if h.Counts[game.Perfect] != 3 || h.Counts[game.Miss] != 1 {
		t.Errorf("counts %v", h.Counts)
	}
	if len(h.Inputs) != 2 || h.Inputs[1].Lane != 3 || h.Inputs[1].HitTime != 2*time.Second {
		t.Errorf("inputs %v", h.Inputs)
	}
}

func TestBest(t *testing.T) {
	s := openScorer(t)
	chart := testDifficulty(1, 16)

	if _, ok, err := s.Best(chart); ok || nil != err {
		t.Fatalf("empty database returned best %v %v", ok, err)
	}

	for _, r := range []Result{result(1, 3), result(3, 1), result(2, 2)} {
		if err := s.Save(chart, r); nil != err {
			t.Fatal(err)
		}
	}
	best, ok, err := s.Best(chart)
	if nil != err || !ok {
		t.Fatalf("best %v %v", ok, err)
	}
	if best.Accuracy != 75 {
		t.Errorf("best accuracy %v", best.Accuracy)
	}
}

func TestNotInitialised(t *testing.T) {
	s := &DefaultScorer{}
	chart := testDifficulty(1, 1)
	if err := s.Save(chart, Result{}); !errors.Is(err, ErrNotInitialised) {
		t.Errorf("save: %v", err)
	}
	if _, err := s.Load(chart); !errors.Is(err, ErrNotInitialised) {
		t.Errorf("load: %v", err)
	}
	if _, _, err := s.Best(chart); !errors.Is(err, ErrNotInitialised) {
		t.Errorf("best: %v", err)
	}
}
