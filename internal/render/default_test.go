package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/score"
	"git.lost.host/meutraa/hitline/internal/theme"
)

func testRenderer(out *bytes.Buffer) *DefaultRenderer {
	r := NewDefaultRenderer(&theme.DefaultTheme{}, engine.DefaultConfig(), false)
	r.out = out
	r.fd = -1
	r.rows, r.columns = 44, 120
	return r
}

func TestTrackRow(t *testing.T) {
	r := testRenderer(&bytes.Buffer{})
	tests := map[float64]int{
		0:    1,
		525:  22,
		1050: 43,
		820:  33,
	}
	for offset, row := range tests {
		if out := r.trackRow(offset); out != row {
			t.Errorf("offset %v: row %d, expected %d", offset, out, row)
		}
	}
}

func TestLaneColumns(t *testing.T) {
	r := testRenderer(&bytes.Buffer{})
	expected := []int{42, 54, 66, 78}
	for i, col := range expected {
		if out := r.laneColumn(game.Lane(i + 1)); out != col {
			t.Errorf("lane %d: column %d, expected %d", i+1, out, col)
		}
	}
}

func TestDrawGame(t *testing.T) {
	var out bytes.Buffer
	r := testRenderer(&out)
	snap := engine.Snapshot{
		Phase:  engine.Playing,
		Notes:  []engine.NoteView{{ID: 0, Lane: 2, Offset: 400}},
		Score:  6,
		Counts: map[game.Judgement]int{game.Perfect: 1, game.Great: 1},
	}
	snap.Banners[1] = engine.Banner{Judgement: game.Great, Visible: true}
	snap.Receptors[3] = true
	r.Draw(snap, nil, 0)
	r.flush()

	s := out.String()
	for _, want := range []string{"Score:       6", "Great", "Perfect", "⬤", "◉"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDrawResults(t *testing.T) {
	var out bytes.Buffer
	r := testRenderer(&out)
	tally := score.NewTally()
	tally.Add(game.Perfect, 4)
	snap := engine.Snapshot{
		Phase:  engine.Results,
		Result: &score.Result{Tally: tally, Accuracy: tally.Accuracy()},
	}
	r.Draw(snap, &score.History{Accuracy: 87.5, PlayedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}, 3)
	r.flush()

	s := out.String()
	for _, want := range []string{"Accuracy: 100.00%", "Best: 87.50% (2024-05-01)", "Plays: 3", "Press 'r' to play again!"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFlushEmpty(t *testing.T) {
	var out bytes.Buffer
	r := testRenderer(&out)
	r.flush()
	if out.Len() != 0 {
		t.Errorf("wrote %q", out.String())
	}
}
