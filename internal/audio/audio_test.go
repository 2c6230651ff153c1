package audio

import (
	"math"
	"testing"
	"time"

	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/game"
)

type recorder struct {
	hits   []game.Judgement
	misses int
	beats  []int
}

func (r *recorder) Hit(j game.Judgement) { r.hits = append(r.hits, j) }
func (r *recorder) Miss()                { r.misses++ }
func (r *recorder) Beat(b int)           { r.beats = append(r.beats, b) }

func TestDispatch(t *testing.T) {
	snap := engine.Snapshot{
		Events: []engine.Resolution{
			{Judgement: game.Perfect},
			{Judgement: game.Miss, Timeout: true},
			{Judgement: game.Miss},
			{Judgement: game.Good},
		},
		Beats: []int{3},
	}

	var r recorder
	Dispatch(&r, snap, false)
	if len(r.hits) != 2 || r.hits[0] != game.Perfect || r.hits[1] != game.Good || r.misses != 2 {
		t.Errorf("recorded %+v", r)
	}
	if len(r.beats) != 0 {
		t.Errorf("beats without metronome %v", r.beats)
	}

	r = recorder{}
	Dispatch(&r, snap, true)
	if len(r.beats) != 1 || r.beats[0] != 3 {
		t.Errorf("beats %v", r.beats)
	}

	Dispatch(Nop{}, snap, true)
}

func TestClick(t *testing.T) {
	s := click(sampleRate, 880, 10*time.Millisecond, 0.5)
	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			if math.Abs(sample[0]) > 0.5 || sample[0] != sample[1] {
				t.Fatalf("sample %v", sample)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != sampleRate.N(10*time.Millisecond) {
		t.Errorf("%d samples", total)
	}
}
