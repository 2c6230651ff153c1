package engine

import (
	"testing"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/input"
)

func notes(lanes ...game.Lane) []*game.Note {
	ns := make([]*game.Note, len(lanes))
	for i, l := range lanes {
		ns[i] = &game.Note{ID: i, Lane: l, Speed: 10, Time: time.Duration(i) * time.Millisecond}
	}
	return ns
}

func TestQueueRelease(t *testing.T) {
	q := NewQueue(notes(1, 2, 3, 4))
	if q.Len() != 4 {
		t.Fatalf("len %d", q.Len())
	}
	if out := q.Release(0); len(out) != 1 || out[0].ID != 0 {
		t.Errorf("released %v", out)
	}
	if out := q.Release(0); len(out) != 0 {
		t.Errorf("released twice: %v", out)
	}
	if out := q.Release(2 * time.Millisecond); len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("released %v", out)
	}
	if out := q.Release(time.Hour); len(out) != 1 || q.Len() != 0 {
		t.Errorf("released %v, %d left", out, q.Len())
	}
	if out := q.Release(time.Hour); len(out) != 0 {
		t.Errorf("released from empty queue: %v", out)
	}
}

func TestActiveSetKeepsSpawnOrder(t *testing.T) {
	var a ActiveSet
	ns := notes(2, 2, 2, 1)
	a.Add(ns[2])
	a.Add(ns[0])
	a.Add(ns[1])
	a.Add(ns[3])
	lane := a.Lane(2)
	if len(lane) != 3 || lane[0].ID != 0 || lane[1].ID != 1 || lane[2].ID != 2 {
		t.Errorf("lane 2 order %v", lane)
	}
	if a.Len() != 4 || len(a.Lane(1)) != 1 || nil != a.Lane(0) {
		t.Errorf("len %d", a.Len())
	}
	a.Clear()
	if a.Len() != 0 {
		t.Errorf("len %d after clear", a.Len())
	}
}

func TestActiveSetStepAdvancesAll(t *testing.T) {
	var a ActiveSet
	for _, n := range notes(1, 2, 3, 4) {
		a.Add(n)
	}
	if out := a.Step(DefaultConfig(), input.Edges{}); len(out) != 0 {
		t.Errorf("resolved %v", out)
	}
	for l := game.Lane(1); l <= game.Lanes; l++ {
		if a.Lane(l)[0].Position != 10 {
			t.Errorf("lane %d at %v", l, a.Lane(l)[0].Position)
		}
	}
}

func TestActiveSetPressGoesToEarliest(t *testing.T) {
	var a ActiveSet
	ns := notes(3, 3)
	ns[0].Position = 880
	ns[1].Position = 870
	a.Add(ns[0])
	a.Add(ns[1])

	out := a.Step(DefaultConfig(), input.Edges{false, false, true})
	if len(out) != 1 || out[0].Note.ID != 0 || out[0].Judgement != game.Perfect {
		t.Fatalf("resolved %+v", out)
	}
	if len(a.Lane(3)) != 1 || a.Lane(3)[0].ID != 1 || a.Lane(3)[0].Position != 880 {
		t.Errorf("lane 3 %v", a.Lane(3))
	}
}

func TestActiveSetTimeoutAndPressSameTick(t *testing.T) {
	var a ActiveSet
	ns := notes(1, 1)
	ns[0].Position = 1115 // past the limit after this tick
	ns[1].Position = 880
	a.Add(ns[0])
	a.Add(ns[1])

	// The press goes to the front note, which it can still judge as a miss.
	out := a.Step(DefaultConfig(), input.Edges{true})
	if len(out) != 1 || out[0].Note.ID != 0 || out[0].Timeout || out[0].Judgement != game.Miss {
		t.Fatalf("resolved %+v", out)
	}
	if len(a.Lane(1)) != 1 {
		t.Errorf("lane 1 %v", a.Lane(1))
	}
}

func TestGate(t *testing.T) {
	g := NewGate(DefaultConfig().TickPeriod())
	if g.Period != 3333333*time.Nanosecond {
		t.Fatalf("period %v", g.Period)
	}
	ticks := 0
	for now := time.Duration(0); now < time.Second; now += 100 * time.Microsecond {
		if g.Ready(now) {
			ticks++
		}
	}
	if ticks < 290 || ticks > 300 {
		t.Errorf("%d ticks in one second", ticks)
	}
}

func TestTickPeriodWithoutFPS(t *testing.T) {
	if (Config{}).TickPeriod() != 0 {
		t.Error("expected zero period")
	}
	g := NewGate(0)
	if !g.Ready(0) || !g.Ready(0) {
		t.Error("zero period gate should always be ready")
	}
}

func BenchmarkStep(b *testing.B) {
	config := DefaultConfig()
	for n := 0; n < b.N; n++ {
		var a ActiveSet
		for i, l := range []game.Lane{1, 2, 3, 4, 1, 2, 3, 4} {
			a.Add(&game.Note{ID: i, Lane: l, Speed: 6})
		}
		for i := 0; i < 200; i++ {
			a.Step(config, input.Edges{i%7 == 0})
		}
	}
}
