package engine

import (
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/generator"
	"git.lost.host/meutraa/hitline/internal/input"
	"git.lost.host/meutraa/hitline/internal/score"
)

// Session owns all simulation state of one player. Tick is its only
// writer and must be called from a single goroutine.
type Session struct {
	Logger *log.Logger

	config    Config
	generator generator.Generator

	phase   Phase
	tick    uint64
	origin  time.Duration
	elapsed time.Duration

	chart    *game.Chart
	queue    Queue
	active   ActiveSet
	sampler  input.Sampler
	lanes    [game.Lanes]LaneTiming
	tally    score.Tally
	inputs   []game.Input
	nextBeat int
	result   *score.Result
}

func NewSession(config Config, gen generator.Generator) *Session {
	return &Session{
		config:    config,
		generator: gen,
		phase:     Loading,
		lanes:     defaultLaneTimings(),
		tally:     score.NewTally(),
	}
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Tick advances the simulation to now, a reading of the session clock, with
// the raw key state sampled for this tick.
func (s *Session) Tick(now time.Duration, raw input.State) (Snapshot, error) {
	s.tick++
	s.sampler.Sample(raw)
	changed := false

	var events []Resolution
	var beats []int
	switch s.phase {
	case Loading:
		if err := s.load(now); nil != err {
			return s.snapshot(false, nil, nil), err
		}
		s.phase = Playing
		changed = true
	case Playing:
		events, beats = s.play(now)
		// Both collections are checked after the whole tick ran, so a note
		// between queue and track never ends the song.
		if s.queue.Len() == 0 && s.active.Len() == 0 {
			s.finish()
			changed = true
		}
	case Results:
		if s.sampler.Restart() {
			s.reset()
			changed = true
		}
	}

	return s.snapshot(changed, events, beats), nil
}

func (s *Session) load(now time.Duration) error {
	chart, err := s.generator.Generate(s.config.Beats)
	if nil != err {
		return fmt.Errorf("unable to generate chart: %w", err)
	}
	s.chart = chart
	s.queue = NewQueue(chart.Notes)
	s.active.Clear()
	s.origin = now
	s.elapsed = 0
	s.inputs = nil
	s.nextBeat = 0
	s.result = nil
	return nil
}

func (s *Session) play(now time.Duration) ([]Resolution, []int) {
	s.elapsed = now - s.origin

	pressed := input.Edges{}
	for i := 0; i < game.Lanes; i++ {
		lane := game.Lane(i + 1)
		if s.sampler.Pressed(lane) {
			pressed[i] = true
			s.inputs = append(s.inputs, game.Input{Lane: lane, HitTime: s.elapsed})
		}
	}

	var beats []int
	for s.nextBeat < len(s.chart.Measures) && s.chart.Measures[s.nextBeat].Time <= s.elapsed {
		beats = append(beats, s.chart.Measures[s.nextBeat].Beat)
		s.nextBeat++
	}

	for _, n := range s.queue.Release(s.elapsed) {
		s.active.Add(n)
	}

	resolved := s.active.Step(s.config, pressed)
	for _, r := range resolved {
		s.judge(r)
	}
	return resolved, beats
}

func (s *Session) judge(r Resolution) {
	points := 0.0
	if !r.Timeout {
		points = s.config.Windows.Points(r.Judgement)
	}
	s.tally.Add(r.Judgement, points)
	s.lanes[r.Note.Lane.Index()] = LaneTiming{Last: r.Judgement, At: s.elapsed}

	if nil != s.Logger {
		if r.Timeout {
			s.Logger.Printf("lane %d: %v not hit", r.Note.Lane, r.Judgement)
		} else {
			s.Logger.Printf("lane %d: %v %.0f", r.Note.Lane, r.Judgement, r.Delta)
		}
	}
}

func (s *Session) finish() {
	inputs := make([]game.Input, len(s.inputs))
	copy(inputs, s.inputs)
	s.result = &score.Result{
		Tally:    s.tally.Copy(),
		Accuracy: s.tally.Accuracy(),
		Inputs:   inputs,
	}
	s.phase = Results
}

// reset clears everything a finished song left behind. The chart is
// regenerated by the next Loading tick.
func (s *Session) reset() {
	s.tally = score.NewTally()
	s.lanes = defaultLaneTimings()
	s.queue = Queue{}
	s.active.Clear()
	s.inputs = nil
	s.result = nil
	s.elapsed = 0
	s.phase = Loading
}

// Banner returns the judgement to show above a lane at the current time.
func (s *Session) Banner(lane game.Lane) Banner {
	if !lane.Valid() {
		return Banner{}
	}
	t := s.lanes[lane.Index()]
	age := s.elapsed - t.At
	return Banner{
		Judgement: t.Last,
		Age:       age,
		Visible:   t.Last != game.None && age <= s.config.BannerDuration,
	}
}

// LaneTiming returns the last judgement state of a lane.
func (s *Session) LaneTiming(lane game.Lane) LaneTiming {
	if !lane.Valid() {
		return LaneTiming{}
	}
	return s.lanes[lane.Index()]
}

func (s *Session) snapshot(changed bool, events []Resolution, beats []int) Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Changed:   changed,
		Elapsed:   s.elapsed,
		Pending:   s.queue.Len(),
		Quit:      s.sampler.Quit(),
		Receptors: s.sampler.Receptors(),
		Events:    events,
		Beats:     beats,
		Score:     s.tally.Score,
		MaxScore:  s.tally.MaxScore,
		Accuracy:  s.tally.Accuracy(),
		Result:    s.result,
	}
	if nil != s.chart {
		snap.Difficulty = s.chart.Difficulty
	}

	snap.Counts = make(map[game.Judgement]int, len(game.Judgements))
	for _, j := range game.Judgements {
		snap.Counts[j] = s.tally.Counts[j]
	}

	snap.Notes = make([]NoteView, 0, s.active.Len())
	for i := 0; i < game.Lanes; i++ {
		lane := game.Lane(i + 1)
		snap.Banners[i] = s.Banner(lane)
		for _, n := range s.active.Lane(lane) {
			snap.Notes = append(snap.Notes, NoteView{ID: n.ID, Lane: n.Lane, Offset: s.config.Offset(n.Position)})
		}
	}
	return snap
}
