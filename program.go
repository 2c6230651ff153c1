package main

import (
	"log"

	"git.lost.host/meutraa/hitline/internal/audio"
	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/input"
	"git.lost.host/meutraa/hitline/internal/score"
)

// Program drives a session from a front end: it gates ticks, plays sounds
// and records finished songs.
type Program struct {
	Session   *engine.Session
	Scorer    score.Scorer
	Sink      audio.Sink
	Metronome bool

	clock engine.Clock
	gate  *engine.Gate

	last  engine.Snapshot
	best  *score.History
	plays int
	quit  bool
}

func NewProgram(session *engine.Session, config engine.Config, clock engine.Clock) *Program {
	return &Program{
		Session: session,
		Sink:    audio.Nop{},
		clock:   clock,
		gate:    engine.NewGate(config.TickPeriod()),
	}
}

// Step runs one tick if one is due, polling the provider only then. It
// returns the latest snapshot and whether it is new.
func (p *Program) Step(provider input.Provider) (engine.Snapshot, bool, error) {
	if !p.gate.Ready(p.clock.Now()) {
		return p.last, false, nil
	}
	snap, err := p.StepNow(provider)
	return snap, nil == err, err
}

// StepNow runs one tick right away. It is for front ends that already call
// it at the tick rate.
func (p *Program) StepNow(provider input.Provider) (engine.Snapshot, error) {
	snap, err := p.Session.Tick(p.clock.Now(), provider.Poll())
	if nil != err {
		return snap, err
	}
	p.quit = snap.Quit
	audio.Dispatch(p.Sink, snap, p.Metronome)

	if snap.Changed && snap.Phase == engine.Results {
		p.finish(snap)
	}
	p.last = snap
	return snap, nil
}

func (p *Program) finish(snap engine.Snapshot) {
	res := snap.Result
	if nil == res {
		return
	}
	log.Printf("song over: %d notes, %v/%v, %.2f%%", res.Tally.Resolved(), res.Tally.Score, res.Tally.MaxScore, res.Accuracy)
	if nil == p.Scorer {
		return
	}

	// Look up the best before saving, so it is the one to beat.
	best, ok, err := p.Scorer.Best(snap.Difficulty)
	if nil != err {
		log.Println("unable to load best score", err)
	}
	p.best = nil
	if ok {
		p.best = &best
	}

	past, err := p.Scorer.Load(snap.Difficulty)
	if nil != err {
		log.Println("unable to load score history", err)
	}
	p.plays = len(past) + 1

	if err := p.Scorer.Save(snap.Difficulty, *res); nil != err {
		log.Println(err)
	}
}

// Best is the best previous result for the song that just ended.
func (p *Program) Best() *score.History {
	return p.best
}

// Plays counts the finished songs with the same settings, this one included.
func (p *Program) Plays() int {
	return p.plays
}

func (p *Program) Quit() bool {
	return p.quit
}
