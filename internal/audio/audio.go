package audio

import (
	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/game"
)

// Sink turns game events into sound.
type Sink interface {
	Hit(j game.Judgement)
	Miss()
	Beat(beat int)
}

type Nop struct{}

func (Nop) Hit(game.Judgement) {}
func (Nop) Miss()              {}
func (Nop) Beat(int)           {}

// Dispatch plays the sounds for everything that happened in a tick.
func Dispatch(s Sink, snap engine.Snapshot, metronome bool) {
	for _, e := range snap.Events {
		if e.Judgement == game.Miss {
			s.Miss()
		} else {
			s.Hit(e.Judgement)
		}
	}
	if metronome {
		for _, b := range snap.Beats {
			s.Beat(b)
		}
	}
}
