package engine

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/score"
)

type Phase int

const (
	Loading Phase = iota
	Playing
	Results
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Results:
		return "Results"
	}
	return "Unknown"
}

// LaneTiming is the last judgement shown above a lane.
type LaneTiming struct {
	Last game.Judgement
	At   time.Duration
}

// NeverJudged is far enough in the past that no banner shows at song start.
const NeverJudged = -1000 * time.Millisecond

func defaultLaneTimings() [game.Lanes]LaneTiming {
	var lanes [game.Lanes]LaneTiming
	for i := range lanes {
		lanes[i] = LaneTiming{Last: game.None, At: NeverJudged}
	}
	return lanes
}

type NoteView struct {
	ID     int
	Lane   game.Lane
	Offset float64 // Distance from the top of the track
}

type Banner struct {
	Judgement game.Judgement
	Age       time.Duration
	Visible   bool
}

// Snapshot is a copy of the session after a tick. Nothing in it is shared
// with the session, so it can be handed to another goroutine.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Changed    bool // Phase changed during this tick
	Elapsed    time.Duration
	Difficulty game.Difficulty
	Pending    int
	Quit       bool // Quit key held

	Notes     []NoteView
	Receptors [game.Lanes]bool
	Banners   [game.Lanes]Banner
	Events    []Resolution
	Beats     []int

	Score    float64
	MaxScore float64
	Accuracy float64
	Counts   map[game.Judgement]int

	// Set once the song is over
	Result *score.Result
}
