package game

import (
	"errors"
	"time"
)

// Lanes is the number of playable columns.
const Lanes = 4

var ErrLaneOutOfRange = errors.New("lane out of range")

// Lane is a 1-based column number.
type Lane int

func (l Lane) Valid() bool {
	return l >= 1 && l <= Lanes
}

// Index returns the 0-based column, for indexing per-lane arrays.
func (l Lane) Index() int {
	return int(l) - 1
}

type Note struct {
	ID    int           // Stable position in the chart
	Lane  Lane          // The chart column
	Speed float64       // Units scrolled per tick
	Time  time.Duration // When the note is spawned onto the track

	// This is state
	Position float64 // Distance scrolled since spawn
}

// Advance scrolls the note one tick and returns the new position.
func (n *Note) Advance() float64 {
	n.Position += n.Speed
	return n.Position
}
