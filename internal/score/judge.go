package score

import (
	"math"

	"git.lost.host/meutraa/hitline/internal/game"
)

// MaxPerNote is what every resolved note adds to the maximum score.
const MaxPerNote = 4

// Window is the exclusive upper bound of |delta| for a judgement.
type Window struct {
	Judgement game.Judgement
	Distance  float64
	Points    float64
}

// Windows are nested and ordered narrowest first.
type Windows []Window

// DefaultWindows are measured in scroll units around the hit line.
var DefaultWindows = Windows{
	{Judgement: game.Perfect, Distance: 36, Points: 4},
	{Judgement: game.Great, Distance: 72, Points: 2},
	{Judgement: game.Good, Distance: 144, Points: 1},
	{Judgement: game.Miss, Distance: 288, Points: 0},
}

// Classify maps a signed distance from the hit line to a judgement. A delta
// outside the widest window is not classified, ok is false.
func (w Windows) Classify(delta float64) (j game.Judgement, ok bool) {
	d := math.Abs(delta)
	for _, window := range w {
		if d < window.Distance {
			return window.Judgement, true
		}
	}
	return game.None, false
}

// Points returns the score awarded for a judgement.
func (w Windows) Points(j game.Judgement) float64 {
	for _, window := range w {
		if window.Judgement == j {
			return window.Points
		}
	}
	return 0
}
