package score

import (
	"math"

	"git.lost.host/meutraa/hitline/internal/game"
)

// Tally accumulates the score of a single play.
type Tally struct {
	Score    float64
	MaxScore float64
	Counts   map[game.Judgement]int
}

func NewTally() Tally {
	return Tally{Counts: make(map[game.Judgement]int, len(game.Judgements))}
}

// Add records one resolved note.
func (t *Tally) Add(j game.Judgement, points float64) {
	if nil == t.Counts {
		t.Counts = make(map[game.Judgement]int, len(game.Judgements))
	}
	t.Score += points
	t.MaxScore += MaxPerNote
	t.Counts[j]++
}

// Resolved is the number of notes judged so far.
func (t *Tally) Resolved() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}

// Accuracy is the score as a percentage of the maximum, rounded to two
// decimals. It is 0 until a note has been resolved.
func (t *Tally) Accuracy() float64 {
	return Accuracy(t.Score, t.MaxScore)
}

func Accuracy(score, maxScore float64) float64 {
	if maxScore <= 0 {
		return 0
	}
	return math.Round(score/maxScore*10000) / 100
}

// Copy returns a tally that shares nothing with t.
func (t *Tally) Copy() Tally {
	c := Tally{Score: t.Score, MaxScore: t.MaxScore, Counts: make(map[game.Judgement]int, len(t.Counts))}
	for j, n := range t.Counts {
		c.Counts[j] = n
	}
	return c
}
