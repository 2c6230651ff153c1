package game

import (
	"fmt"
	"sort"
)

type Chart struct {
	Notes      []*Note
	Measures   []*Measure
	NoteCount  int64
	Difficulty Difficulty
}

// NewChart validates notes and orders them by spawn time. Notes sharing a
// time keep their relative order. IDs are reassigned to the final order.
func NewChart(difficulty Difficulty, notes []*Note, measures []*Measure) (*Chart, error) {
	for _, n := range notes {
		if !n.Lane.Valid() {
			return nil, fmt.Errorf("note at %v: %w: %d", n.Time, ErrLaneOutOfRange, n.Lane)
		}
		if n.Time < 0 {
			return nil, fmt.Errorf("note at %v: negative spawn time", n.Time)
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	for i, n := range notes {
		n.ID = i
	}
	return &Chart{
		Notes:      notes,
		Measures:   measures,
		NoteCount:  int64(len(notes)),
		Difficulty: difficulty,
	}, nil
}

// Clone returns a chart whose notes can be mutated without touching c.
func (c *Chart) Clone() *Chart {
	nn := make([]*Note, len(c.Notes))
	for i, n := range c.Notes {
		nnn := *n
		nn[i] = &nnn
	}
	return &Chart{
		Notes:      nn,
		Measures:   c.Measures,
		NoteCount:  c.NoteCount,
		Difficulty: c.Difficulty,
	}
}
