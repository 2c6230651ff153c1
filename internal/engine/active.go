package engine

import (
	"sort"

	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/input"
)

// Resolution is a note leaving the track with its judgement.
type Resolution struct {
	Note      game.Note
	Judgement game.Judgement
	Delta     float64 // Distance past the hit line, negative when early
	Timeout   bool    // Scrolled off the track without a press
}

// ActiveSet holds the notes on the track, per lane in spawn order.
type ActiveSet struct {
	lanes [game.Lanes][]*game.Note
}

func (a *ActiveSet) Add(n *game.Note) {
	i := n.Lane.Index()
	notes := a.lanes[i]
	// Notes nearly always arrive in order, insert from the back.
	at := len(notes)
	for at > 0 && notes[at-1].ID > n.ID {
		at--
	}
	notes = append(notes, nil)
	copy(notes[at+1:], notes[at:])
	notes[at] = n
	a.lanes[i] = notes
}

func (a *ActiveSet) Len() int {
	n := 0
	for _, notes := range a.lanes {
		n += len(notes)
	}
	return n
}

// Lane returns the notes of one lane, earliest first.
func (a *ActiveSet) Lane(lane game.Lane) []*game.Note {
	if !lane.Valid() {
		return nil
	}
	return a.lanes[lane.Index()]
}

func (a *ActiveSet) Clear() {
	a.lanes = [game.Lanes][]*game.Note{}
}

// Step scrolls every note one tick and resolves the notes that were pressed
// or scrolled off. A press is offered to the earliest note of its lane only
// and resolves it when the delta falls inside a judgement window.
func (a *ActiveSet) Step(c Config, pressed input.Edges) []Resolution {
	var resolved []Resolution
	for i, notes := range a.lanes {
		press := pressed[i]
		kept := notes[:0]
		for _, n := range notes {
			delta := c.Offset(n.Advance()) - c.HitLine

			if press {
				press = false
				if j, ok := c.Windows.Classify(delta); ok {
					resolved = append(resolved, Resolution{Note: *n, Judgement: j, Delta: delta})
					continue
				}
			}

			if c.Offset(n.Position) > c.OffscreenLimit {
				resolved = append(resolved, Resolution{Note: *n, Judgement: game.Miss, Delta: delta, Timeout: true})
				continue
			}
			kept = append(kept, n)
		}
		for j := len(kept); j < len(notes); j++ {
			notes[j] = nil
		}
		a.lanes[i] = kept
	}
	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Note.ID < resolved[j].Note.ID
	})
	return resolved
}
