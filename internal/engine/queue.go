package engine

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

// Queue holds notes that have not spawned yet, ordered by spawn time.
type Queue struct {
	notes []*game.Note
	next  int
}

// NewQueue takes notes already sorted by time, as charts are.
func NewQueue(notes []*game.Note) Queue {
	return Queue{notes: notes}
}

// Release removes and returns every note due at elapsed.
func (q *Queue) Release(elapsed time.Duration) []*game.Note {
	start := q.next
	for q.next < len(q.notes) && q.notes[q.next].Time <= elapsed {
		q.next++
	}
	released := q.notes[start:q.next:q.next]
	if q.next == len(q.notes) {
		q.notes, q.next = nil, 0
	}
	return released
}

func (q *Queue) Len() int {
	return len(q.notes) - q.next
}
