package input

import "git.lost.host/meutraa/hitline/internal/game"

// Edges marks the lanes whose key went down since the previous sample.
type Edges [game.Lanes]bool

// Sampler turns raw key state into press edges. Holding a key fires once,
// releasing it makes the lane eligible again.
type Sampler struct {
	previous State
	current  State
	pressed  Edges
	restart  bool
}

// Sample records a new raw read and returns the presses it contains.
func (s *Sampler) Sample(raw State) Edges {
	s.current = raw
	for i := range raw.Lanes {
		s.pressed[i] = raw.Lanes[i] && !s.previous.Lanes[i]
	}
	s.restart = raw.Restart && !s.previous.Restart
	s.previous = raw
	return s.pressed
}

// Pressed reports whether the lane went down in the last sample. It can be
// asked any number of times until the next Sample.
func (s *Sampler) Pressed(lane game.Lane) bool {
	if !lane.Valid() {
		return false
	}
	return s.pressed[lane.Index()]
}

// Receptors returns the held state of every lane.
func (s *Sampler) Receptors() [game.Lanes]bool {
	return s.current.Lanes
}

func (s *Sampler) Restart() bool {
	return s.restart
}

// Quit reports whether the quit key was down in the last sample. It is a
// level, not an edge.
func (s *Sampler) Quit() bool {
	return s.current.Quit
}
