package input

import "git.lost.host/meutraa/hitline/internal/game"

// State is the raw key state observed at one instant.
type State struct {
	Lanes   [game.Lanes]bool
	Restart bool
	Quit    bool
}

// Provider reports which keys are down. Edge detection is left to Sampler.
type Provider interface {
	Poll() State
	Close() error
}

// Static is a Provider that always reports the same state.
type Static struct {
	State State
}

func (s *Static) Poll() State {
	return s.State
}

func (s *Static) Close() error {
	return nil
}
