package input

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
	"github.com/eiannone/keyboard"
)

// KeyboardProvider reads keys from the terminal. Terminals only report
// presses, so a lane counts as down for the hold window after its last key
// event. Key repeat extends the window while a key is held, but the first
// repeat comes after the keyboard's repeat delay. A hold window shorter
// than that delay lets a held key fire again on its first repeat.
type KeyboardProvider struct {
	events <-chan keyboard.KeyEvent
	keys   Keymap
	hold   time.Duration
	now    func() time.Time
	close  func() error

	last      [game.Lanes]time.Time
	restartAt time.Time
	quit      bool
}

func NewKeyboardProvider(keys Keymap, hold time.Duration) (*KeyboardProvider, error) {
	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	p := newKeyboardProvider(keyChannel, keys, hold)
	p.close = keyboard.Close
	return p, nil
}

func newKeyboardProvider(keyChannel <-chan keyboard.KeyEvent, keys Keymap, hold time.Duration) *KeyboardProvider {
	return &KeyboardProvider{
		events: keyChannel,
		keys:   keys,
		hold:   hold,
		now:    time.Now,
	}
}

func (p *KeyboardProvider) Poll() State {
	now := p.now()

	// get the key inputs that occured so far
	for i := len(p.events); i > 0; i-- {
		key := <-p.events
		if nil != key.Err {
			continue
		}
		if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
			p.quit = true
			continue
		}
		if lane, ok := p.keys.Lane(key.Rune); ok {
			p.last[lane.Index()] = now
		} else if p.keys.IsRestart(key.Rune) {
			p.restartAt = now
		}
	}

	var s State
	for i, t := range p.last {
		s.Lanes[i] = !t.IsZero() && now.Sub(t) < p.hold
	}
	s.Restart = !p.restartAt.IsZero() && now.Sub(p.restartAt) < p.hold
	s.Quit = p.quit
	return s
}

func (p *KeyboardProvider) Close() error {
	if nil == p.close {
		return nil
	}
	return p.close()
}
