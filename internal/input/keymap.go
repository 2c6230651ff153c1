package input

import (
	"fmt"
	"unicode"

	"git.lost.host/meutraa/hitline/internal/game"
)

// Keymap binds one key to each lane plus a restart key. Keys are stored
// lower case and matched regardless of case.
type Keymap struct {
	Lanes   [game.Lanes]rune
	Restart rune
}

func NewKeymap(keys []rune, restart rune) (Keymap, error) {
	var k Keymap
	if len(keys) != game.Lanes {
		return k, fmt.Errorf("expected %d lane keys, got %q", game.Lanes, string(keys))
	}
	for i, r := range keys {
		r = unicode.ToLower(r)
		if _, ok := k.Lane(r); ok {
			return k, fmt.Errorf("key %q bound to two lanes", r)
		}
		k.Lanes[i] = r
	}
	k.Restart = unicode.ToLower(restart)
	if _, ok := k.Lane(k.Restart); ok {
		return k, fmt.Errorf("restart key %q is also a lane key", k.Restart)
	}
	return k, nil
}

// Lane maps a key to its lane, or returns false for other keys.
func (k Keymap) Lane(r rune) (game.Lane, bool) {
	r = unicode.ToLower(r)
	for i, key := range k.Lanes {
		if key != 0 && key == r {
			return game.Lane(i + 1), true
		}
	}
	return 0, false
}

func (k Keymap) IsRestart(r rune) bool {
	return k.Restart != 0 && unicode.ToLower(r) == k.Restart
}

func (k Keymap) String() string {
	return string(k.Lanes[:])
}
