package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"syscall"

	"git.lost.host/meutraa/hitline/internal/game"
)

// From linux/input-event-codes.h
const (
	evKey  = 0x01
	keyEsc = 1
)

var keyCodes = map[rune]uint16{
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38, ';': 39,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50, ' ': 57,
}

var ErrUnknownKey = errors.New("key has no device code")

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// DeviceProvider reads a Linux event device, which reports real key
// releases. Events are read on their own goroutine.
type DeviceProvider struct {
	file    io.Closer
	lanes   map[uint16]game.Lane
	restart uint16

	mu    sync.Mutex
	state State
}

func NewDeviceProvider(path string, keys Keymap) (*DeviceProvider, error) {
	p, err := newDeviceProvider(keys)
	if nil != err {
		return nil, err
	}
	file, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open input device: %w", err)
	}
	p.file = file
	go p.read(file)
	return p, nil
}

func newDeviceProvider(keys Keymap) (*DeviceProvider, error) {
	p := &DeviceProvider{lanes: make(map[uint16]game.Lane, game.Lanes)}
	restart := false
	for r, code := range keyCodes {
		if lane, ok := keys.Lane(r); ok {
			p.lanes[code] = lane
		} else if keys.IsRestart(r) {
			p.restart = code
			restart = true
		}
	}
	if len(p.lanes) != game.Lanes || !restart {
		return nil, fmt.Errorf("%w: lanes %q restart %q", ErrUnknownKey, keys.String(), keys.Restart)
	}
	return p, nil
}

func (p *DeviceProvider) read(r io.Reader) {
	var ev keyEvent
	for {
		err := binary.Read(r, binary.LittleEndian, &ev)
		if nil != err {
			if err != io.EOF {
				log.Println(err, "unable to read keyboard input")
			}
			return
		}
		p.apply(ev)
	}
}

func (p *DeviceProvider) apply(ev keyEvent) {
	// Value 2 is auto-repeat, the key stays down.
	if ev.Type != evKey || ev.Value == 2 {
		return
	}
	down := ev.Value == 1

	p.mu.Lock()
	defer p.mu.Unlock()
	if lane, ok := p.lanes[ev.Code]; ok {
		p.state.Lanes[lane.Index()] = down
	} else if ev.Code == p.restart {
		p.state.Restart = down
	} else if ev.Code == keyEsc && down {
		p.state.Quit = true
	}
}

func (p *DeviceProvider) Poll() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *DeviceProvider) Close() error {
	if nil == p.file {
		return nil
	}
	return p.file.Close()
}
