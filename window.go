package main

import (
	"fmt"
	"image/color"
	"strings"

	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowSize   = 1000
	laneSpacing  = 140
	laneMargin   = 100
	noteRadius   = 50
	bannerOffset = 60
)

var judgementColors = map[game.Judgement]color.RGBA{
	game.Perfect: {236, 195, 0, 255},
	game.Great:   {0, 236, 128, 255},
	game.Good:    {173, 236, 236, 255},
	game.Miss:    {236, 30, 0, 255},
}

var keyNames = map[rune]string{
	';': "Semicolon",
	',': "Comma",
	'.': "Period",
	'/': "Slash",
	' ': "Space",
}

func ebitenKey(r rune) (ebiten.Key, error) {
	name, ok := keyNames[r]
	if !ok {
		name = strings.ToUpper(string(r))
		if r >= '0' && r <= '9' {
			name = "Digit" + name
		}
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); nil != err {
		return k, fmt.Errorf("unable to map key %q: %w", r, err)
	}
	return k, nil
}

type windowInput struct {
	lanes   [game.Lanes]ebiten.Key
	restart ebiten.Key
}

func newWindowInput(keys input.Keymap) (*windowInput, error) {
	in := &windowInput{}
	for i, r := range keys.Lanes {
		k, err := ebitenKey(r)
		if nil != err {
			return nil, err
		}
		in.lanes[i] = k
	}
	k, err := ebitenKey(keys.Restart)
	if nil != err {
		return nil, err
	}
	in.restart = k
	return in, nil
}

func (in *windowInput) Poll() input.State {
	var s input.State
	for i, k := range in.lanes {
		s.Lanes[i] = ebiten.IsKeyPressed(k)
	}
	s.Restart = ebiten.IsKeyPressed(in.restart)
	s.Quit = ebiten.IsKeyPressed(ebiten.KeyEscape)
	return s
}

func (in *windowInput) Close() error {
	return nil
}

// window plays in a desktop window, laid out like the track geometry so a
// note's offset is its pixel row. ebiten calls Update at the tick rate,
// several times in a row per frame, so every call is a tick.
type window struct {
	program    *Program
	keys       input.Provider
	config     engine.Config
	restartKey rune
	snap       engine.Snapshot
}

func (w *window) Update() error {
	snap, err := w.program.StepNow(w.keys)
	if nil != err {
		return err
	}
	if w.program.Quit() {
		return ebiten.Termination
	}
	w.snap = snap
	return nil
}

func laneX(lane game.Lane) float32 {
	return float32(int(lane)*laneSpacing + laneMargin + noteRadius)
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if w.snap.Phase == engine.Results {
		w.drawResults(screen)
		return
	}

	receptorY := float32(w.config.HitLine + noteRadius)
	for i := 0; i < game.Lanes; i++ {
		lane := game.Lane(i + 1)
		if w.snap.Receptors[i] {
			vector.DrawFilledCircle(screen, laneX(lane), receptorY, noteRadius, color.White, true)
		} else {
			vector.StrokeCircle(screen, laneX(lane), receptorY, noteRadius, 8, color.White, true)
		}
		if b := w.snap.Banners[i]; b.Visible {
			ebitenutil.DebugPrintAt(screen, b.Judgement.String(), int(laneX(lane))-20, int(w.config.HitLine)-bannerOffset)
		}
	}

	for _, n := range w.snap.Notes {
		vector.DrawFilledCircle(screen, laneX(n.Lane), float32(n.Offset+noteRadius), noteRadius, color.RGBA{200, 200, 200, 255}, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %v", w.snap.Score), 790, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Accuracy: %.2f%%", w.snap.Accuracy), 790, 50)
}

func (w *window) drawResults(screen *ebiten.Image) {
	res := w.snap.Result
	if nil == res {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %v", res.Tally.Score), 200, 250)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Accuracy: %.2f%%", res.Accuracy), 200, 350)
	for i, j := range game.Judgements {
		y := 500 + 50*i
		ebitenutil.DrawRect(screen, 300, float64(y), 200, 33, judgementColors[j])
		ebitenutil.DebugPrintAt(screen, j.String(), 310, y+10)
		ebitenutil.DebugPrintAt(screen, fmt.Sprint(res.Tally.Counts[j]), 550, y+10)
	}
	if best := w.program.Best(); nil != best {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %.2f%%", best.Accuracy), 200, 400)
	}
	if plays := w.program.Plays(); plays > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Plays: %d", plays), 200, 430)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Press '%c' to play again!", w.restartKey), 300, 850)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize, windowSize
}

func runWindow(p *Program, keys input.Keymap, config engine.Config) error {
	in, err := newWindowInput(keys)
	if nil != err {
		return err
	}
	w := &window{program: p, keys: in, config: config, restartKey: keys.Restart}

	ebiten.SetWindowSize(windowSize*3/4, windowSize*3/4)
	ebiten.SetWindowTitle("hitline")
	ebiten.SetTPS(int(config.FPS))
	if err := ebiten.RunGame(w); nil != err && err != ebiten.Termination {
		return err
	}
	return nil
}
