package theme

import (
	"fmt"

	"git.lost.host/meutraa/hitline/internal/game"
)

type DefaultTheme struct {
}

type rgb struct {
	R, G, B uint8
}

func paint(c rgb, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane game.Lane) string {
	if !lane.Valid() {
		return " "
	}
	return paint(laneColors[lane.Index()], noteSym)
}

func (t *DefaultTheme) RenderReceptor(lane game.Lane, held bool) string {
	if !lane.Valid() {
		return " "
	}
	if held {
		return paint(laneColors[lane.Index()], heldSym)
	}
	return receptorSym
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	col, ok := judgementColors[j]
	if !ok {
		return ""
	}
	return paint(col, j.String())
}

func (t *DefaultTheme) RenderHitField(lane game.Lane) string {
	return barSym
}

const (
	noteSym     = "⬤"
	heldSym     = "◉"
	receptorSym = "◯"
	barSym      = "-"
)

var (
	laneColors = [game.Lanes]rgb{
		{236, 30, 0},  // red
		{0, 118, 236}, // blue
		{0, 118, 236}, // blue
		{236, 30, 0},  // red
	}
	judgementColors = map[game.Judgement]rgb{
		game.Perfect: {236, 195, 0},   // yellow
		game.Great:   {0, 236, 128},   // green
		game.Good:    {173, 236, 236}, // light blue
		game.Miss:    {236, 30, 0},    // red
	}
)
