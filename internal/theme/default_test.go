package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/hitline/internal/game"
)

func TestRenderJudgement(t *testing.T) {
	var th Theme = &DefaultTheme{}
	for _, j := range game.Judgements {
		out := th.RenderJudgement(j)
		if !strings.Contains(out, j.String()) || !strings.HasSuffix(out, "\033[0m") {
			t.Errorf("%v rendered as %q", j, out)
		}
	}
	if th.RenderJudgement(game.None) != "" {
		t.Error("None rendered")
	}
}

func TestRenderLanes(t *testing.T) {
	th := &DefaultTheme{}
	if th.RenderNote(0) != " " || th.RenderReceptor(5, true) != " " {
		t.Error("invalid lane rendered")
	}
	if th.RenderReceptor(1, false) != receptorSym {
		t.Error("idle receptor colored")
	}
	if !strings.Contains(th.RenderReceptor(1, true), heldSym) {
		t.Error("held receptor missing symbol")
	}
	if !strings.Contains(th.RenderNote(4), noteSym) {
		t.Error("note missing symbol")
	}
}
