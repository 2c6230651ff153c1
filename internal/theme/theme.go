package theme

import "git.lost.host/meutraa/hitline/internal/game"

type Theme interface {
	RenderNote(lane game.Lane) string
	RenderReceptor(lane game.Lane, held bool) string
	RenderJudgement(j game.Judgement) string
	RenderHitField(lane game.Lane) string
}
