package generator

import "git.lost.host/meutraa/hitline/internal/game"

type Generator interface {
	Generate(beats int) (*game.Chart, error)
}
