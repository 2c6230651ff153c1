package render

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/score"
)

type Renderer interface {
	Init() error
	Deinit() error
	RenderLoop(period time.Duration, render func(now time.Time) bool)
	Draw(snap engine.Snapshot, best *score.History, plays int)
}
