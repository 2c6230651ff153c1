package engine

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/score"
)

// Config holds the track geometry and timing of a session. Distances are in
// scroll units, the same units as note speed.
type Config struct {
	Beats          int
	HitLine        float64
	RenderOffset   float64
	OffscreenLimit float64
	Windows        score.Windows
	BannerDuration time.Duration
	FPS            float64
}

func DefaultConfig() Config {
	return Config{
		Beats:          16,
		HitLine:        820,
		RenderOffset:   -70,
		OffscreenLimit: 1050,
		Windows:        score.DefaultWindows,
		BannerDuration: 500 * time.Millisecond,
		FPS:            300,
	}
}

// Offset is where a note is drawn relative to the top of the track.
func (c Config) Offset(position float64) float64 {
	return position + c.RenderOffset
}

// TickPeriod is the minimum time between two simulation ticks.
func (c Config) TickPeriod() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.FPS)
}
