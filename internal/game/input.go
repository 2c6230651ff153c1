package game

import "time"

// Input is a single key press on a lane, relative to song start.
type Input struct {
	Lane    Lane
	HitTime time.Duration
}
