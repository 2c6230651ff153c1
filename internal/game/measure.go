package game

import (
	"time"
)

type Measure struct {
	Beat int           // Beat index from the start of the song
	Time time.Duration // When the beat falls, lead-in included
}
