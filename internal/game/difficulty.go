package game

import "time"

// Difficulty holds the parameters a chart was generated from.
type Difficulty struct {
	BPM    float64
	Beats  int
	Speed  float64
	LeadIn time.Duration
	Seed   int64
}

func (d Difficulty) BeatLength() time.Duration {
	if d.BPM <= 0 {
		return 0
	}
	return time.Duration(float64(time.Minute) / d.BPM)
}

func (d Difficulty) SixteenthLength() time.Duration {
	return d.BeatLength() / 4
}
