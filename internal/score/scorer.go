package score

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the result of a finished play
	Save(d game.Difficulty, result Result) error

	// Load previous results for charts generated with the same settings
	Load(d game.Difficulty) ([]History, error)

	// Best previous accuracy for charts generated with the same settings
	Best(d game.Difficulty) (History, bool, error)
}

// Result is the outcome of one play through a chart.
type Result struct {
	Tally    Tally
	Accuracy float64
	Inputs   []game.Input
}

type History struct {
	Sum      string
	Seed     int64
	Score    float64
	MaxScore float64
	Accuracy float64
	Counts   map[game.Judgement]int
	Inputs   []game.Input
	PlayedAt time.Time
}
