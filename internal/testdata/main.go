// Package testdata holds fixed charts for tests that need exact note
// placement instead of a random chart.
package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/hitline/internal/game"
)

// Speed of every note in the fixed charts. 89 ticks put a note spawned at
// zero exactly on the hit line.
const Speed = 10

const data = `{
	"Difficulty": {"BPM": 100, "Beats": 1, "Speed": 10},
	"Notes": [
		{"Lane": 1, "Speed": 10, "Time": 0},
		{"Lane": 2, "Speed": 10, "Time": 50000000},
		{"Lane": 2, "Speed": 10, "Time": 50000000},
		{"Lane": 4, "Speed": 10, "Time": 200000000}
	],
	"Measures": [{"Beat": 0, "Time": 0}]
}`

func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(data), &chart); nil != err {
		return nil, err
	}
	return game.NewChart(chart.Difficulty, chart.Notes, chart.Measures)
}

// SingleNote is one note in lane at time zero.
func SingleNote(lane game.Lane) (*game.Chart, error) {
	return game.NewChart(game.Difficulty{Beats: 1, Speed: Speed},
		[]*game.Note{{Lane: lane, Speed: Speed}},
		[]*game.Measure{{Beat: 0, Time: 0}})
}

// Generator hands out copies of a fixed chart.
type Generator struct {
	Chart *game.Chart
	Calls int
}

func (g *Generator) Generate(beats int) (*game.Chart, error) {
	g.Calls++
	if nil == g.Chart {
		return game.NewChart(game.Difficulty{Beats: beats}, nil, nil)
	}
	return g.Chart.Clone(), nil
}
