package generator

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

const (
	subdivisions = 4
	doubleChance = 0.2
)

var ErrNegativeBeats = errors.New("beat count must not be negative")

// DefaultGenerator places one note on every sixteenth of each beat in a
// random lane, with an occasional second note on the same sixteenth.
type DefaultGenerator struct {
	BPM    float64
	Speed  float64
	LeadIn time.Duration
	Seed   int64

	rand *rand.Rand
}

func NewDefaultGenerator(bpm, speed float64, leadIn time.Duration, seed int64) *DefaultGenerator {
	return &DefaultGenerator{
		BPM:    bpm,
		Speed:  speed,
		LeadIn: leadIn,
		Seed:   seed,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// lane picks a lane uniformly.
func lane(r *rand.Rand) game.Lane {
	return game.Lane(r.Intn(game.Lanes) + 1)
}

// doubleLane picks the lane of the extra note on a sixteenth. The divisor is
// in [1,4], so the result is lane 1 unless the divisor rounds to 4, which
// gives lane 3. It ignores the primary lane and can land on it.
func doubleLane(r *rand.Rand) game.Lane {
	divisor := int64(math.Round(r.Float64()*3 + 1))
	return game.Lane(6%divisor + 1)
}

// Generate produces a new chart each call. Every chart gets its own seed
// drawn from the generator, recorded in the chart's difficulty.
func (g *DefaultGenerator) Generate(beats int) (*game.Chart, error) {
	if nil == g.rand {
		g.rand = rand.New(rand.NewSource(g.Seed))
	}
	return g.Regenerate(beats, g.rand.Int63())
}

// Regenerate rebuilds the chart produced from seed.
func (g *DefaultGenerator) Regenerate(beats int, seed int64) (*game.Chart, error) {
	if beats < 0 {
		return nil, ErrNegativeBeats
	}
	r := rand.New(rand.NewSource(seed))

	difficulty := game.Difficulty{
		BPM:    g.BPM,
		Beats:  beats,
		Speed:  g.Speed,
		LeadIn: g.LeadIn,
		Seed:   seed,
	}
	beatLength := difficulty.BeatLength()
	sixteenthLength := difficulty.SixteenthLength()

	notes := make([]*game.Note, 0, beats*subdivisions)
	measures := make([]*game.Measure, 0, beats)
	for b := 0; b < beats; b++ {
		start := time.Duration(b)*beatLength + g.LeadIn
		measures = append(measures, &game.Measure{Beat: b, Time: start})

		for s := 1; s <= subdivisions; s++ {
			at := start + time.Duration(s)*sixteenthLength
			notes = append(notes, &game.Note{Lane: lane(r), Speed: g.Speed, Time: at})

			if r.Float64() < doubleChance {
				notes = append(notes, &game.Note{Lane: doubleLane(r), Speed: g.Speed, Time: at})
			}
		}
	}

	return game.NewChart(difficulty, notes, measures)
}
