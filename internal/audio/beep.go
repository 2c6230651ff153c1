package audio

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var hitPitch = map[game.Judgement]float64{
	game.Perfect: 1760,
	game.Great:   1320,
	game.Good:    880,
}

// BeepSink synthesises short clicks on the speaker.
type BeepSink struct {
	Volume float64
}

func NewBeepSink() (*BeepSink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/60)); nil != err {
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &BeepSink{Volume: 0.3}, nil
}

func (s *BeepSink) Hit(j game.Judgement) {
	speaker.Play(click(sampleRate, hitPitch[j], 40*time.Millisecond, s.Volume))
}

func (s *BeepSink) Miss() {
	speaker.Play(click(sampleRate, 110, 80*time.Millisecond, s.Volume))
}

func (s *BeepSink) Beat(beat int) {
	pitch := 660.0
	if beat%4 == 0 {
		pitch = 990
	}
	speaker.Play(click(sampleRate, pitch, 25*time.Millisecond, s.Volume/2))
}

// click is a sine burst with a linear decay.
func click(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	n := sr.N(d)
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		for k := range samples {
			if i >= n {
				return k, true
			}
			t := float64(i) / float64(sr)
			env := 1 - float64(i)/float64(n)
			v := volume * env * math.Sin(2*math.Pi*freq*t)
			samples[k][0], samples[k][1] = v, v
			i++
		}
		return len(samples), true
	})
}
