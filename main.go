package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/hitline/internal/audio"
	"git.lost.host/meutraa/hitline/internal/config"
	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/generator"
	"git.lost.host/meutraa/hitline/internal/input"
	"git.lost.host/meutraa/hitline/internal/render"
	"git.lost.host/meutraa/hitline/internal/score"
	"git.lost.host/meutraa/hitline/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

// openLog sends diagnostics to the log file. The terminal front end owns
// the screen, so without a file they are dropped there.
func openLog(path string, gui bool) (*log.Logger, func(), error) {
	if path == "" {
		if !gui {
			log.SetOutput(io.Discard)
		}
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	log.SetOutput(f)
	return log.New(f, "judge ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if nil != err {
		return err
	}

	judgeLog, closeLog, err := openLog(cfg.LogFile, cfg.GUI)
	if nil != err {
		return err
	}
	defer closeLog()

	gen := generator.NewDefaultGenerator(cfg.BPM, cfg.Speed, cfg.LeadIn, cfg.Seed)
	session := engine.NewSession(cfg.Engine(), gen)
	session.Logger = judgeLog

	p := NewProgram(session, cfg.Engine(), engine.NewMonotonicClock())
	p.Metronome = cfg.Metronome

	scorer := &score.DefaultScorer{}
	if err := scorer.Init(cfg.Database); nil != err {
		log.Println("scores will not be saved:", err)
	} else {
		defer scorer.Deinit()
		p.Scorer = scorer
	}

	if !cfg.Mute {
		sink, err := audio.NewBeepSink()
		if nil != err {
			log.Println(err)
		} else {
			p.Sink = sink
		}
	}

	log.Printf("seed %v, %v beats at %v bpm", cfg.Seed, cfg.Beats, cfg.BPM)
	if cfg.GUI {
		return runWindow(p, cfg.Keys, cfg.Engine())
	}
	return runTerminal(p, cfg)
}

func runTerminal(p *Program, cfg *config.Config) error {
	var provider input.Provider
	var err error
	if cfg.Device != "" {
		provider, err = input.NewDeviceProvider(cfg.Device, cfg.Keys)
	} else {
		provider, err = input.NewKeyboardProvider(cfg.Keys, cfg.Hold)
	}
	if nil != err {
		return err
	}
	defer func() {
		if err := provider.Close(); nil != err {
			log.Println("unable to close input", err)
		}
	}()

	r := render.NewDefaultRenderer(&theme.DefaultTheme{}, cfg.Engine(), cfg.Device != "")
	r.RestartKey = cfg.Keys.Restart
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		r.Deinit()
	}()

	frames := engine.NewGate(time.Duration(float64(time.Second) / cfg.Refresh))
	start := time.Now()
	var loopErr error
	r.RenderLoop(time.Millisecond, func(now time.Time) bool {
		snap, ticked, err := p.Step(provider)
		if nil != err {
			loopErr = err
			return false
		}
		if p.Quit() {
			return false
		}
		if ticked && (frames.Ready(now.Sub(start)) || snap.Changed) {
			r.Draw(snap, p.Best(), p.Plays())
		}
		return true
	})
	return loopErr
}
