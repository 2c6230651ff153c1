package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/input"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	BPM       float64
	Beats     int
	FPS       float64
	Speed     float64
	LeadIn    time.Duration
	Seed      int64
	Keys      input.Keymap
	Hold      time.Duration
	Device    string
	Database  string
	GUI       bool
	Mute      bool
	Metronome bool
	LogFile   string
	Refresh   float64
}

// Load parses command line arguments, without the program name.
func Load(args []string) (*Config, error) {
	app := kingpin.New("hitline", "Four key scrolling rhythm game.")
	app.Version(Version)
	app.HelpFlag.Short('h')

	var (
		bpm       = app.Flag("bpm", "Tempo of the generated chart").Default("100").Short('b').Float64()
		beats     = app.Flag("beats", "Length of the generated chart in beats").Default("16").Short('n').Int()
		fps       = app.Flag("fps", "Simulation ticks per second").Default("300").Short('f').Float64()
		speed     = app.Flag("speed", "Scroll distance per tick").Default("6").Short('s').Float64()
		leadIn    = app.Flag("lead-in", "Time before the first beat").Default("500ms").Duration()
		seed      = app.Flag("seed", "Chart seed, 0 picks one from the clock").Default("0").Int64()
		keys      = app.Flag("keys", "Keys for the four lanes, left to right").Default("dfjk").Short('k').String()
		restart   = app.Flag("restart-key", "Key that starts a new chart from the results").Default("r").String()
		hold      = app.Flag("hold", "How long a terminal key press counts as held").Default("90ms").Duration()
		device    = app.Flag("device", "Read keys from a Linux event device instead of the terminal").ExistingFile()
		database  = app.Flag("db", "Score database").Default("./scores.db").String()
		gui       = app.Flag("gui", "Play in a window instead of the terminal").Bool()
		mute      = app.Flag("mute", "Disable hit sounds").Bool()
		metronome = app.Flag("metronome", "Click on every beat").Bool()
		logFile   = app.Flag("log-file", "Write judgements and diagnostics to this file").String()
		refresh   = app.Flag("refresh-rate", "Terminal redraws per second").Default("60").Float64()
	)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	c := &Config{
		BPM:       *bpm,
		Beats:     *beats,
		FPS:       *fps,
		Speed:     *speed,
		LeadIn:    *leadIn,
		Seed:      *seed,
		Hold:      *hold,
		Device:    *device,
		Database:  *database,
		GUI:       *gui,
		Mute:      *mute,
		Metronome: *metronome,
		LogFile:   *logFile,
		Refresh:   *refresh,
	}
	if err := c.validate(*keys, *restart); nil != err {
		return nil, err
	}
	if 0 == c.Seed {
		c.Seed = time.Now().UnixNano()
	}
	return c, nil
}

func (c *Config) validate(keys, restart string) error {
	if utf8.RuneCountInString(restart) != 1 {
		return fmt.Errorf("restart key must be a single key, got %q", restart)
	}
	r, _ := utf8.DecodeRuneInString(restart)
	keymap, err := input.NewKeymap([]rune(keys), r)
	if nil != err {
		return err
	}
	c.Keys = keymap
	if c.BPM <= 0 {
		return fmt.Errorf("bpm must be positive, got %v", c.BPM)
	}
	if c.Beats < 0 {
		return fmt.Errorf("beats must not be negative, got %d", c.Beats)
	}
	if c.FPS <= 0 || c.Refresh <= 0 {
		return fmt.Errorf("tick and refresh rates must be positive")
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	}
	return nil
}

// Engine returns the session settings. Geometry and windows are fixed.
func (c *Config) Engine() engine.Config {
	e := engine.DefaultConfig()
	e.Beats = c.Beats
	e.FPS = c.FPS
	return e
}
