package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/hitline/internal/engine"
	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/score"
	"git.lost.host/meutraa/hitline/internal/theme"
	"golang.org/x/term"
)

// DefaultRenderer draws snapshots to an ANSI terminal.
type DefaultRenderer struct {
	Theme      theme.Theme
	Spacing    int
	RestartKey rune

	config        engine.Config
	out           io.Writer
	fd            int
	raw           bool
	buffer        strings.Builder
	restoreState  *term.State
	rows, columns int
}

// NewDefaultRenderer draws to stdout. With raw set, Init also puts the
// terminal in raw mode, for input that does not come from the terminal.
func NewDefaultRenderer(th theme.Theme, config engine.Config, raw bool) *DefaultRenderer {
	return &DefaultRenderer{
		Theme:      th,
		Spacing:    6,
		RestartKey: 'r',
		config:     config,
		out:        os.Stdout,
		fd:         int(os.Stdout.Fd()),
		raw:        raw,
		rows:       24,
		columns:    80,
	}
}

func (r *DefaultRenderer) Init() error {
	if r.raw {
		state, err := term.MakeRaw(int(os.Stdin.Fd()))
		if nil != err {
			return fmt.Errorf("unable to make terminal raw: %w", err)
		}
		r.restoreState = state
	}
	if err := r.resize(); nil != err {
		return err
	}

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdin.Fd()), r.restoreState)
}

func (r *DefaultRenderer) resize() error {
	if r.fd < 0 {
		return nil
	}
	columns, rows, err := term.GetSize(r.fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	r.rows, r.columns = rows, columns
	return nil
}

func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now)
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Draw(snap engine.Snapshot, best *score.History, plays int) {
	// A failed size query keeps the previous layout.
	_ = r.resize()

	r.buffer.WriteString("\033[H\033[2J")
	if snap.Phase == engine.Results {
		r.drawResults(snap, best, plays)
	} else {
		r.drawGame(snap)
	}
}

// trackRow maps a track offset to a terminal row. The track spans from the
// top row down to the off-screen limit on the second to last row.
func (r *DefaultRenderer) trackRow(offset float64) int {
	height := r.rows - 2
	if height < 1 || r.config.OffscreenLimit <= 0 {
		return 1
	}
	return 1 + int(offset/r.config.OffscreenLimit*float64(height))
}

func (r *DefaultRenderer) laneColumn(lane game.Lane) int {
	mc := r.columns >> 1
	return mc + (2*lane.Index()-3)*r.Spacing
}

func (r *DefaultRenderer) drawGame(snap engine.Snapshot) {
	hitRow := r.trackRow(r.config.HitLine)

	for i := 0; i < game.Lanes; i++ {
		lane := game.Lane(i + 1)
		col := r.laneColumn(lane)
		r.Fill(hitRow, col, r.Theme.RenderReceptor(lane, snap.Receptors[i]))
		r.Fill(hitRow+1, col, r.Theme.RenderHitField(lane))

		if b := snap.Banners[i]; b.Visible {
			r.Fill(hitRow-2, col-3, r.Theme.RenderJudgement(b.Judgement))
		}
	}

	for _, n := range snap.Notes {
		row := r.trackRow(n.Offset)
		if row < 1 || row >= r.rows || row == hitRow {
			continue
		}
		r.Fill(row, r.laneColumn(n.Lane), r.Theme.RenderNote(n.Lane))
	}

	sideCol := r.laneColumn(1) - 30
	if sideCol < 2 {
		sideCol = 2
	}
	r.Fill(2, sideCol, fmt.Sprintf("      Score:  %6v", snap.Score))
	r.Fill(3, sideCol, fmt.Sprintf("   Accuracy:  %6.2f%%", snap.Accuracy))
	r.Fill(4, sideCol, fmt.Sprintf("    Pending:  %6v", snap.Pending+len(snap.Notes)))
	for i, j := range game.Judgements {
		r.Fill(6+i, sideCol, fmt.Sprintf("%11v:  %6v", j, snap.Counts[j]))
	}
}

func (r *DefaultRenderer) drawResults(snap engine.Snapshot, best *score.History, plays int) {
	res := snap.Result
	if nil == res {
		return
	}
	col := r.columns/2 - 12
	if col < 2 {
		col = 2
	}
	r.Fill(3, col, fmt.Sprintf("Score: %v / %v", res.Tally.Score, res.Tally.MaxScore))
	r.Fill(4, col, fmt.Sprintf("Accuracy: %.2f%%", res.Accuracy))
	for i, j := range game.Judgements {
		r.Fill(6+i, col, fmt.Sprintf("%s  %v", r.Theme.RenderJudgement(j), res.Tally.Counts[j]))
	}
	if nil != best {
		r.Fill(11, col, fmt.Sprintf("Best: %.2f%% (%s)", best.Accuracy, best.PlayedAt.Format("2006-01-02")))
	}
	if plays > 0 {
		r.Fill(12, col, fmt.Sprintf("Plays: %d", plays))
	}
	r.Fill(13, col, fmt.Sprintf("Press '%c' to play again!", r.RestartKey))
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() {
	if r.buffer.Len() == 0 {
		return
	}
	io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
}
