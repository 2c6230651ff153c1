package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotInitialised = errors.New("scorer is not initialised")

type DefaultScorer struct {
	db *sql.DB
}

type InputsCompact struct {
	Lane  game.Lane
	Times []time.Duration
}

// compactInputs groups presses by lane, one entry per lane in lane order.
func compactInputs(inputs []game.Input) []InputsCompact {
	ins := make([]InputsCompact, game.Lanes)
	for i := range ins {
		ins[i].Lane = game.Lane(i + 1)
		ins[i].Times = []time.Duration{}
	}
	for _, in := range inputs {
		if !in.Lane.Valid() {
			continue
		}
		ins[in.Lane.Index()].Times = append(ins[in.Lane.Index()].Times, in.HitTime)
	}
	return ins
}

func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, in := range inputs {
		for _, t := range in.Times {
			ins = append(ins, game.Input{Lane: in.Lane, HitTime: t})
		}
	}
	return ins
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists scores
	  (
		  id integer not null primary key,
		  sum text,
		  seed integer,
		  score real,
		  max_score real,
		  accuracy real,
		  perfect integer,
		  great integer,
		  good integer,
		  miss integer,
		  inputs blob,
		  played_at integer
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create scores table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// hashDifficulty identifies the settings a chart was generated with, so
// scores from different random charts of the same shape compare.
func (s *DefaultScorer) hashDifficulty(d game.Difficulty) string {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(d.BPM))
	binary.LittleEndian.PutUint64(buf[8:], uint64(d.Beats))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(d.Speed))
	binary.LittleEndian.PutUint64(buf[24:], uint64(d.LeadIn))
	sum := sha256.Sum256(buf)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Save(d game.Difficulty, result Result) error {
	if nil == s.db {
		return ErrNotInitialised
	}
	data, err := json.Marshal(compactInputs(result.Inputs))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	counts := result.Tally.Counts
	_, err = s.db.Exec(
		"insert into scores(sum, seed, score, max_score, accuracy, perfect, great, good, miss, inputs, played_at) values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		s.hashDifficulty(d), d.Seed,
		result.Tally.Score, result.Tally.MaxScore, result.Accuracy,
		counts[game.Perfect], counts[game.Great], counts[game.Good], counts[game.Miss],
		data, time.Now().Unix(),
	)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

const historyColumns = "sum, seed, score, max_score, accuracy, perfect, great, good, miss, inputs, played_at"

func scanHistory(rows *sql.Rows) (History, error) {
	var h History
	var perfect, great, good, miss int
	var inputs []byte
	var playedAt int64
	if err := rows.Scan(&h.Sum, &h.Seed, &h.Score, &h.MaxScore, &h.Accuracy,
		&perfect, &great, &good, &miss, &inputs, &playedAt); nil != err {
		return h, err
	}
	h.Counts = map[game.Judgement]int{
		game.Perfect: perfect,
		game.Great:   great,
		game.Good:    good,
		game.Miss:    miss,
	}
	h.PlayedAt = time.Unix(playedAt, 0)

	var ns []InputsCompact
	if err := json.Unmarshal(inputs, &ns); nil != err {
		log.Println("unable to unmarshal input history", err)
	} else {
		h.Inputs = uncompactInputs(ns)
	}
	return h, nil
}

func (s *DefaultScorer) Load(d game.Difficulty) ([]History, error) {
	if nil == s.db {
		return nil, ErrNotInitialised
	}
	histories := []History{}
	rows, err := s.db.Query("select "+historyColumns+" from scores where sum = ? order by id", s.hashDifficulty(d))
	if nil != err {
		return histories, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		h, err := scanHistory(rows)
		if nil != err {
			log.Println("unable to read score row", err)
			continue
		}
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

func (s *DefaultScorer) Best(d game.Difficulty) (History, bool, error) {
	if nil == s.db {
		return History{}, false, ErrNotInitialised
	}
	rows, err := s.db.Query("select "+historyColumns+" from scores where sum = ? order by accuracy desc, id limit 1", s.hashDifficulty(d))
	if nil != err {
		return History{}, false, fmt.Errorf("unable to load best score: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return History{}, false, rows.Err()
	}
	h, err := scanHistory(rows)
	if nil != err {
		return History{}, false, fmt.Errorf("unable to read best score: %w", err)
	}
	return h, true, nil
}
