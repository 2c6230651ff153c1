package game

type Judgement int

const (
	None Judgement = iota
	Miss
	Good
	Great
	Perfect
)

// Judgements lists the categories a note can resolve to, best first.
var Judgements = [...]Judgement{Perfect, Great, Good, Miss}

func (j Judgement) String() string {
	switch j {
	case Miss:
		return "Miss"
	case Good:
		return "Good"
	case Great:
		return "Great"
	case Perfect:
		return "Perfect"
	}
	return "None"
}
