package deck

import (
	"github.com/youruser/cluedeck/internal/cards"
)

// Deck is a named, ordered run of cards. Record i goes to slot i.
type Deck struct {
	Name    string         `json:"name"`
	Records []cards.Record `json:"records"`
}

// LabelMode selects what the text region of an answer-page card shows.
type LabelMode int

const (
	// LabelClue repeats the clue and stamps the answer in the answer box.
	LabelClue LabelMode = iota
	// LabelAnswer prints the answer in the text region and stamps nothing.
	LabelAnswer
)

// ParseLabelMode maps "clue" and "answer" to a LabelMode. Anything else is
// LabelClue.
func ParseLabelMode(s string) LabelMode {
	if s == "answer" {
		return LabelAnswer
	}
	return LabelClue
}

// Options tune how Compose fills the answer page.
type Options struct {
	AnswerLabel LabelMode
}
