package deck

import (
	"fmt"
	"image"
	"log"

	"github.com/youruser/cluedeck/internal/cards"
	imagepkg "github.com/youruser/cluedeck/internal/image"
	"github.com/youruser/cluedeck/internal/layout"
)

// Sheets are the two finished page canvases of a run.
type Sheets struct {
	Clue    *image.NRGBA
	Answer  *image.NRGBA
	Placed  int
	Dropped int
}

// Compose draws the clue page and the answer page. Record i lands in slot
// i of the clue page and in slot plan.MirrorOf(i) of the answer page, so a
// printed pair lines up after flipping the sheet about its vertical axis.
//
// Records beyond the slot count are dropped and counted. A record whose
// image does not fit its image rectangle aborts the run.
func Compose(plan *layout.Plan, r *imagepkg.Renderer, records []cards.Record, opt Options) (*Sheets, error) {
	s := &Sheets{
		Clue:   imagepkg.NewPage(plan.Page, r.Paper),
		Answer: imagepkg.NewPage(plan.Page, r.Paper),
	}
	if plan.Len() == 0 {
		log.Printf("[WARN] no card fits a %dx%d page, sheets stay blank", plan.Page.Width, plan.Page.Height)
		s.Dropped = len(records)
		return s, nil
	}

	for _, slot := range plan.Slots {
		g := r.Geometry(slot.Anchor)
		r.DrawBorders(s.Clue, g)
		r.DrawBorders(s.Answer, g)
	}

	n := len(records)
	if n > plan.Len() {
		s.Dropped = n - plan.Len()
		n = plan.Len()
		log.Printf("[WARN] %d cards do not fit on the page and were dropped", s.Dropped)
	}
	for i, rec := range records[:n] {
		clue := r.Geometry(plan.Slots[i].Anchor)
		if err := r.PlaceContent(s.Clue, clue, rec.Image, rec.Clue); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, err)
		}

		ans := r.Geometry(plan.Slots[plan.MirrorOf(i)].Anchor)
		if opt.AnswerLabel == LabelAnswer {
			if err := r.PlaceContent(s.Answer, ans, rec.Image, rec.Answer); err != nil {
				return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, err)
			}
			continue
		}
		if err := r.PlaceContent(s.Answer, ans, rec.Image, rec.Clue); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, err)
		}
		r.StampAnswer(s.Answer, ans, rec.Answer)
	}
	s.Placed = n
	return s, nil
}
