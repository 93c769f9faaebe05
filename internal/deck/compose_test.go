package deck_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/cluedeck/internal/cards"
	"github.com/youruser/cluedeck/internal/deck"
	imagepkg "github.com/youruser/cluedeck/internal/image"
	"github.com/youruser/cluedeck/internal/layout"
)

var (
	ink   = color.NRGBA{A: 0xff}
	paper = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	card   = layout.CardSpec{Width: 190, Height: 315, TextHeight: 50, ImagePadding: 10, AnswerBoxWidth: 95, AnswerBoxHeight: 25}
	letter = layout.Size{Width: 1063, Height: 1375}
)

func newRenderer(t *testing.T) *imagepkg.Renderer {
	t.Helper()
	ts, err := imagepkg.NewTypesetter(13, false)
	require.NoError(t, err)
	return imagepkg.NewRenderer(card, ts, ink, paper)
}

func newPlan(t *testing.T, page layout.Size) *layout.Plan {
	t.Helper()
	p, err := layout.ComputeSlots(page, card.Size(), 19)
	require.NoError(t, err)
	return p
}

// solidRecords returns n records whose images are distinct solid colours.
func solidRecords(n int) []cards.Record {
	size := imagepkg.ImageSize(card)
	out := make([]cards.Record, n)
	for i := range out {
		c := color.NRGBA{R: uint8(10 * i), G: 0x40, B: 0xc0, A: 0xff}
		out[i] = cards.Record{
			ID:     fmt.Sprintf("card-%d", i),
			Image:  imaging.New(size.Width, size.Height, c),
			Clue:   fmt.Sprintf("clue %d", i),
			Answer: fmt.Sprint(i),
		}
	}
	return out
}

func imageOrigin(r *imagepkg.Renderer, plan *layout.Plan, slot int) image.Point {
	return r.Geometry(plan.Slots[slot].Anchor).Image.Min
}

func TestCompose_MirrorsAnswerPage(t *testing.T) {
	r := newRenderer(t)
	plan := newPlan(t, letter)
	recs := solidRecords(7)

	s, err := deck.Compose(plan, r, recs, deck.Options{})
	require.NoError(t, err)
	assert.Equal(t, 7, s.Placed)
	assert.Zero(t, s.Dropped)
	assert.Equal(t, image.Rect(0, 0, 1063, 1375), s.Clue.Bounds())
	assert.Equal(t, s.Clue.Bounds(), s.Answer.Bounds())

	for i, rec := range recs {
		want := rec.Image.(*image.NRGBA).NRGBAAt(0, 0)
		p := imageOrigin(r, plan, i)
		assert.Equal(t, want, s.Clue.NRGBAAt(p.X, p.Y), "clue slot %d", i)
		m := imageOrigin(r, plan, plan.MirrorOf(i))
		assert.Equal(t, want, s.Answer.NRGBAAt(m.X, m.Y), "answer slot %d", plan.MirrorOf(i))
	}

	// Slot 0 mirrors slot 4 in the first row of five.
	a := r.Geometry(plan.Slots[4].Anchor).Answer
	assert.Equal(t, paper, s.Answer.NRGBAAt(a.Min.X+1, a.Min.Y+1), "answer box is masked")
	c := r.Geometry(plan.Slots[4].Anchor).Answer
	assert.NotEqual(t, paper, s.Clue.NRGBAAt(c.Min.X+1, c.Min.Y+1), "clue page keeps the picture under the box")
}

func TestCompose_OrderIndependentPixels(t *testing.T) {
	r := newRenderer(t)
	plan := newPlan(t, letter)
	recs := solidRecords(5)

	a, err := deck.Compose(plan, r, recs, deck.Options{})
	require.NoError(t, err)
	b, err := deck.Compose(plan, r, recs, deck.Options{})
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Clue.Pix, b.Clue.Pix))
	assert.True(t, bytes.Equal(a.Answer.Pix, b.Answer.Pix))
}

func TestCompose_TruncatesExtraRecords(t *testing.T) {
	r := newRenderer(t)
	page := layout.Size{Width: 700, Height: 400}
	plan := newPlan(t, page)
	require.Equal(t, 3, plan.Len())

	s, err := deck.Compose(plan, r, solidRecords(5), deck.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Placed)
	assert.Equal(t, 2, s.Dropped)
}

func TestCompose_UnusedSlotsStayBlank(t *testing.T) {
	r := newRenderer(t)
	plan := newPlan(t, letter)

	s, err := deck.Compose(plan, r, solidRecords(2), deck.Options{})
	require.NoError(t, err)
	g := r.Geometry(plan.Slots[10].Anchor)
	assert.Equal(t, paper, s.Clue.NRGBAAt(g.Image.Min.X+5, g.Image.Min.Y+5))
	assert.Equal(t, ink, s.Clue.NRGBAAt(g.Card.Min.X, g.Card.Min.Y), "borders are drawn for every slot")
}

func TestCompose_ZeroCapacity(t *testing.T) {
	r := newRenderer(t)
	page := layout.Size{Width: 100, Height: 100}
	plan := newPlan(t, page)
	require.Zero(t, plan.Len())

	s, err := deck.Compose(plan, r, solidRecords(3), deck.Options{})
	require.NoError(t, err)
	assert.Zero(t, s.Placed)
	assert.Equal(t, 3, s.Dropped)

	blank := imaging.New(100, 100, paper)
	assert.True(t, bytes.Equal(blank.Pix, s.Clue.Pix))
	assert.True(t, bytes.Equal(blank.Pix, s.Answer.Pix))
}

func TestCompose_InvalidRecordDimensions(t *testing.T) {
	r := newRenderer(t)
	plan := newPlan(t, letter)
	recs := solidRecords(3)
	recs[1].Image = imaging.New(10, 10, ink)

	_, err := deck.Compose(plan, r, recs, deck.Options{})
	assert.ErrorIs(t, err, imagepkg.ErrInvalidRecordDimensions)
	assert.ErrorContains(t, err, "card-1")
}

func TestCompose_MissingRecordImage(t *testing.T) {
	r := newRenderer(t)
	plan := newPlan(t, letter)
	recs := append(solidRecords(1), cards.Record{ID: "x", Clue: "c"})

	var err error
	assert.NotPanics(t, func() {
		_, err = deck.Compose(plan, r, recs, deck.Options{})
	})
	assert.ErrorIs(t, err, imagepkg.ErrInvalidRecordDimensions)
	assert.ErrorContains(t, err, "(x)")
}

func TestCompose_AnswerLabelMode(t *testing.T) {
	r := newRenderer(t)
	plan := newPlan(t, letter)

	s, err := deck.Compose(plan, r, solidRecords(1), deck.Options{AnswerLabel: deck.LabelAnswer})
	require.NoError(t, err)
	a := r.Geometry(plan.Slots[plan.MirrorOf(0)].Anchor).Answer
	assert.NotEqual(t, paper, s.Answer.NRGBAAt(a.Min.X+1, a.Min.Y+1), "no answer stamp in answer mode")
}

func TestParseLabelMode(t *testing.T) {
	assert.Equal(t, deck.LabelAnswer, deck.ParseLabelMode("answer"))
	assert.Equal(t, deck.LabelClue, deck.ParseLabelMode("clue"))
	assert.Equal(t, deck.LabelClue, deck.ParseLabelMode(""))
}
