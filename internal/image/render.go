package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/youruser/cluedeck/internal/layout"
)

// ErrInvalidRecordDimensions indicates a record image whose size differs
// from the image rectangle it is placed into.
var ErrInvalidRecordDimensions = errors.New("imagepkg: record image does not match its image rectangle")

// Renderer draws card frames and card content onto page canvases.
type Renderer struct {
	Card       layout.CardSpec
	Typesetter *Typesetter
	Ink        color.Color // borders and text
	Paper      color.Color // page background, answer box mask
}

// NewRenderer returns a renderer for the given card layout.
func NewRenderer(card layout.CardSpec, ts *Typesetter, ink, paper color.Color) *Renderer {
	return &Renderer{Card: card, Typesetter: ts, Ink: ink, Paper: paper}
}

// Geometry derives the card regions for a slot anchor.
func (r *Renderer) Geometry(anchor image.Point) Geometry {
	return DeriveGeometry(anchor, r.Card)
}

// DrawBorders outlines the card, image, text and answer rectangles.
func (r *Renderer) DrawBorders(canvas draw.Image, g Geometry) {
	strokeRect(canvas, g.Card, r.Ink)
	strokeRect(canvas, g.Image, r.Ink)
	strokeRect(canvas, g.Text, r.Ink)
	strokeRect(canvas, g.Answer, r.Ink)
}

// PlaceContent copies img into the image rectangle and centres label in the
// text rectangle. img must already have the image rectangle's size; on a
// mismatch, or without an image, nothing is drawn.
func (r *Renderer) PlaceContent(canvas draw.Image, g Geometry, img image.Image, label string) error {
	if img == nil {
		return fmt.Errorf("%w: no image", ErrInvalidRecordDimensions)
	}
	b := img.Bounds()
	if b.Dx() != g.Image.Dx() || b.Dy() != g.Image.Dy() {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrInvalidRecordDimensions, b.Dx(), b.Dy(), g.Image.Dx(), g.Image.Dy())
	}
	draw.Draw(canvas, g.Image, img, b.Min, draw.Src)
	r.Typesetter.DrawCentered(canvas, g.Text, label, r.Ink)
	return nil
}

// StampAnswer masks the answer box with the paper colour, outlines it and
// centres the answer inside.
func (r *Renderer) StampAnswer(canvas draw.Image, g Geometry, answer string) {
	fillRect(canvas, g.Answer, r.Paper)
	strokeRect(canvas, g.Answer, r.Ink)
	r.Typesetter.DrawCentered(canvas, g.Answer, answer, r.Ink)
}
