package imagepkg

import (
	"image"

	"github.com/youruser/cluedeck/internal/layout"
)

// Geometry holds the rectangles of one card on a page.
type Geometry struct {
	Card   image.Rectangle `json:"card"`
	Image  image.Rectangle `json:"image"`
	Text   image.Rectangle `json:"text"`
	Answer image.Rectangle `json:"answer"`
}

// DeriveGeometry computes the card sub-regions for a slot anchor.
//
// The image rectangle is inset by the image padding on the left, top and
// right and reaches down to the text region. The answer box is centred in
// the image rectangle's width, covers the bottom AnswerBoxHeight rows of
// the image region and overlaps the first row of the text rectangle.
func DeriveGeometry(anchor image.Point, card layout.CardSpec) Geometry {
	x, y := anchor.X, anchor.Y
	imgBottom := y + card.ImageHeight()
	pad := card.ImagePadding

	g := Geometry{
		Card:  image.Rect(x, y, x+card.Width, y+card.Height),
		Image: image.Rect(x+pad, y+pad, x+card.Width-pad, imgBottom),
		Text:  image.Rect(x, imgBottom, x+card.Width, y+card.Height),
	}

	w := card.AnswerBoxWidth
	if w > g.Image.Dx() {
		w = g.Image.Dx()
	}
	left := g.Image.Min.X + (g.Image.Dx()-w)/2
	g.Answer = image.Rect(left, imgBottom-card.AnswerBoxHeight, left+w, imgBottom+1)
	return g
}

// ImageSize is the size every record image must have before placement.
func ImageSize(card layout.CardSpec) layout.Size {
	r := DeriveGeometry(image.Point{}, card).Image
	return layout.Size{Width: r.Dx(), Height: r.Dy()}
}
