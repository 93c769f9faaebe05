// Package layout computes where cards go on a printable page and how the
// clue page and the answer page pair up.
package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive page size, card size or padding.
	ErrInvalidSize = errors.New("layout: sizes and padding must be positive")
	// ErrInvalidCard indicates card sub-regions that do not fit inside the card.
	ErrInvalidCard = errors.New("layout: card regions do not fit the card")
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// CardSpec describes one card and its sub-regions. The image region takes
// the top of the card, the text region the remaining TextHeight rows.
type CardSpec struct {
	Width           int `json:"width"`
	Height          int `json:"height"`
	TextHeight      int `json:"text_height"`
	ImagePadding    int `json:"image_padding"`
	AnswerBoxWidth  int `json:"answer_box_width"`
	AnswerBoxHeight int `json:"answer_box_height"`
}

// Size returns the outer card size.
func (c CardSpec) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// ImageHeight is the height of the region above the text.
func (c CardSpec) ImageHeight() int {
	return c.Height - c.TextHeight
}

// Validate checks that every sub-region fits inside the card. A card wider
// than the page is fine here; it simply yields no slots.
func (c CardSpec) Validate() error {
	if !c.Size().valid() || c.TextHeight <= 0 {
		return fmt.Errorf("%w: card %dx%d text height %d", ErrInvalidSize, c.Width, c.Height, c.TextHeight)
	}
	if c.TextHeight >= c.Height {
		return fmt.Errorf("%w: text height %d >= card height %d", ErrInvalidCard, c.TextHeight, c.Height)
	}
	if c.ImagePadding < 0 || 2*c.ImagePadding >= c.Width || c.ImagePadding >= c.ImageHeight() {
		return fmt.Errorf("%w: image padding %d", ErrInvalidCard, c.ImagePadding)
	}
	if c.AnswerBoxWidth <= 0 || c.AnswerBoxHeight <= 0 || c.AnswerBoxHeight > c.ImageHeight()-c.ImagePadding {
		return fmt.Errorf("%w: answer box %dx%d", ErrInvalidCard, c.AnswerBoxWidth, c.AnswerBoxHeight)
	}
	return nil
}
