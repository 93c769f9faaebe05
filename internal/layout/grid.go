package layout

import (
	"fmt"
	"image"
)

// Slot is one card position on a page. Index is assigned in row-major
// order across the whole page; Row is the scan row that produced it.
type Slot struct {
	Index  int         `json:"index"`
	Row    int         `json:"row"`
	Anchor image.Point `json:"anchor"`
}

// Rect returns the card rectangle anchored at the slot.
func (s Slot) Rect(card Size) image.Rectangle {
	return image.Rectangle{Min: s.Anchor, Max: s.Anchor.Add(image.Pt(card.Width, card.Height))}
}

// Plan is the slot grid of one page together with its mirror map.
// It is not modified after ComputeSlots returns.
type Plan struct {
	Page    Size   `json:"page"`
	Card    Size   `json:"card"`
	Padding int    `json:"padding"`
	Slots   []Slot `json:"slots"`
	// Mirror[i] is the slot holding slot i's card on the opposite page.
	Mirror []int `json:"mirror"`
}

// ComputeSlots lays out every card that fits on the page, leaving padding
// between cards and at the page edges. Positions where a full card would
// overflow the right or bottom edge are skipped. Within each row the k-th
// slot from the left mirrors the k-th slot from the right.
//
// A page too small for a single card yields an empty plan, not an error.
func ComputeSlots(page, card Size, padding int) (*Plan, error) {
	if !page.valid() {
		return nil, fmt.Errorf("%w: page %dx%d", ErrInvalidSize, page.Width, page.Height)
	}
	if !card.valid() {
		return nil, fmt.Errorf("%w: card %dx%d", ErrInvalidSize, card.Width, card.Height)
	}
	if padding <= 0 {
		return nil, fmt.Errorf("%w: padding %d", ErrInvalidSize, padding)
	}

	rows := fitCount(page.Height, card.Height, padding)
	cols := fitCount(page.Width, card.Width, padding)

	p := &Plan{
		Page:    page,
		Card:    card,
		Padding: padding,
		Slots:   make([]Slot, 0, rows*cols),
		Mirror:  make([]int, rows*cols),
	}
	for row, y := 0, padding; y+card.Height <= page.Height; row, y = row+1, y+card.Height+padding {
		start := len(p.Slots)
		for x := padding; x+card.Width <= page.Width; x += card.Width + padding {
			p.Slots = append(p.Slots, Slot{Index: len(p.Slots), Row: row, Anchor: image.Pt(x, y)})
		}
		end := len(p.Slots)
		for i := start; i < end; i++ {
			p.Mirror[i] = start + end - 1 - i
		}
	}
	return p, nil
}

// fitCount is the number of cards of the given extent that fit along a
// page dimension starting at padding.
func fitCount(page, extent, padding int) int {
	if padding+extent > page {
		return 0
	}
	return (page-padding-extent)/(extent+padding) + 1
}

// Len returns the number of slots.
func (p *Plan) Len() int {
	return len(p.Slots)
}

// MirrorOf returns the slot paired with slot i.
func (p *Plan) MirrorOf(i int) int {
	return p.Mirror[i]
}

// Rect returns the card rectangle of slot i.
func (p *Plan) Rect(i int) image.Rectangle {
	return p.Slots[i].Rect(p.Card)
}

// Rows groups slot indices by scan row.
func (p *Plan) Rows() [][]int {
	var rows [][]int
	for _, s := range p.Slots {
		if s.Row == len(rows) {
			rows = append(rows, nil)
		}
		rows[s.Row] = append(rows[s.Row], s.Index)
	}
	return rows
}
