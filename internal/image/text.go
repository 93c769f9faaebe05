package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Typesetter measures and draws single-line labels with one font face.
// It is safe for concurrent use; calls are serialized because a font.Face
// keeps glyph-loading state.
type Typesetter struct {
	mu   sync.Mutex
	face font.Face
}

// NewTypesetter loads the embedded Go font at the given pixel size.
func NewTypesetter(size float64, bold bool) (*Typesetter, error) {
	ttf := goregular.TTF
	if bold {
		ttf = gobold.TTF
	}
	fnt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return &Typesetter{face: face}, nil
}

// Measure returns the label's bounding box: the advance width and the
// height of the glyphs above the baseline.
func (t *Typesetter) Measure(text string) (w, h int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.measure(text)
}

func (t *Typesetter) measure(text string) (w, h int) {
	if text == "" {
		return 0, 0
	}
	bounds, advance := font.BoundString(t.face, text)
	h = (-bounds.Min.Y).Ceil()
	if h < 0 {
		h = 0
	}
	return advance.Ceil(), h
}

// CenterText returns the drawing origin (left edge, baseline) that centres
// a w×h text box in r. Both offsets use floor division so oversized text
// spills evenly past both edges.
func CenterText(r image.Rectangle, w, h int) image.Point {
	return image.Pt(
		r.Min.X+floorDiv(r.Dx()-w, 2),
		r.Min.Y+floorDiv(r.Dy()+h, 2),
	)
}

// DrawCentered draws text centred in r.
func (t *Typesetter) DrawCentered(dst draw.Image, r image.Rectangle, text string, c color.Color) {
	if text == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.measure(text)
	at := CenterText(r, w, h)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: t.face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
