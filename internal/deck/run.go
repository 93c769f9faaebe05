package deck

import (
	"fmt"

	"github.com/youruser/cluedeck/internal/cards"
	"github.com/youruser/cluedeck/internal/config"
	imagepkg "github.com/youruser/cluedeck/internal/image"
	"github.com/youruser/cluedeck/internal/layout"
)

// Run bundles everything derived from one configuration: the slot plan and
// a renderer. It is not modified after NewRun and Compose may be called
// from several goroutines; the renderer's typesetter serializes text work.
type Run struct {
	Config   config.Config
	Plan     *layout.Plan
	Renderer *imagepkg.Renderer
}

// NewRun validates cfg and computes the plan.
func NewRun(cfg config.Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	plan, err := layout.ComputeSlots(cfg.PageSize(), cfg.CardSpec().Size(), cfg.Padding)
	if err != nil {
		return nil, err
	}
	ts, err := imagepkg.NewTypesetter(cfg.FontSize, cfg.FontBold)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	r := imagepkg.NewRenderer(cfg.CardSpec(), ts, cfg.InkColor(), cfg.Paper())
	return &Run{Config: cfg, Plan: plan, Renderer: r}, nil
}

// ImageSize is the size records must be fitted to.
func (r *Run) ImageSize() layout.Size {
	return imagepkg.ImageSize(r.Config.CardSpec())
}

// Compose lays out records with the configured answer label mode.
func (r *Run) Compose(records []cards.Record) (*Sheets, error) {
	return Compose(r.Plan, r.Renderer, records, Options{AnswerLabel: ParseLabelMode(r.Config.AnswerLabel)})
}

// Paper is the PDF page size matching the configured pixels and dpi.
func (r *Run) Paper() PaperSize {
	return PaperFromPixels(r.Config.PageSize(), r.Config.DPI)
}
