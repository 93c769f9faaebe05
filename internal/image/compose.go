package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/cluedeck/internal/layout"
)

// FitMode selects how a source image is brought to the image rectangle size.
type FitMode string

const (
	// FitStretch resizes to the exact size, ignoring the aspect ratio.
	FitStretch FitMode = "stretch"
	// FitFill scales to cover the rectangle and crops the centre.
	FitFill FitMode = "fill"
)

// ParseFitMode accepts "stretch" or "fill", case-insensitively.
func ParseFitMode(s string) (FitMode, error) {
	switch m := FitMode(strings.ToLower(strings.TrimSpace(s))); m {
	case FitStretch, FitFill:
		return m, nil
	case "":
		return FitStretch, nil
	default:
		return "", fmt.Errorf("unknown fit mode %q", s)
	}
}

// NewPage creates a blank page canvas.
func NewPage(size layout.Size, paper color.Color) *image.NRGBA {
	return imaging.New(size.Width, size.Height, paper)
}

// FitImage resizes img to exactly size.
func FitImage(img image.Image, size layout.Size, mode FitMode) *image.NRGBA {
	if mode == FitFill {
		return imaging.Fill(img, size.Width, size.Height, imaging.Center, imaging.Lanczos)
	}
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos)
}
