// Package config holds the settings of one print run. A Config is built
// once at start-up and passed by value to everything that needs it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	imagepkg "github.com/youruser/cluedeck/internal/image"
	"github.com/youruser/cluedeck/internal/layout"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Label modes for the text region of answer-page cards.
const (
	LabelClue   = "clue"
	LabelAnswer = "answer"
)

// Config is the full set of page, card, rendering and server settings.
type Config struct {
	PageWidth       int     `json:"page_width"`
	PageHeight      int     `json:"page_height"`
	CardWidth       int     `json:"card_width"`
	CardHeight      int     `json:"card_height"`
	TextHeight      int     `json:"text_height"`
	Padding         int     `json:"padding"`
	ImagePadding    int     `json:"image_padding"`
	AnswerBoxWidth  int     `json:"answer_box_width"`
	AnswerBoxHeight int     `json:"answer_box_height"`
	FontSize        float64 `json:"font_size"`
	FontBold        bool    `json:"font_bold"`
	Background      string  `json:"background"`
	Ink             string  `json:"ink"`
	DPI             float64 `json:"dpi"`
	FitMode         string  `json:"fit_mode"`
	AnswerLabel     string  `json:"answer_label"`
	Port            string  `json:"port"`
	DataDir         string  `json:"data_dir"`
}

// Default returns a US Letter page at 125 dpi holding 5x4 cards.
func Default() Config {
	return Config{
		PageWidth:       1063,
		PageHeight:      1375,
		CardWidth:       190,
		CardHeight:      315,
		TextHeight:      50,
		Padding:         19,
		ImagePadding:    10,
		AnswerBoxWidth:  95,
		AnswerBoxHeight: 25,
		FontSize:        13,
		Background:      "#ffffff",
		Ink:             "#000000",
		DPI:             125,
		FitMode:         string(imagepkg.FitStretch),
		AnswerLabel:     LabelClue,
		Port:            "8080",
		DataDir:         "data",
	}
}

// Load overlays the JSON file at path (if path is not empty) and then the
// environment on the defaults, and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := json.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("CLUEDECK_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("CLUEDECK_DPI"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("[WARN] ignoring CLUEDECK_DPI=%q: %v", v, err)
		} else {
			c.DPI = f
		}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return fmt.Errorf("%w: page %dx%d", ErrInvalidConfig, c.PageWidth, c.PageHeight)
	}
	if c.Padding <= 0 {
		return fmt.Errorf("%w: padding %d", ErrInvalidConfig, c.Padding)
	}
	if err := c.CardSpec().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.FontSize)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("%w: dpi %v", ErrInvalidConfig, c.DPI)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseHexColor(c.Ink); err != nil {
		return fmt.Errorf("%w: ink: %w", ErrInvalidConfig, err)
	}
	if _, err := imagepkg.ParseFitMode(c.FitMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.AnswerLabel != LabelClue && c.AnswerLabel != LabelAnswer {
		return fmt.Errorf("%w: answer label %q", ErrInvalidConfig, c.AnswerLabel)
	}
	return nil
}

func (c Config) PageSize() layout.Size {
	return layout.Size{Width: c.PageWidth, Height: c.PageHeight}
}

func (c Config) CardSpec() layout.CardSpec {
	return layout.CardSpec{
		Width:           c.CardWidth,
		Height:          c.CardHeight,
		TextHeight:      c.TextHeight,
		ImagePadding:    c.ImagePadding,
		AnswerBoxWidth:  c.AnswerBoxWidth,
		AnswerBoxHeight: c.AnswerBoxHeight,
	}
}

// Paper is the page background colour. Invalid values fall back to white.
func (c Config) Paper() color.NRGBA {
	if col, err := ParseHexColor(c.Background); err == nil {
		return col
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// InkColor is the colour of borders and text. Invalid values fall back to black.
func (c Config) InkColor() color.NRGBA {
	if col, err := ParseHexColor(c.Ink); err == nil {
		return col
	}
	return color.NRGBA{A: 0xff}
}

// Fit returns the configured fit mode.
func (c Config) Fit() imagepkg.FitMode {
	m, err := imagepkg.ParseFitMode(c.FitMode)
	if err != nil {
		return imagepkg.FitStretch
	}
	return m
}

// ParseHexColor parses "#rgb" or "#rrggbb".
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
