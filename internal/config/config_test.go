package config_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/cluedeck/internal/config"
	imagepkg "github.com/youruser/cluedeck/internal/image"
	"github.com/youruser/cluedeck/internal/layout"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, layout.Size{Width: 1063, Height: 1375}, c.PageSize())
	assert.Equal(t, 265, c.CardSpec().ImageHeight())
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.Paper())
	assert.Equal(t, color.NRGBA{A: 0xff}, c.InkColor())
	assert.Equal(t, imagepkg.FitStretch, c.Fit())
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CLUEDECK_DATA_DIR", "")
	t.Setenv("CLUEDECK_DPI", "")
	path := filepath.Join(t.TempDir(), "cluedeck.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"padding": 12, "ink": "#336", "fit_mode": "fill", "answer_label": "answer"}`), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Padding)
	assert.Equal(t, 190, c.CardWidth, "unset fields keep defaults")
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x33, B: 0x66, A: 0xff}, c.InkColor())
	assert.Equal(t, imagepkg.FitFill, c.Fit())
	assert.Equal(t, config.LabelAnswer, c.AnswerLabel)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "data", c.DataDir)
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CLUEDECK_DATA_DIR", "")
	t.Setenv("CLUEDECK_DPI", "")
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_DPIEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CLUEDECK_DATA_DIR", "")

	t.Setenv("CLUEDECK_DPI", "300")
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 300.0, c.DPI)

	t.Setenv("CLUEDECK_DPI", "abc")
	c, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 125.0, c.DPI)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"page_width": `), 0o644))
	_, err = config.Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"ZeroPage", func(c *config.Config) { c.PageWidth = 0 }},
		{"ZeroPadding", func(c *config.Config) { c.Padding = 0 }},
		{"TextTallerThanCard", func(c *config.Config) { c.TextHeight = c.CardHeight }},
		{"NoFont", func(c *config.Config) { c.FontSize = 0 }},
		{"NoDPI", func(c *config.Config) { c.DPI = -1 }},
		{"BadBackground", func(c *config.Config) { c.Background = "white" }},
		{"BadInk", func(c *config.Config) { c.Ink = "#12345g" }},
		{"BadFit", func(c *config.Config) { c.FitMode = "squash" }},
		{"BadLabel", func(c *config.Config) { c.AnswerLabel = "both" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestValidate_CardWiderThanPageIsAllowed(t *testing.T) {
	c := config.Default()
	c.PageWidth = 100
	assert.NoError(t, c.Validate())
}

func TestParseHexColor(t *testing.T) {
	got, err := config.ParseHexColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, got)

	_, err = config.ParseHexColor("#12")
	assert.Error(t, err)
}
