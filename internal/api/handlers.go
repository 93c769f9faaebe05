package api

import (
	"bytes"
	"image"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/youruser/cluedeck/internal/cards"
	"github.com/youruser/cluedeck/internal/config"
	"github.com/youruser/cluedeck/internal/deck"
	imagepkg "github.com/youruser/cluedeck/internal/image"
	"github.com/youruser/cluedeck/internal/layout"
)

type handlers struct {
	run *deck.Run
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// layout returns the slot grid and mirror map of the configured page
func (h *handlers) layout(c *gin.Context) {
	p := h.run.Plan
	c.JSON(http.StatusOK, gin.H{
		"page":       p.Page,
		"card":       p.Card,
		"padding":    p.Padding,
		"image_size": h.run.ImageSize(),
		"slots":      p.Slots,
		"mirror":     p.Mirror,
		"rows":       p.Rows(),
	})
}

type sheetCard struct {
	ImageURL string `json:"image_url"`
	Clue     string `json:"clue"`
	Answer   string `json:"answer"`
	QR       string `json:"qr"`
}

type sheetRequest struct {
	Name        string      `json:"name"`
	AnswerLabel string      `json:"answer_label"`
	Cards       []sheetCard `json:"cards"`
}

// sheets renders the clue and answer pages for the posted cards. The
// default response is a two-page PDF; ?format=png&page=answer returns one
// page as PNG.
func (h *handlers) sheets(c *gin.Context) {
	var req sheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Cards) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no cards given"})
		return
	}
	if req.AnswerLabel != "" && req.AnswerLabel != config.LabelClue && req.AnswerLabel != config.LabelAnswer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer_label must be clue or answer"})
		return
	}
	format := c.DefaultQuery("format", "pdf")
	if format != "pdf" && format != "png" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be pdf or png"})
		return
	}

	size := h.run.ImageSize()
	records := make([]cards.Record, 0, len(req.Cards))
	for i, sc := range req.Cards {
		rec := cards.Record{ID: "card-" + strconv.Itoa(i), Clue: sc.Clue, Answer: sc.Answer}
		// cards past the page capacity are dropped by Compose; skip fetching them
		if i < h.run.Plan.Len() {
			img, err := h.fetchImage(sc, size)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			rec.Image = img
		}
		records = append(records, rec)
	}

	opt := deck.Options{AnswerLabel: deck.ParseLabelMode(h.run.Config.AnswerLabel)}
	if req.AnswerLabel != "" {
		opt.AnswerLabel = deck.ParseLabelMode(req.AnswerLabel)
	}
	s, err := deck.Compose(h.run.Plan, h.run.Renderer, records, opt)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Cards-Placed", strconv.Itoa(s.Placed))
	c.Header("X-Cards-Dropped", strconv.Itoa(s.Dropped))

	buf := new(bytes.Buffer)
	if format == "png" {
		page := s.Clue
		if c.Query("page") == "answer" {
			page = s.Answer
		}
		if err := imaging.Encode(buf, page, imaging.PNG); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
		return
	}
	if err := deck.ExportPDF(buf, s, h.run.Paper(), req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// fetchImage downloads the card picture (best-effort) and falls back to a
// QR code of the card's qr text or clue.
func (h *handlers) fetchImage(sc sheetCard, size layout.Size) (image.Image, error) {
	if sc.ImageURL != "" {
		img, err := imagepkg.DownloadImage(sc.ImageURL)
		if err == nil {
			return imagepkg.FitImage(img, size, h.run.Config.Fit()), nil
		}
		log.Println("[WARN] image download error:", err)
	}
	text := sc.QR
	if text == "" {
		text = sc.Clue
	}
	if text == "" {
		text = "cluedeck"
	}
	return imagepkg.QRPlaceholder(text, size)
}

// filter selects manifest entries from the data directory
func (h *handlers) filter(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	all, err := cards.LoadManifest(filepath.Join(h.run.Config.DataDir, "manifest.csv"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(all, opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "entries": out})
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "cluedeck"
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
