package deck

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	"github.com/youruser/cluedeck/internal/layout"
	"github.com/youruser/cluedeck/internal/util"
)

// PaperSize is a PDF page size in points.
type PaperSize struct {
	Name   string
	Width  float64 // in `pt` (1" = 72pts)
	Height float64 // in `pt`
}

var (
	LetterSize = PaperSize{Name: "Letter", Width: 612, Height: 792}
	A4Size     = PaperSize{Name: "A4", Width: 595.28, Height: 841.89}
)

// PaperFromPixels converts a page size in pixels at dpi to points. Sizes
// within a point of a standard paper size take that paper's name.
func PaperFromPixels(page layout.Size, dpi float64) PaperSize {
	p := PaperSize{
		Name:   "Custom",
		Width:  float64(page.Width) * 72 / dpi,
		Height: float64(page.Height) * 72 / dpi,
	}
	for _, std := range []PaperSize{LetterSize, A4Size} {
		if math.Abs(std.Width-p.Width) < 1 && math.Abs(std.Height-p.Height) < 1 {
			p.Name = std.Name
		}
	}
	return p
}

func (s *Sheets) pages() []image.Image {
	return []image.Image{s.Clue, s.Answer}
}

// ExportPDF writes a two-page document, clue sheet first, each sheet
// stretched over the full page.
func ExportPDF(w io.Writer, s *Sheets, paper PaperSize, title string) error {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("cluedeck", true)
	if title != "" {
		doc.SetTitle(title, true)
	}

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	for i, pg := range s.pages() {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, pg, imaging.PNG); err != nil {
			return fmt.Errorf("encoding page %d: %w", i, err)
		}
		name := fmt.Sprintf("sheet-%d", i)
		doc.RegisterImageOptionsReader(name, opt, &buf)
		doc.AddPage()
		doc.ImageOptions(name, 0, 0, paper.Width, paper.Height, false, opt, 0, "")
	}
	return doc.Output(w)
}

// WritePDFFile writes ExportPDF output to path, creating its directory.
func WritePDFFile(path string, s *Sheets, paper PaperSize, title string) error {
	if err := util.EnsureParentDir(path); err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ExportPDF(fp, s, paper, title); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// ExportPNG saves clue.png and answer.png into dir and returns their paths.
func ExportPNG(dir string, s *Sheets) ([]string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, err
	}
	names := []string{"clue.png", "answer.png"}
	var out []string
	for i, pg := range s.pages() {
		p := filepath.Join(dir, names[i])
		if err := imaging.Save(pg, p); err != nil {
			return nil, fmt.Errorf("saving %s: %w", p, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ExportAnswerKey lists where every placed card went, one line per card:
// "<clue slot> -> <answer slot>: <clue> = <answer>".
func ExportAnswerKey(d Deck, plan *layout.Plan) string {
	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	for i, r := range d.Records {
		if i >= plan.Len() {
			lines = append(lines, fmt.Sprintf("# %d more cards not placed", len(d.Records)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("%d -> %d: %s = %s", i, plan.MirrorOf(i), r.Clue, r.Answer))
	}
	return strings.Join(lines, "\n") + "\n"
}
