package cards

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	imagepkg "github.com/youruser/cluedeck/internal/image"
	"github.com/youruser/cluedeck/internal/layout"
	"github.com/youruser/cluedeck/internal/util"
)

// ErrNoImages indicates a data source that produced no cards at all.
var ErrNoImages = errors.New("cards: no images found")

// ImageExts are the file extensions picked up from an image directory.
var ImageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

func parseListCell(s string) []string {
	s = strings.ReplaceAll(s, "／", "/")
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// LoadManifest reads a CSV manifest. The header must name an "image" and a
// "clue" column; "answer", "tags" and "qr" are optional.
func LoadManifest(path string) ([]Entry, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, need := range []string{"image", "clue"} {
		if _, ok := cols[need]; !ok {
			return nil, fmt.Errorf("csv %s: missing %q column", path, need)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Entry{}
	for _, row := range rows[1:] {
		e := Entry{
			Image:  get(row, "image"),
			Clue:   get(row, "clue"),
			Answer: get(row, "answer"),
			Tags:   parseListCell(get(row, "tags")),
			QR:     get(row, "qr"),
		}
		if e.Image == "" && e.Clue == "" && e.QR == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// LoadRecords opens every entry's image from imageDir, in manifest order,
// and fits it to size. An entry without an image gets a QR code of its qr
// text (or its clue) instead.
func LoadRecords(imageDir string, entries []Entry, size layout.Size, mode imagepkg.FitMode) ([]Record, error) {
	out := make([]Record, 0, len(entries))
	for i, e := range entries {
		img, err := entryImage(imageDir, e, size, mode)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		id := e.Image
		if id == "" {
			id = "qr-" + strconv.Itoa(i)
		}
		out = append(out, Record{ID: id, Image: img, Clue: e.Clue, Answer: e.Answer, Tags: e.Tags})
	}
	return out, nil
}

func entryImage(imageDir string, e Entry, size layout.Size, mode imagepkg.FitMode) (image.Image, error) {
	if e.Image == "" {
		text := e.QR
		if text == "" {
			text = e.Clue
		}
		return imagepkg.QRPlaceholder(text, size)
	}
	return openFitted(filepath.Join(imageDir, e.Image), size, mode)
}

func openFitted(path string, size layout.Size, mode imagepkg.FitMode) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return imagepkg.FitImage(img, size, mode), nil
}

// LoadDirectory turns every image in imageDir into a record, sorted by file
// name. The clue is the file name and the answer is the card's position.
func LoadDirectory(imageDir string, size layout.Size, mode imagepkg.FitMode) ([]Record, error) {
	names, err := util.ListFiles(imageDir, ImageExts...)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, imageDir)
	}
	out := make([]Record, 0, len(names))
	for i, name := range names {
		img, err := openFitted(filepath.Join(imageDir, name), size, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, Record{ID: name, Image: img, Clue: name, Answer: strconv.Itoa(i)})
	}
	return out, nil
}

// LoadDataDir loads cards from a data directory (best-effort). It uses
// dataDir/manifest.csv when present and otherwise every image in
// dataDir/images.
func LoadDataDir(dataDir string, size layout.Size, mode imagepkg.FitMode) ([]Record, error) {
	imageDir := filepath.Join(dataDir, "images")
	manifest := filepath.Join(dataDir, "manifest.csv")
	if _, err := os.Stat(manifest); err != nil {
		log.Printf("[INFO] no manifest at %s, using directory listing", manifest)
		return LoadDirectory(imageDir, size, mode)
	}
	entries, err := LoadManifest(manifest)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, manifest)
	}
	return LoadRecords(imageDir, entries, size, mode)
}
