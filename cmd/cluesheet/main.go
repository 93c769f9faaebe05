// Command cluesheet lays out a deck of picture cards on a clue page and a
// mirrored answer page and writes them to a PDF.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/youruser/cluedeck/internal/cards"
	"github.com/youruser/cluedeck/internal/config"
	"github.com/youruser/cluedeck/internal/deck"
	"github.com/youruser/cluedeck/internal/util"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		imageDir   = flag.String("images", "images", "directory holding the card images")
		manifest   = flag.String("manifest", "", "CSV manifest with image,clue,answer columns (default: use every image in -images)")
		out        = flag.String("out", "result.pdf", "output PDF path")
		pngDir     = flag.String("png-dir", "", "also write clue.png and answer.png into this directory")
		keyPath    = flag.String("key", "", "also write a text answer key to this path")
		tags       = flag.String("tags", "", "comma separated tags; keep only manifest entries carrying one")
		query      = flag.String("q", "", "keep only manifest entries containing all of these words")
		name       = flag.String("name", "", "deck name used as PDF title and answer key heading")
	)
	flag.Parse()

	if err := run(*configPath, *imageDir, *manifest, *out, *pngDir, *keyPath, *tags, *query, *name); err != nil {
		log.Fatal("[ERROR] ", err)
	}
}

func run(configPath, imageDir, manifest, out, pngDir, keyPath, tags, query, name string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	r, err := deck.NewRun(cfg)
	if err != nil {
		return err
	}
	log.Printf("[INFO] %d slots, mirror %v", r.Plan.Len(), r.Plan.Mirror)

	var records []cards.Record
	if manifest != "" {
		entries, err := cards.LoadManifest(manifest)
		if err != nil {
			return err
		}
		opt := cards.FilterOptions{FreeWords: query}
		if tags != "" {
			opt.Tags = strings.Split(tags, ",")
		}
		entries = cards.Filter(entries, opt)
		records, err = cards.LoadRecords(imageDir, entries, r.ImageSize(), cfg.Fit())
		if err != nil {
			return err
		}
	} else {
		records, err = cards.LoadDirectory(imageDir, r.ImageSize(), cfg.Fit())
		if err != nil {
			return err
		}
	}

	d := deck.Deck{Name: name, Records: records}
	s, err := r.Compose(d.Records)
	if err != nil {
		return err
	}
	log.Printf("[INFO] placed %d cards, dropped %d", s.Placed, s.Dropped)

	if err := deck.WritePDFFile(out, s, r.Paper(), name); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Println("[INFO] wrote", out)

	if pngDir != "" {
		paths, err := deck.ExportPNG(pngDir, s)
		if err != nil {
			return err
		}
		log.Println("[INFO] wrote", strings.Join(paths, ", "))
	}
	if keyPath != "" {
		if err := util.EnsureParentDir(keyPath); err != nil {
			return err
		}
		if err := os.WriteFile(keyPath, []byte(deck.ExportAnswerKey(d, r.Plan)), 0o644); err != nil {
			return err
		}
		log.Println("[INFO] wrote", keyPath)
	}
	return nil
}
