package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cluedeck/internal/api"
	"github.com/youruser/cluedeck/internal/cards"
	"github.com/youruser/cluedeck/internal/config"
	"github.com/youruser/cluedeck/internal/deck"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	run, err := deck.NewRun(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[INFO] page %dx%d holds %d cards", cfg.PageWidth, cfg.PageHeight, run.Plan.Len())

	// Check the data dir at startup (best-effort)
	if recs, err := cards.LoadDataDir(cfg.DataDir, run.ImageSize(), cfg.Fit()); err != nil {
		log.Println("[WARN] failed to load data dir at startup:", err)
	} else {
		log.Printf("[INFO] %d cards available in %s", len(recs), cfg.DataDir)
	}

	r := gin.Default()
	api.RegisterRoutes(r, run)

	log.Println("[INFO] starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
