package main

import (
	"log"

	"DigitalWhiteboard/internal/config"
	"DigitalWhiteboard/internal/ui"
)

func main() {
	cfg := config.Default()
	log.Printf("Starting %s (%dx%d canvas)", cfg.Title, cfg.CanvasWidth, cfg.CanvasHeight)
	ui.RunApp(cfg)
}
