package main

import (
	"flag"
	"log"

	"KolamStudio/internal/config"
	"KolamStudio/internal/ui"
)

func main() {
	configPath := flag.String("config", "kolamstudio.toml", "path to the settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Bad config is not fatal; run with defaults and say so.
		log.Printf("[Main] %v (using defaults)", err)
	}

	log.Printf("[Main] Starting studio (%.0fx%.0f canvas)", cfg.CanvasWidth, cfg.CanvasHeight)
	ui.RunApp(cfg)
}
