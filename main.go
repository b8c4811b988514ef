// Package main provides the entry point for the Transformation Visualizer.
package main

import (
	"fmt"
	"log"

	"calib-lab/internal/config"
	"calib-lab/internal/sample"
	"calib-lab/internal/visualizer"
	"calib-lab/pkg/geometry"
)

// Optional JSON overrides for the lab defaults.
const configFile = "visualizer.json"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load(configFile)

	img, err := sample.Fetch(cfg.ImageURL, cfg.ImageFile, cfg.DownloadTimeout(), cfg.Background.RGBA())
	if err != nil {
		log.Printf("Image acquisition failed: %v", err)
		fmt.Println("Could not load or create a sample image. Exiting.")
		return
	}
	defer img.Close()

	ui := visualizer.NewUI(cfg, img)
	defer ui.Close()

	fmt.Println("\nAdjust sliders. Press 'm' to switch modes. Press 'ESC' to quit.")

	center := geometry.Size{
		Width:  float64(img.Cols()),
		Height: float64(img.Rows()),
	}.Center()

	if err := visualizer.Run(ui, ui, cfg.Sliders, center, cfg.PollInterval()); err != nil {
		log.Printf("Display loop failed: %v", err)
	}

	fmt.Println("Application closed.")
}
