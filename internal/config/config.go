// Package config holds the runtime configuration for the visualizer.
// Defaults match the lab handout; a JSON overrides file is optional.
package config

import (
	"encoding/json"
	"image/color"
	"os"
	"time"

	"calib-lab/internal/transform"
)

// Color is a BGR triple, the channel order used by the raster layer.
type Color struct {
	B uint8 `json:"b"`
	G uint8 `json:"g"`
	R uint8 `json:"r"`
}

// RGBA converts to the color type the drawing functions take.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0}
}

// Visualizer configures the transformation visualizer: window, sample
// image source, control table, and loop timing.
type Visualizer struct {
	WindowTitle        string `json:"window_title"`
	ImageURL           string `json:"image_url"`
	ImageFile          string `json:"image_file"`
	DownloadTimeoutSec int    `json:"download_timeout_sec"`
	PollIntervalMs     int    `json:"poll_interval_ms"`
	Background         Color  `json:"background"`

	Sliders transform.SliderSet `json:"-"`
}

// Default returns the standard lab configuration.
func Default() Visualizer {
	return Visualizer{
		WindowTitle:        "Transformation Visualizer",
		ImageURL:           "https://images.unsplash.com/photo-1599420186946-7b6fb4e297f0?q=80&w=1887&auto=format&fit=crop",
		ImageFile:          "transformation_sample.jpg",
		DownloadTimeoutSec: 10,
		PollIntervalMs:     20,
		Background:         Color{B: 47, G: 53, R: 66},
		Sliders:            transform.DefaultSliders(),
	}
}

// Load returns Default overlaid with values from a JSON file. Missing or
// unreadable files are not an error; the defaults stand.
func Load(path string) Visualizer {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_ = json.Unmarshal(data, &cfg)
	return cfg
}

// DownloadTimeout returns the download timeout as a duration.
func (v Visualizer) DownloadTimeout() time.Duration {
	return time.Duration(v.DownloadTimeoutSec) * time.Second
}

// PollInterval returns the per-frame key poll timeout.
func (v Visualizer) PollInterval() time.Duration {
	return time.Duration(v.PollIntervalMs) * time.Millisecond
}
