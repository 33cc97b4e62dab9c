package config

import "image/color"

// Config holds the fixed parameters of the whiteboard. Nothing here is
// read from disk; Default is the only source.
type Config struct {
	Title string

	// Logical canvas size. The raster buffer and the display share it.
	CanvasWidth  int
	CanvasHeight int

	Background color.RGBA
	PenColor   color.RGBA

	DefaultStrokeWidth int
	MinStrokeWidth     int
	MaxStrokeWidth     int

	DefaultImageScale int // percent
	MinImageScale     int
	MaxImageScale     int

	PlaceholderText  string
	PlaceholderColor color.RGBA
	PlaceholderSize  float32

	SidebarColor color.RGBA
	SidebarWidth float32
}

// Default returns the stock whiteboard configuration.
func Default() Config {
	return Config{
		Title:              "Advanced Digital Whiteboard",
		CanvasWidth:        800,
		CanvasHeight:       600,
		Background:         color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		PenColor:           color.RGBA{A: 0xFF},
		DefaultStrokeWidth: 5,
		MinStrokeWidth:     1,
		MaxStrokeWidth:     100,
		DefaultImageScale:  10,
		MinImageScale:      10,
		MaxImageScale:      100,
		PlaceholderText:    "You can drag and drop any picture here.",
		PlaceholderColor:   color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
		PlaceholderSize:    16,
		SidebarColor:       color.RGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF},
		SidebarWidth:       160,
	}
}

// ClampStrokeWidth forces n into the configured stroke width bounds.
func (c Config) ClampStrokeWidth(n int) int {
	return clamp(n, c.MinStrokeWidth, c.MaxStrokeWidth)
}

// ClampImageScale forces pct into the configured image scale bounds.
func (c Config) ClampImageScale(pct int) int {
	return clamp(pct, c.MinImageScale, c.MaxImageScale)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
