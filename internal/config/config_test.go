package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCanvas(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 800, cfg.CanvasWidth)
	assert.Equal(t, 600, cfg.CanvasHeight)
	assert.Equal(t, uint8(0xFF), cfg.Background.R)
	assert.Equal(t, 5, cfg.DefaultStrokeWidth)
	assert.Equal(t, 10, cfg.DefaultImageScale)
}

func TestClamp(t *testing.T) {
	cfg := Default()
	tests := []struct {
		name string
		in   int
		want int
		fn   func(int) int
	}{
		{"width below", 0, 1, cfg.ClampStrokeWidth},
		{"width inside", 42, 42, cfg.ClampStrokeWidth},
		{"width above", 250, 100, cfg.ClampStrokeWidth},
		{"scale below", 3, 10, cfg.ClampImageScale},
		{"scale inside", 55, 55, cfg.ClampImageScale},
		{"scale above", 101, 100, cfg.ClampImageScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}
