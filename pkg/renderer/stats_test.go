package renderer

import (
	"testing"
	"time"
)

func TestNewRenderStats(t *testing.T) {
	config := Config{Width: 100, Height: 50, SamplesPerPixel: 4}

	stats := newRenderStats(config, 2*time.Second)

	if stats.TotalPixels != 5000 {
		t.Errorf("Expected 5000 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 20000 {
		t.Errorf("Expected 20000 samples, got %d", stats.TotalSamples)
	}
	if stats.SamplesPerSec != 10000 {
		t.Errorf("Expected 10000 samples/sec, got %f", stats.SamplesPerSec)
	}
}

func TestNewRenderStats_ZeroElapsed(t *testing.T) {
	stats := newRenderStats(Config{Width: 10, Height: 10, SamplesPerPixel: 1}, 0)

	if stats.SamplesPerSec != 0 {
		t.Errorf("Expected zero rate for zero elapsed time, got %f", stats.SamplesPerSec)
	}
}
