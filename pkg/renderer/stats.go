package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels   int           // Number of pixels rendered
	TotalSamples  int           // Number of primary samples taken
	RenderTime    time.Duration // Wall-clock render duration
	SamplesPerSec float64       // Primary samples per second
}

func newRenderStats(config Config, elapsed time.Duration) RenderStats {
	pixels := config.Width * config.Height
	samples := pixels * config.SamplesPerPixel

	perSec := 0.0
	if elapsed > 0 {
		perSec = float64(samples) / elapsed.Seconds()
	}

	return RenderStats{
		TotalPixels:   pixels,
		TotalSamples:  samples,
		RenderTime:    elapsed,
		SamplesPerSec: perSec,
	}
}
