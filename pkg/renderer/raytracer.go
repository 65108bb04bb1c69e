package renderer

import (
	"math/rand"
	"time"

	"github.com/tlange/go-interactive-raytracer/log"
	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/integrator"
	"github.com/tlange/go-interactive-raytracer/pkg/scene"
)

// RenderMode selects the light transport algorithm
type RenderMode string

const (
	ModeRaytracing  RenderMode = "raytracing"
	ModePathtracing RenderMode = "pathtracing"
)

// Config is the mutable configuration surface of the raytracer. It is read
// at the start of each render or path-trace call and never validated by the
// core; degenerate values are a caller precondition.
type Config struct {
	Width           int
	Height          int
	MaxBounces      int
	SamplesPerPixel int
	Mode            RenderMode
}

// DefaultConfig returns the interactive preview defaults
func DefaultConfig() Config {
	return Config{
		Width:           200,
		Height:          150,
		MaxBounces:      3,
		SamplesPerPixel: 1,
		Mode:            ModeRaytracing,
	}
}

// Raytracer orchestrates per-pixel sampling and dispatches rays to the
// configured integrator. Each render call is a pure function of the current
// scene/camera/config snapshot plus the sampler's stream.
type Raytracer struct {
	Config  Config
	sampler core.Sampler
	logger  log.Logger
}

// NewRaytracer creates a raytracer drawing randomness from the given
// sampler. A nil sampler gets a time-seeded one; tests pass a fixed-seed
// sampler for reproducible output.
func NewRaytracer(config Config, sampler core.Sampler) *Raytracer {
	if sampler == nil {
		sampler = core.NewRandomSampler(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &Raytracer{
		Config:  config,
		sampler: sampler,
		logger:  log.New("renderer"),
	}
}

func (rt *Raytracer) integrator() integrator.Integrator {
	if rt.Config.Mode == ModePathtracing {
		return integrator.NewPathTracer()
	}
	return integrator.NewWhitted()
}

// Render computes per-pixel radiance for the scene as seen from the camera.
// The buffer is RGBA8, row-major with the top row first, alpha fixed at 255.
func (rt *Raytracer) Render(s *scene.Scene, camera *Camera) ([]byte, RenderStats) {
	config := rt.Config
	active := rt.integrator()
	buffer := make([]byte, config.Width*config.Height*4)
	startTime := time.Now()

	for y := 0; y < config.Height; y++ {
		for x := 0; x < config.Width; x++ {
			color := core.NewVec3(0, 0, 0)

			// Multi-sampling with random jitter inside the pixel cell
			for sample := 0; sample < config.SamplesPerPixel; sample++ {
				jitter := rt.sampler.Get2D()
				u := (float64(x) + jitter.X) / float64(config.Width)
				v := 1.0 - (float64(y)+jitter.Y)/float64(config.Height) // v=1 is image top

				ray := camera.GetRay(u, v)
				color = color.Add(active.RayColor(ray, s, rt.sampler, config.MaxBounces))
			}

			// Average, clamp and quantize
			color = color.Multiply(1.0 / float64(config.SamplesPerPixel)).Clamp(0, 1)
			index := (y*config.Width + x) * 4
			buffer[index] = uint8(color.X * 255)
			buffer[index+1] = uint8(color.Y * 255)
			buffer[index+2] = uint8(color.Z * 255)
			buffer[index+3] = 255
		}
	}

	stats := newRenderStats(config, time.Since(startTime))
	rt.logger.Debugf("rendered %dx%d (%d spp, %s) in %s",
		config.Width, config.Height, config.SamplesPerPixel, config.Mode, stats.RenderTime)
	return buffer, stats
}

// TracePaths generates count primary rays at random image coordinates and
// records the geometric path each takes through the scene, classified per
// segment for the external debug renderer.
func (rt *Raytracer) TracePaths(s *scene.Scene, camera *Camera, count int) []integrator.RayPath {
	active := rt.integrator()
	paths := make([]integrator.RayPath, 0, count)

	for i := 0; i < count; i++ {
		sample := rt.sampler.Get2D()
		ray := camera.GetRay(sample.X, sample.Y)
		paths = append(paths, active.TracePath(ray, s, rt.sampler, rt.Config.MaxBounces))
	}

	return paths
}
