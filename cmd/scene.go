package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/urfave/cli"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/renderer"
	"github.com/tlange/go-interactive-raytracer/pkg/scene"
)

// sceneByName maps a CLI scene name to its constructor
func sceneByName(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "studio":
		return scene.NewStudioScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (available: default, studio)", name)
	}
}

// modeByName maps a CLI mode name to a render mode
func modeByName(name string) (renderer.RenderMode, error) {
	switch name {
	case "raytracing":
		return renderer.ModeRaytracing, nil
	case "pathtracing":
		return renderer.ModePathtracing, nil
	default:
		return "", fmt.Errorf("unknown mode %q (available: raytracing, pathtracing)", name)
	}
}

// samplerFromSeed builds the sampler all stochastic calls draw from.
// A zero seed means non-reproducible output.
func samplerFromSeed(seed int64) core.Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// setupRaytracer builds the scene, camera and raytracer from CLI flags
// shared by the render and paths commands.
func setupRaytracer(ctx *cli.Context, config renderer.Config) (*scene.Scene, *renderer.Camera, *renderer.Raytracer, error) {
	sc, err := sceneByName(ctx.String("scene"))
	if err != nil {
		return nil, nil, nil, err
	}

	mode, err := modeByName(ctx.String("mode"))
	if err != nil {
		return nil, nil, nil, err
	}
	config.Mode = mode
	config.MaxBounces = ctx.Int("bounces")

	camera := renderer.NewDefaultCamera()
	if config.Width > 0 && config.Height > 0 {
		camera.AspectRatio = float64(config.Width) / float64(config.Height)
	}

	rt := renderer.NewRaytracer(config, samplerFromSeed(ctx.Int64("seed")))
	return sc, camera, rt, nil
}
