package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/tlange/go-interactive-raytracer/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "go-interactive-raytracer"
	app.Usage = "render analytic scenes with Whitted raytracing or path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a PNG file",
			Description: `
Render the selected demo scene with the configured light transport mode and
write the result to a timestamped PNG under the output directory.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 200,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 150,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 1,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 3,
					Usage: "maximum ray bounce depth",
				},
				cli.StringFlag{
					Name:  "mode",
					Value: "raytracing",
					Usage: "light transport mode: raytracing or pathtracing",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "scene name: default or studio",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed (0 uses the current time)",
				},
				cli.StringFlag{
					Name:  "out",
					Value: "output",
					Usage: "output directory",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "paths",
			Usage: "trace debug ray paths and print their classification",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count",
					Value: 10,
					Usage: "number of rays to trace",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 3,
					Usage: "maximum ray bounce depth",
				},
				cli.StringFlag{
					Name:  "mode",
					Value: "raytracing",
					Usage: "light transport mode: raytracing or pathtracing",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "scene name: default or studio",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed (0 uses the current time)",
				},
			},
			Action: cmd.TracePaths,
		},
		{
			Name:  "info",
			Usage: "print scene statistics",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "scene name: default or studio",
				},
			},
			Action: cmd.SceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
