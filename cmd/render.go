package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/tlange/go-interactive-raytracer/pkg/renderer"
)

// RenderFrame renders a single frame and writes it to a timestamped PNG.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.DefaultConfig()
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.SamplesPerPixel = ctx.Int("spp")
	if config.Width <= 0 || config.Height <= 0 || config.SamplesPerPixel <= 0 {
		return fmt.Errorf("width, height and spp must be positive")
	}

	sc, camera, rt, err := setupRaytracer(ctx, config)
	if err != nil {
		return err
	}

	logger.Noticef("rendering %q at %dx%d (%d spp, %s)",
		ctx.String("scene"), config.Width, config.Height, config.SamplesPerPixel, ctx.String("mode"))

	buffer, stats := rt.Render(sc, camera)

	outputDir := filepath.Join(ctx.String("out"), ctx.String("scene"))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("could not create output directory: %v", err)
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	if err := savePNG(filename, buffer, config.Width, config.Height); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", filename)
	return nil
}

// savePNG wraps the raw RGBA buffer in an image and encodes it
func savePNG(filename string, buffer []byte, width, height int) error {
	img := &image.RGBA{
		Pix:    buffer,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create output file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("could not encode PNG: %v", err)
	}
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Samples/sec", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f", stats.SamplesPerSec),
		fmt.Sprintf("%s", stats.RenderTime),
	})
	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
