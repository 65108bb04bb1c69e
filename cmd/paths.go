package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/tlange/go-interactive-raytracer/pkg/renderer"
)

// TracePaths traces debug ray paths through the scene and prints a table
// with each path's segment classification.
func TracePaths(ctx *cli.Context) error {
	setupLogging(ctx)

	count := ctx.Int("count")
	if count <= 0 {
		return fmt.Errorf("count must be positive")
	}

	sc, camera, rt, err := setupRaytracer(ctx, renderer.DefaultConfig())
	if err != nil {
		return err
	}

	paths := rt.TracePaths(sc, camera, count)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Ray", "Points", "Hit", "Segments"})
	for i, path := range paths {
		segments := make([]string, len(path.SegmentTypes))
		for j, segment := range path.SegmentTypes {
			segments[j] = string(segment)
		}
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", len(path.Points)),
			fmt.Sprintf("%t", path.Hit),
			strings.Join(segments, " -> "),
		})
	}
	table.Render()

	logger.Noticef("traced %d ray paths\n%s", count, buf.String())
	return nil
}
