package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderScene renders a built-in scene or a scene file to an image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() > 1 {
		return errors.New("render takes a single scene name or scene file")
	}
	nameOrFile := ctx.Args().First()
	if nameOrFile == "" {
		nameOrFile = "default"
	}

	sc, err := loadScene(nameOrFile)
	if err != nil {
		return err
	}

	options := renderOptions(ctx, sc)
	rt, err := renderer.NewRaytracer(sc, options)
	if err != nil {
		return err
	}

	// Ctrl-C stops the workers after their current tile
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %s (%dx%d, %d spp, depth %d, seed %d)", sc.Name,
		options.Sampling.Width, options.Sampling.Height, options.Sampling.SamplesPerPixel, options.Sampling.MaxDepth, options.Seed)

	img, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == "" {
		out = filepath.Join("output", sc.Name+".png")
	}
	if err := imageio.Save(out, img); err != nil {
		return err
	}

	logger.Noticef("render statistics\n%s", renderStatsTable(stats))
	logger.Noticef("saved %s", out)
	return nil
}

// renderOptions merges command line flags over the scene's own settings
func renderOptions(ctx *cli.Context, sc *scene.Scene) renderer.Options {
	if ctx.IsSet("width") || ctx.IsSet("height") {
		width, height := sc.SamplingConfig.Width, sc.SamplingConfig.Height
		if ctx.IsSet("width") {
			width = ctx.Int("width")
		}
		if ctx.IsSet("height") {
			height = ctx.Int("height")
		}
		sc.Resize(width, height)
	}
	if ctx.IsSet("spp") {
		sc.SamplingConfig.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		sc.SamplingConfig.MaxDepth = ctx.Int("depth")
	}

	options := renderer.DefaultOptions(sc.SamplingConfig)
	options.TileSize = ctx.Int("tile")
	options.Workers = ctx.Int("workers")
	options.Seed = ctx.Int64("seed")
	return options
}

func renderStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "Rays", "Busy"})
	for _, ws := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.ID),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%d", ws.Pixels),
			fmt.Sprintf("%d", ws.Samples),
			fmt.Sprintf("%d", ws.Rays),
			ws.Busy.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		"",
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f rays/s", stats.RaysPerSecond()),
		stats.Elapsed.Round(time.Millisecond).String(),
	})

	table.Render()
	return buf.String()
}
