package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/log"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using path tracing"
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
			Usage: "render a built-in scene or a scene file",
			Description: `
Render a scene and write the image to disk. The argument is either the id of a
built-in scene (see the scenes command) or a JSON scene file. Width, height,
samples and depth default to the scene's own settings.

The image format follows the output extension: png, jpg, bmp or tif.
Press Ctrl-C to stop the render.`,
			ArgsUsage: "[scene | scene_file.json]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: 32,
					Usage: "tile size in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers, 0 for one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed; renders with the same seed and tile size are identical",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename (default: output/<scene>.png)",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "validate",
			Usage:     "check scene files for errors",
			ArgsUsage: "scene_file1.json scene_file2.json ...",
			Action:    cmd.ValidateScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("pathtracer").Error(err)
		os.Exit(1)
	}
}
