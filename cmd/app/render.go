package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/render"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var renderScale float64

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the diagram to an HTML chart or a PNG image",
	Long: `Write the diagram to the output file. A .png extension selects the
image renderer, anything else the echarts page.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		v, err := buildDiagram(cfg, log)
		if err != nil {
			return err
		}

		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "render")
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()

		o := render.Options{Delaunay: cfg.Delaunay, Hull: cfg.Delaunay}
		if strings.EqualFold(filepath.Ext(cfg.Output), ".png") {
			err = render.PNG(f, v, renderScale, o)
		} else {
			err = render.HTML(f, v, o)
		}
		// open cells are still drawn; only other failures abort
		for _, e := range multierr.Errors(err) {
			if !errors.Is(e, voronoi.ErrDisconnectedBoundary) {
				return e
			}
			log.Warn("[app] Cell drawn from a disconnected boundary", zap.Error(e))
		}
		log.Info("[app] Diagram written", zap.String("output", cfg.Output))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", config.Default().Output, "output file, .html or .png")
	renderCmd.Flags().Float64Var(&renderScale, "scale", 1, "pixels per plot unit for PNG output")
}
