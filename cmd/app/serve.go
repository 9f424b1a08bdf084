package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/render"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/0x0FACED/go-voronoi/static"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive diagram page",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info("[app] Server started", zap.String("addr", cfg.Addr))
		return http.ListenAndServe(cfg.Addr, newRouter(cfg, log))
	},
}

func init() {
	serveCmd.Flags().String("addr", config.Default().Addr, "listen address")
}

func newRouter(base *config.Config, log *logger.ZapLogger) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", diagramHandler(base, log)).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/regions.json", regionsHandler(base, log)).Methods(http.MethodGet)
	router.HandleFunc("/sites/{index:[0-9]+}", siteHandler(base, log)).Methods(http.MethodGet)
	return router
}

// requestConfig copies base and applies the form or query values of r.
// Missing or malformed values keep the base setting.
func requestConfig(base *config.Config, r *http.Request) *config.Config {
	c := *base
	if err := r.ParseForm(); err != nil {
		return &c
	}
	if v, err := strconv.ParseFloat(r.FormValue("width"), 64); err == nil {
		c.Width = v
	}
	if v, err := strconv.ParseFloat(r.FormValue("height"), 64); err == nil {
		c.Height = v
	}
	if v, err := strconv.Atoi(r.FormValue("sites")); err == nil {
		c.Sites = v
	}
	if v, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		c.Seed = v
	}
	if r.Method == http.MethodPost {
		// unchecked boxes are not sent
		c.Generator = config.GeneratorGrid
		if r.FormValue("random") == "true" {
			c.Generator = config.GeneratorRandom
		}
		c.Delaunay = r.FormValue("delaunay") == "true"
	} else if g := r.FormValue("generator"); g != "" {
		c.Generator = g
	}
	return &c
}

// requestDiagram builds the diagram for one request, logging into a fresh
// buffer so the page can show the records of this build only.
func requestDiagram(base *config.Config, r *http.Request) (*config.Config, *voronoi.Voronoi, *logger.ZapLogger, error) {
	c := requestConfig(base, r)
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return c, nil, nil, err
	}
	reqLog := logger.New(logger.WithLevel(level))
	if err := c.Validate(); err != nil {
		return c, nil, reqLog, err
	}
	v, err := buildDiagram(c, reqLog)
	return c, v, reqLog, err
}

func diagramHandler(base *config.Config, log *logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, v, reqLog, err := requestDiagram(base, r)
		if err != nil {
			log.Error("[app] Diagram build failed", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer reqLog.ClearLogs()

		fmt.Fprintln(w, static.Head(c.Width, c.Height, c.Sites, c.Generator == config.GeneratorRandom, c.Delaunay))

		if err := render.HTML(w, v, render.Options{Delaunay: c.Delaunay, Hull: c.Delaunay}); err != nil {
			log.Error("[app] Chart render failed", zap.Error(err))
		}

		fmt.Fprintln(w, static.Logs)
		fmt.Fprintln(w, reqLog.HTML())
		fmt.Fprintln(w, static.Tail)
	}
}

type siteJSON struct {
	Index     int          `json:"index"`
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Region    [][2]float64 `json:"region"`
	Neighbors [][2]float64 `json:"neighbors"`
	Radius    float64      `json:"radius"`
}

type diagramJSON struct {
	Bounds [4]float64    `json:"bounds"`
	Sites  []siteJSON    `json:"sites"`
	Hull   [][2]float64  `json:"hull"`
	Stats  voronoi.Stats `json:"stats"`
	Errors []string      `json:"errors,omitempty"`
}

func pairs(points []geom.Point) [][2]float64 {
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// describe collects every per-site query of v. Diagnostics of disconnected
// boundaries end up in Errors instead of failing the whole answer.
func describe(v *voronoi.Voronoi) diagramJSON {
	lo, hi := v.PlotBounds().Min(), v.PlotBounds().Max()
	out := diagramJSON{
		Bounds: [4]float64{lo.X, lo.Y, hi.X, hi.Y},
		Stats:  v.Stats(),
	}

	regions, err := v.Regions()
	circles := v.Circles()
	for i, s := range v.Sites() {
		out.Sites = append(out.Sites, siteJSON{
			Index:     i,
			X:         s.X(),
			Y:         s.Y(),
			Region:    pairs(regions[i]),
			Neighbors: pairs(v.NeighborSites(s.Coord())),
			Radius:    circles[i].Radius,
		})
	}

	hull, hullErr := v.HullPointsInOrder()
	out.Hull = pairs(hull)
	for _, e := range multierr.Errors(multierr.Append(err, hullErr)) {
		out.Errors = append(out.Errors, e.Error())
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func regionsHandler(base *config.Config, log *logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, v, _, err := requestDiagram(base, r)
		if err != nil {
			log.Error("[app] Diagram build failed", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, describe(v))
	}
}

func siteHandler(base *config.Config, log *logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		index, _ := strconv.Atoi(vars["index"])

		_, v, _, err := requestDiagram(base, r)
		if err != nil {
			log.Error("[app] Diagram build failed", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		sites := v.Sites()
		if index >= len(sites) {
			err := errors.Wrapf(voronoi.ErrUnknownSite, "index %d of %d", index, len(sites))
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}

		s := sites[index]
		region, err := v.Region(s.Coord())
		out := siteJSON{
			Index:     index,
			X:         s.X(),
			Y:         s.Y(),
			Region:    pairs(region),
			Neighbors: pairs(v.NeighborSites(s.Coord())),
			Radius:    v.Circles()[index].Radius,
		}
		if err != nil {
			log.Warn("[app] Site region incomplete", zap.Int("index", index), zap.Error(err))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
