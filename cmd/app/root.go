package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/sitegen"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const version = "0.2.0"

var (
	configFile string

	// cfg is loaded before any command runs; flags set on the command line
	// override the file.
	cfg *config.Config

	// log mirrors to stderr for the commands themselves.
	log *logger.ZapLogger
)

var rootCmd = &cobra.Command{
	Use:   "voronoi",
	Short: "Voronoi diagrams and Delaunay triangulations with Fortune's sweep.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return startup(cmd.Flags())
	},
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "TOML configuration file")
	def := config.Default()
	flags.Float64("width", def.Width, "plot width")
	flags.Float64("height", def.Height, "plot height")
	flags.Int("sites", def.Sites, "number of sites")
	flags.String("generator", def.Generator, "site layout: grid or random")
	flags.Int64("seed", def.Seed, "random generator seed, 0 uses the clock")
	flags.Bool("delaunay", def.Delaunay, "overlay the Delaunay triangulation")
	flags.String("log-level", def.LogLevel, "debug, info, warn or error")

	rootCmd.AddCommand(versionCmd, serveCmd, renderCmd, regionsCmd)
}

// startup reads the configuration file, applies the flags the user set and
// builds the command logger.
func startup(flags *pflag.FlagSet) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, flags); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log = logger.New(logger.WithLevel(level), logger.WithOutput(os.Stderr))
	return nil
}

func applyFlags(c *config.Config, flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "width":
			c.Width, err = flags.GetFloat64(f.Name)
		case "height":
			c.Height, err = flags.GetFloat64(f.Name)
		case "sites":
			c.Sites, err = flags.GetInt(f.Name)
		case "generator":
			c.Generator, err = flags.GetString(f.Name)
		case "seed":
			c.Seed, err = flags.GetInt64(f.Name)
		case "delaunay":
			c.Delaunay, err = flags.GetBool(f.Name)
		case "log-level":
			c.LogLevel, err = flags.GetString(f.Name)
		case "addr":
			c.Addr, err = flags.GetString(f.Name)
		case "output":
			c.Output, err = flags.GetString(f.Name)
		}
	})
	return err
}

// buildDiagram generates the configured sites and runs the sweep over them.
func buildDiagram(c *config.Config, log *logger.ZapLogger) (*voronoi.Voronoi, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	points, err := sitegen.Generate(c.Generator, c.Sites, c.Width, c.Height, rng)
	if err != nil {
		return nil, err
	}
	log.Info("[app] Sites generated", zap.String("generator", c.Generator), zap.Int("sites", len(points)), zap.Int64("seed", seed))

	return voronoi.New(points,
		voronoi.WithBounds(geom.RectFromMinSize(0, 0, c.Width, c.Height)),
		voronoi.WithLogger(log),
	)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("voronoi v%s\n", version)
	},
}
