// Command quadbench fills a quadtree with random points, counts near
// neighbours with one range query per point, and repeats for several rounds,
// clearing the tree in between.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robert-butts/quadtree/v2"
	"github.com/robert-butts/quadtree/v2/internal/workload"
)

// Config holds the benchmark settings.
type Config struct {
	Points    int     `mapstructure:"points"`
	Rounds    int     `mapstructure:"rounds"`
	Width     float64 `mapstructure:"width"`
	Height    float64 `mapstructure:"height"`
	Capacity  int     `mapstructure:"capacity"`
	MaxDepth  int     `mapstructure:"max-depth"`
	QueryHalf float64 `mapstructure:"query-half"`
	Radius    float64 `mapstructure:"radius"`
	Workers   int     `mapstructure:"workers"`
	Seed      int64   `mapstructure:"seed"`
	GeoJSON   string  `mapstructure:"geojson"`
	Color     bool    `mapstructure:"color"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("quadbench: ")

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(args []string) (Config, error) {
	var c Config
	v := viper.New()
	flags := pflag.NewFlagSet("quadbench", pflag.ContinueOnError)
	flags.Int("points", 20000, "points inserted per round")
	flags.Int("rounds", 5, "number of rounds")
	flags.Float64("width", 200, "domain width")
	flags.Float64("height", 200, "domain height")
	flags.Int("capacity", quadtree.DefaultCapacity, "points per leaf before it splits")
	flags.Int("max-depth", quadtree.DefaultMaxDepth, "depth at which nodes stop splitting")
	flags.Float64("query-half", 10, "half-extent of the square queried around each point")
	flags.Float64("radius", 3, "neighbour distance")
	flags.Int("workers", 10, "parallel query batches")
	flags.Int64("seed", 0, "random seed, 0 for time based")
	flags.String("geojson", "", "write the first round's tree as GeoJSON to this path")
	flags.Bool("color", true, "colour the report")
	configFile := flags.String("config", "", "config file (yaml, toml, json or env)")
	if err := flags.Parse(args); err != nil {
		return c, err
	}
	if err := v.BindPFlags(flags); err != nil {
		return c, err
	}

	v.SetEnvPrefix("QUADBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return c, errors.Wrapf(err, "read %s", *configFile)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	if c.Points < 0 || c.Rounds < 0 {
		return c, errors.Errorf("points (%d) and rounds (%d) must not be negative", c.Points, c.Rounds)
	}
	return c, nil
}

func run(ctx context.Context, cfg Config) error {
	tree, err := quadtree.NewWithConfig(
		quadtree.NewRectangle(cfg.Width/2.0, cfg.Height/2.0, cfg.Width/2.0, cfg.Height/2.0),
		&quadtree.Config{Capacity: cfg.Capacity, MaxDepth: cfg.MaxDepth},
	)
	if err != nil {
		return err
	}
	locked := quadtree.NewLocked(tree)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	au := aurora.NewAurora(cfg.Color)
	opts := workload.Options{QueryHalf: cfg.QueryHalf, Radius: cfg.Radius, Workers: cfg.Workers}

	fmt.Printf("seed %d, %d points over %gx%g, capacity %d\n", seed, cfg.Points, cfg.Width, cfg.Height, tree.Capacity())
	for i := 0; i < cfg.Rounds; i++ {
		points := workload.RandomPoints(rng, cfg.Points, cfg.Width, cfg.Height)
		if i == 0 && cfg.GeoJSON != "" {
			if err := writeGeoJSON(locked, points, cfg.GeoJSON); err != nil {
				return err
			}
		}
		round, err := workload.RunRound(ctx, locked, points, opts)
		if err != nil {
			return errors.Wrapf(err, "round %d", i)
		}
		fmt.Printf("Round %d: Found %d overlapping points (%d nodes, depth %d, insert %s, query %s)\n",
			i,
			au.Green(round.Neighbours),
			au.Cyan(round.Stats.Nodes),
			round.Stats.MaxDepth,
			round.InsertTime.Round(time.Microsecond),
			round.QueryTime.Round(time.Microsecond),
		)
		if round.Stats.Overflow > 0 {
			fmt.Println(au.Yellow(fmt.Sprintf("  %d points held past capacity at the depth limit", round.Stats.Overflow)))
		}
	}
	return nil
}

// writeGeoJSON fills the tree with points, dumps it and clears it again.
func writeGeoJSON(tree *quadtree.Locked, points []quadtree.Point, path string) error {
	defer tree.Clear()
	if _, err := tree.InsertAll(points); err != nil {
		return err
	}
	data, err := json.Marshal(tree.FeatureCollection(true))
	if err != nil {
		return errors.Wrap(err, "encode geojson")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	log.Printf("wrote %s", path)
	return nil
}
