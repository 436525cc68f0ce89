// Package wand parses wand command flags and draws casts to stdout.
package wand

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	entrypoint "github.com/NathanSnail/rand-wand/internal/platform/cmd"
	"github.com/NathanSnail/rand-wand/internal/rng"
	wandgen "github.com/NathanSnail/rand-wand/internal/wand"
)

// Config holds wand command configuration.
type Config struct {
	Preset string `env:"RAND_WAND_PRESET" envDefault:"starter"`
	Count  int    `env:"RAND_WAND_COUNT"  envDefault:"1"`
	Seed   int64  `env:"RAND_WAND_SEED"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "wand preset to draw from")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of casts to draw")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for deterministic casts (0 draws a fresh seed)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run draws the configured casts and prints one per line to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWand, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		fresh, err := rng.NewSeed()
		if err != nil {
			return err
		}
		seed = fresh
		log.Printf("using seed %d", seed)
	}

	gen, err := wandgen.New(wandgen.Preset(cfg.Preset), rng.NewSource(seed))
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		cast, err := gen.Cast()
		if err != nil {
			return fmt.Errorf("cast %d: %w", i, err)
		}
		fmt.Fprintln(out, strings.Join(cast, " "))
	}
	return nil
}
