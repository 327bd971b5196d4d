// Command regiongen writes a procedurally generated settlement dataset as
// YAML, ready for the tradewinds CLI.
package main

import (
	"flag"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/tradewinds/internal/dataset"
	"github.com/talgya/tradewinds/internal/region"
)

func main() {
	var (
		name  = flag.String("name", "The Reaches", "region name")
		seed  = flag.Int64("seed", 0, "generation seed; 0 picks one")
		count = flag.Int("settlements", 12, "number of settlements")
		out   = flag.String("out", "", "output path; empty writes to stdout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := region.GenConfig{Name: *name, Seed: *seed, Settlements: *count}
	settlements := region.Generate(cfg)

	file := dataset.RegionFile{Region: *name, Settlements: settlements}
	raw, err := yaml.Marshal(file)
	if err != nil {
		slog.Error("marshal region", "error", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(raw)
		return
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		slog.Error("write region", "error", err)
		os.Exit(1)
	}
	slog.Info("region written", "path", *out, "settlements", len(settlements))
}
