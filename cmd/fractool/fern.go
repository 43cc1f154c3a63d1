package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractalgen/internal/config"
	"github.com/Faultbox/fractalgen/internal/export"
	"github.com/Faultbox/fractalgen/internal/logger"
	"github.com/Faultbox/fractalgen/pkg/ifs"
)

func cmdFern(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("fern", flag.ExitOnError)
	n := fs.Int("n", cfg.Fern.Points, "Number of points")
	fs.Parse(args)

	seed := cfg.Fern.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("fern", zap.Int("points", *n), zap.Int64("seed", seed))

	points, err := ifs.Fern(*n, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	lo, hi := ifs.Bounds(points)
	fmt.Printf("Fern: %d points, x [%.3f, %.3f], y [%.3f, %.3f]\n", len(points), lo.X, hi.X, lo.Y, hi.Y)

	w, err := newWriter(cfg)
	if err != nil {
		return err
	}
	size := cfg.Output.ImageSize
	path, err := w.SaveImage("fern", export.PointsImage(points, size/2, size))
	if err != nil {
		return err
	}
	fmt.Printf("  wrote %s\n", path)
	return nil
}
