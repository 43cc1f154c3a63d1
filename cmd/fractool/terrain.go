package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fractalgen/internal/config"
	"github.com/Faultbox/fractalgen/internal/export"
	"github.com/Faultbox/fractalgen/internal/logger"
	"github.com/Faultbox/fractalgen/internal/session"
	"github.com/Faultbox/fractalgen/pkg/noise"
	"github.com/Faultbox/fractalgen/pkg/terrain"
)

func cmdTerrain(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("terrain", flag.ExitOnError)
	noOBJ := fs.Bool("no-obj", false, "Skip the surface mesh")
	fs.Parse(args)

	tc := cfg.Terrain
	src, err := noise.NewSource(noise.Backend(tc.Backend), tc.NoiseSeed, tc.Period)
	if err != nil {
		return err
	}
	root, err := terrain.ParseRootPolicy(tc.RootPolicy)
	if err != nil {
		return err
	}

	points, err := terrain.Grid(tc.GridSize, -tc.Extent, tc.Extent)
	if err != nil {
		return err
	}

	off, seed := noise.SeededOffset(tc.OffsetSeed)
	fields := []zap.Field{
		zap.Int64("seed", seed),
		zap.Float64("x", off.X),
		zap.Float64("y", off.Y),
		zap.String("backend", tc.Backend),
	}
	if p, ok := src.(*noise.Perlin); ok {
		px, py := p.Period()
		fields = append(fields, zap.Float64("period_x", px), zap.Float64("period_y", py))
	}
	logger.Info("terrain offset", fields...)

	builder := terrain.NewBuilder(src, off)
	builder.Target = tc.Target()
	builder.Root = root

	s, err := session.NewTerrainSession(builder, points, tc.NoiseParams(), nil)
	if err != nil {
		return err
	}

	// Remaining args move sliders in order, e.g. octaves=6
	for _, arg := range fs.Args() {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("expected control=value, got %q", arg)
		}
		c, err := session.ParseControl(name)
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		if _, err := s.Set(c, v); err != nil {
			return err
		}
	}

	field := s.Field()
	fmt.Printf("Terrain %dx%d (%s)\n", tc.GridSize, tc.GridSize, s.Params())
	fmt.Printf("  raw range:    [%.4f, %.4f]\n", field.RawMin, field.RawMax)
	fmt.Printf("  target range: [%.4f, %.4f]\n", field.Target.Min, field.Target.Max)
	if field.Flat() {
		fmt.Println("  field is flat")
	}
	if sampler, err := terrain.NewSampler(field, tc.GridSize, -tc.Extent, tc.Extent); err == nil {
		fmt.Printf("  centre height: %.4f\n", sampler.HeightAt(0, 0))
	}

	w, err := newWriter(cfg)
	if err != nil {
		return err
	}

	img, err := export.HeightImage(field, tc.GridSize, tc.GridSize)
	if err != nil {
		return err
	}
	path, err := w.SaveImage("height", img)
	if err != nil {
		return err
	}
	fmt.Printf("  wrote %s\n", path)

	if *noOBJ {
		return nil
	}
	mesh, err := terrain.BuildSurface(points, field.Heights, terrain.GridTriangles(tc.GridSize))
	if err != nil {
		return err
	}
	path, err = w.Save("terrain", ".obj", func(out io.Writer) error {
		return export.WriteSurfaceOBJ(out, mesh)
	})
	if err != nil {
		return err
	}
	fmt.Printf("  wrote %s (%d triangles)\n", path, mesh.TriangleCount())
	return nil
}
