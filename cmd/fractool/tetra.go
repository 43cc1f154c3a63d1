package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/fractalgen/internal/config"
	"github.com/Faultbox/fractalgen/internal/export"
	"github.com/Faultbox/fractalgen/internal/logger"
	"github.com/Faultbox/fractalgen/internal/session"
	"github.com/Faultbox/fractalgen/pkg/fractal"
)

func cmdTetra(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tetra", flag.ExitOnError)
	sweep := fs.Bool("sweep", false, "Write every depth from 0 up to -depth")
	statsOnly := fs.Bool("stats", false, "Print stats only, write no files")
	fs.Parse(args)

	strategy, err := fractal.ParseStrategy(cfg.Fractal.Strategy)
	if err != nil {
		return err
	}
	depth := cfg.Fractal.Depth
	if depth < 0 {
		return fmt.Errorf("%w: %d", fractal.ErrNegativeDepth, depth)
	}
	if depth > fractal.MaxPracticalDepth {
		logger.Warn("depth beyond practical limit",
			zap.Int("depth", depth),
			zap.Int("limit", fractal.MaxPracticalDepth),
			zap.Int64("buffer_bytes", fractal.BufferBytes(depth)))
	}

	w, err := newWriter(cfg)
	if err != nil {
		return err
	}

	s, err := session.NewFractalSession(strategy, max(cfg.Fractal.MaxDepth, depth), nil)
	if err != nil {
		return err
	}

	write := func(m *fractal.Mesh) error {
		printMeshStats(m)
		if *statsOnly {
			return nil
		}
		path, err := w.Save("tetra-d"+strconv.Itoa(m.Depth), ".obj", func(out io.Writer) error {
			return export.WriteOBJ(out, m.Vertices, m.Indices)
		})
		if err != nil {
			return err
		}
		logger.Debug("mesh written", zap.String("path", path), zap.Int("depth", m.Depth))
		fmt.Printf("  wrote %s\n", path)
		return nil
	}

	if !*sweep {
		mesh, err := s.SetDepth(depth)
		if err != nil {
			return err
		}
		return write(mesh)
	}

	if err := write(s.Mesh()); err != nil {
		return err
	}
	// Stop at the first depth whose mesh could not be written
	var writeErr error
	s.OnRebuild = func(m *fractal.Mesh) {
		writeErr = write(m)
	}
	for s.Depth() < depth {
		if _, err := s.Increment(); err != nil {
			return err
		}
		if writeErr != nil {
			return writeErr
		}
	}
	return nil
}

func printMeshStats(m *fractal.Mesh) {
	b := m.Bounds()
	fmt.Printf("Depth %d (%s)\n", m.Depth, m.Strategy)
	fmt.Printf("  leaves:    %d\n", m.LeafCount())
	fmt.Printf("  vertices:  %d\n", len(m.Vertices))
	fmt.Printf("  triangles: %d\n", len(m.Indices))
	fmt.Printf("  buffers:   %s\n", formatBytes(fractal.BufferBytes(m.Depth)))
	fmt.Printf("  bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func cmdGrowth(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("growth", flag.ExitOnError)
	maxDepth := fs.Int("max", fractal.MaxPracticalDepth+2, "Last depth to print")
	fs.Parse(args)

	last := min(*maxDepth, fractal.MaxDepth)
	fmt.Printf("%-6s %12s %12s %12s %12s\n", "depth", "leaves", "vertices", "triangles", "buffers")
	for d := 0; d <= last; d++ {
		marker := ""
		if d > fractal.MaxPracticalDepth {
			marker = "  *"
		}
		fmt.Printf("%-6d %12d %12d %12d %12s%s\n", d,
			fractal.LeafCount(d), fractal.VertexCount(d), fractal.TriangleCount(d),
			formatBytes(fractal.BufferBytes(d)), marker)
	}
	if last > fractal.MaxPracticalDepth {
		fmt.Printf("\n* beyond the practical interactive limit of %d\n", fractal.MaxPracticalDepth)
	}
	return nil
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
