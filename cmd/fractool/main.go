// fractool generates Sierpinski tetrahedra, noise terrain and the
// Barnsley fern and writes them out as OBJ meshes and images.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/fractalgen/internal/config"
	"github.com/Faultbox/fractalgen/internal/export"
	"github.com/Faultbox/fractalgen/internal/logger"
)

func main() {
	// Global flags come before the command
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	var run func(*config.Config, []string) error
	switch command {
	case "tetra", "t":
		run = cmdTetra
	case "terrain", "tr":
		run = cmdTerrain
	case "fern", "f":
		run = cmdFern
	case "growth", "g":
		run = cmdGrowth
	case "config":
		run = cmdConfig
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := run(cfg, args[1:]); err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fractool - fractal and terrain generator

Usage:
  fractool [global options] <command> [options]

Commands:
  tetra [-sweep]                 Build a Sierpinski tetrahedron, write OBJ
  terrain [control=value ...]    Build a noise height field, write OBJ and height map
  fern                           Plot the Barnsley fern
  growth [-max N]                Print the vertex/triangle growth table
  config [-save path]            Print (or save) the effective config

Global options:
  -config path      Config file (default ./config.yaml, then user config dir)
  -out dir          Output directory
  -depth N          Subdivision depth
  -strategy name    corner-midpoint, scale-toward-vertex, scale-offset
  -grid N           Terrain samples per axis
  -octaves N, -persistence F, -lacunarity F
  -backend name     perlin, aquilax, opensimplex
  -seed N           Offset and fern seed (0 = clock)
  -format name      png, bmp, tiff
  -debug            Debug logging

Examples:
  fractool -depth 4 tetra
  fractool -strategy scale-offset -depth 3 tetra -sweep
  fractool -grid 256 terrain octaves=6 lacunarity=2.5
  fractool -seed 42 -format tiff fern
  fractool growth -max 10`)
}

// newWriter returns the output writer for cfg.
func newWriter(cfg *config.Config) (*export.Writer, error) {
	format, err := export.ParseFormat(cfg.Output.ImageFormat)
	if err != nil {
		return nil, err
	}
	return export.NewWriter(cfg.Output.Dir, "fractool", format), nil
}
