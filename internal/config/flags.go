package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagOut         = flag.String("out", "", "Output directory")
	flagDepth       = flag.Int("depth", -1, "Fractal subdivision depth")
	flagStrategy    = flag.String("strategy", "", "Subdivision strategy")
	flagGrid        = flag.Int("grid", 0, "Terrain samples per axis")
	flagOctaves     = flag.Int("octaves", 0, "Noise octaves")
	flagPersistence = flag.Float64("persistence", 0, "Noise persistence")
	flagLacunarity  = flag.Float64("lacunarity", 0, "Noise lacunarity")
	flagBackend     = flag.String("backend", "", "Noise backend (perlin, aquilax, opensimplex)")
	flagSeed        = flag.Int64("seed", 0, "Offset and fern seed (0 = clock)")
	flagFormat      = flag.String("format", "", "Image format (png, bmp, tiff)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagDepth >= 0 {
		cfg.Fractal.Depth = *flagDepth
	}
	if *flagStrategy != "" {
		cfg.Fractal.Strategy = *flagStrategy
	}
	if *flagGrid > 0 {
		cfg.Terrain.GridSize = *flagGrid
	}
	if *flagOctaves > 0 {
		cfg.Terrain.Octaves = *flagOctaves
	}
	if *flagPersistence > 0 {
		cfg.Terrain.Persistence = *flagPersistence
	}
	if *flagLacunarity > 0 {
		cfg.Terrain.Lacunarity = *flagLacunarity
	}
	if *flagBackend != "" {
		cfg.Terrain.Backend = *flagBackend
	}
	if *flagSeed != 0 {
		cfg.Terrain.OffsetSeed = *flagSeed
		cfg.Fern.Seed = *flagSeed
	}
	if *flagFormat != "" {
		cfg.Output.ImageFormat = *flagFormat
	}
}
