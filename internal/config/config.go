// Package config handles generator configuration loading and management.
package config

import (
	"github.com/Faultbox/fractalgen/pkg/noise"
	"github.com/Faultbox/fractalgen/pkg/terrain"
)

// Config holds all generator settings.
type Config struct {
	Fractal FractalConfig `yaml:"fractal"`
	Terrain TerrainConfig `yaml:"terrain"`
	Fern    FernConfig    `yaml:"fern"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// FractalConfig holds tetrahedron fractal settings.
type FractalConfig struct {
	Depth    int    `yaml:"depth"`
	Strategy string `yaml:"strategy"`  // corner-midpoint, scale-toward-vertex, scale-offset
	MaxDepth int    `yaml:"max_depth"` // refuse interactive increments past this
}

// TerrainConfig holds height field settings.
type TerrainConfig struct {
	GridSize    int     `yaml:"grid_size"` // samples per axis
	Extent      float64 `yaml:"extent"`    // grid covers [-extent, extent]
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	TargetMin   float64 `yaml:"target_min"`
	TargetMax   float64 `yaml:"target_max"`
	Backend     string  `yaml:"backend"` // perlin, aquilax, opensimplex
	NoiseSeed   int64   `yaml:"noise_seed"`
	Period      float64 `yaml:"period"`
	OffsetSeed  int64   `yaml:"offset_seed"` // 0 = seed from the clock
	RootPolicy  string  `yaml:"root_policy"` // clamp, signed
}

// FernConfig holds Barnsley fern settings.
type FernConfig struct {
	Points int   `yaml:"points"`
	Seed   int64 `yaml:"seed"` // 0 = seed from the clock
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	ImageFormat string `yaml:"image_format"` // png, bmp, tiff
	ImageSize   int    `yaml:"image_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Fractal: FractalConfig{
			Depth:    0,
			Strategy: "corner-midpoint",
			MaxDepth: 7,
		},
		Terrain: TerrainConfig{
			GridSize:    200,
			Extent:      1,
			Octaves:     4,
			Persistence: 0.4,
			Lacunarity:  3,
			TargetMin:   terrain.DefaultTarget.Min,
			TargetMax:   terrain.DefaultTarget.Max,
			Backend:     string(noise.BackendPerlin),
			Period:      noise.DefaultPeriod,
			RootPolicy:  "clamp",
		},
		Fern: FernConfig{
			Points: 100000,
		},
		Output: OutputConfig{
			Dir:         "out",
			ImageFormat: "png",
			ImageSize:   512,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// NoiseParams returns the configured octave parameters.
func (t TerrainConfig) NoiseParams() noise.Params {
	return noise.Params{
		Octaves:     t.Octaves,
		Persistence: t.Persistence,
		Lacunarity:  t.Lacunarity,
	}
}

// Target returns the configured elevation range.
func (t TerrainConfig) Target() terrain.Range {
	return terrain.Range{Min: t.TargetMin, Max: t.TargetMax}
}
