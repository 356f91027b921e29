package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagScheme      = flag.String("scheme", "", "Color scheme: terrain, heatmap, monochrome")
	flagHeightScale = flag.Float64("height-scale", 0, "Vertical exaggeration factor")
	flagChunkSize   = flag.Int("chunk-size", 0, "Chunk size in samples for large terrains")
	flagFlatNormals = flag.Bool("flat-normals", false, "Use per-face normals (faceted shading)")
	flagSeed        = flag.Int64("seed", 0, "Seed for procedural terrain generation")
	flagStatsAddr   = flag.String("stats-addr", "", "Listen address for the live stats endpoint")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagScheme != "" {
		cfg.Terrain.Scheme = *flagScheme
	}
	if *flagHeightScale != 0 {
		cfg.Terrain.HeightScale = float32(*flagHeightScale)
	}
	if *flagChunkSize > 0 {
		cfg.Terrain.ChunkSize = *flagChunkSize
	}
	if *flagFlatNormals {
		cfg.Terrain.FlatNormals = true
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagStatsAddr != "" {
		cfg.Stats.Enabled = true
		cfg.Stats.Addr = *flagStatsAddr
	}
}
