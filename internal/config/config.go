// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Stats    StatsConfig    `yaml:"stats"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// TerrainConfig holds mesh build settings.
type TerrainConfig struct {
	HeightScale float32 `yaml:"height_scale"`
	ChunkSize   int     `yaml:"chunk_size"`
	Scheme      string  `yaml:"scheme"`
	FlatNormals bool    `yaml:"flat_normals"`

	// MaxDimension is the advisory per-axis grid size limit. Larger
	// grids still load, with a warning and chunked rendering forced.
	MaxDimension int `yaml:"max_dimension"`

	// Procedural generation, used when no heightmap file is given.
	GenerateWidth  int     `yaml:"generate_width"`
	GenerateHeight int     `yaml:"generate_height"`
	Seed           int64   `yaml:"seed"`
	Octaves        int     `yaml:"octaves"`
	Amplitude      float32 `yaml:"amplitude"`
}

// CameraConfig holds initial camera settings.
type CameraConfig struct {
	// FovDegrees is the vertical field of view.
	FovDegrees  float32 `yaml:"fov_degrees"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	MaxDistance float32 `yaml:"max_distance"`
}

// StatsConfig holds the live stats endpoint settings.
type StatsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Terrain: TerrainConfig{
			HeightScale:    1.0,
			ChunkSize:      256,
			Scheme:         "terrain",
			MaxDimension:   8192,
			GenerateWidth:  512,
			GenerateHeight: 512,
			Seed:           1,
			Octaves:        5,
			Amplitude:      40,
		},
		Camera: CameraConfig{
			FovDegrees:  60,
			Near:        0.1,
			Far:         4000,
			MaxDistance: 2000,
		},
		Stats: StatsConfig{
			Enabled: false,
			Addr:    "127.0.0.1:8777",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
