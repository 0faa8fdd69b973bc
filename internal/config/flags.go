package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagSeed      = flag.Int64("seed", 0, "Noise seed override")
	flagLOD       = flag.Int("lod", -1, "Level of detail override (0 = finest)")
	flagWireframe = flag.Bool("wireframe", false, "Start in wireframe mode")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
)

var seedFlagSet bool

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedFlagSet = true
		}
	})
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
	if seedFlagSet {
		cfg.Map.Noise.Seed = *flagSeed
	}
	if *flagLOD >= 0 {
		cfg.Map.LevelOfDetail = *flagLOD
	}
	if *flagWireframe {
		cfg.Map.Wireframe = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
