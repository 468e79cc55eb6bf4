package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gccma/gccma/internal/responsive"
)

const appName = "gccma"

type Config struct {
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"
	Theme       string `koanf:"theme"`        // "light" or "dark" (default: saved preference, else "light")
	StartScreen string `koanf:"start_screen"` // tab to open after sign-in (default: last used, else "home")

	Church ChurchConfig `koanf:"church"`
	Layout LayoutConfig `koanf:"layout"`
	Log    LogConfig    `koanf:"log"`
}

// ChurchConfig holds the church details shown on the home and connect screens.
type ChurchConfig struct {
	Name         string   `koanf:"name"`
	ShortName    string   `koanf:"short_name"`
	Tagline      string   `koanf:"tagline"`
	Phone        string   `koanf:"phone"`
	Email        string   `koanf:"email"`
	Address      string   `koanf:"address"`
	Website      string   `koanf:"website"`
	Facebook     string   `koanf:"facebook"`
	Instagram    string   `koanf:"instagram"`
	YouTube      string   `koanf:"youtube"`
	Twitter      string   `koanf:"twitter"`
	ServiceTimes []string `koanf:"service_times"`
}

// LayoutConfig tunes the responsive scale calculator.
type LayoutConfig struct {
	BaselineWidth    float64           `koanf:"baseline_width"`    // design points (default: 350)
	BaselineHeight   float64           `koanf:"baseline_height"`   // design points (default: 680)
	ModerateFactor   *float64          `koanf:"moderate_factor"`   // 0.0-1.0 (default: 0.5)
	MinFontRatio     float64           `koanf:"min_font_ratio"`    // 0.0-1.0 (default: 0.8)
	ReferenceColumns int               `koanf:"reference_columns"` // terminal columns equal to baseline width (default: 80)
	ReferenceRows    int               `koanf:"reference_rows"`    // terminal rows equal to baseline height (default: 24)
	Breakpoints      BreakpointsConfig `koanf:"breakpoints"`
}

// BreakpointsConfig holds the size class thresholds in design points.
type BreakpointsConfig struct {
	Small  float64 `koanf:"small"`  // default: 320
	Medium float64 `koanf:"medium"` // default: 375
	Large  float64 `koanf:"large"`  // default: 414
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/gccma/gccma.log
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads the given config files in order; later files win.
// Missing files are skipped.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	cfg.Church.Website = strings.TrimSuffix(cfg.Church.Website, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/gccma/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLayoutConfig returns the layout configuration with defaults applied.
func (c *Config) GetLayoutConfig() LayoutConfig {
	cfg := c.Layout

	if !positive(cfg.BaselineWidth) {
		cfg.BaselineWidth = responsive.DefaultBaseWidth
	}
	if !positive(cfg.BaselineHeight) {
		cfg.BaselineHeight = responsive.DefaultBaseHeight
	}
	// 0 is a valid damping factor: sizes stay nominal.
	if f := cfg.ModerateFactor; f == nil || math.IsNaN(*f) || *f < 0 || *f > 1 {
		def := responsive.DefaultModerateFactor
		cfg.ModerateFactor = &def
	}
	if !positive(cfg.MinFontRatio) || cfg.MinFontRatio > 1 {
		cfg.MinFontRatio = responsive.DefaultMinFontRatio
	}
	if cfg.ReferenceColumns <= 0 {
		cfg.ReferenceColumns = responsive.DefaultReferenceColumns
	}
	if cfg.ReferenceRows <= 0 {
		cfg.ReferenceRows = responsive.DefaultReferenceRows
	}

	// Breakpoints must stay ascending; fall back to the stock table otherwise.
	bp := cfg.Breakpoints
	def := responsive.DefaultBreakpoints()
	if !positive(bp.Small) || !(bp.Medium > bp.Small) || !(bp.Large > bp.Medium) {
		cfg.Breakpoints = BreakpointsConfig{Small: def.Small, Medium: def.Medium, Large: def.Large}
	}

	return cfg
}

// positive is false for NaN as well as for zero and negatives.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// ScalerOptions converts the layout configuration into responsive options.
func (l LayoutConfig) ScalerOptions() responsive.Options {
	factor := responsive.DefaultModerateFactor
	if l.ModerateFactor != nil {
		factor = *l.ModerateFactor
	}
	return responsive.Options{
		Baseline:          responsive.Baseline{Width: l.BaselineWidth, Height: l.BaselineHeight},
		ModerateFactor:    factor,
		ModerateFactorSet: true,
		MinFontRatio:      l.MinFontRatio,
		Breakpoints: responsive.Breakpoints{
			Small:  l.Breakpoints.Small,
			Medium: l.Breakpoints.Medium,
			Large:  l.Breakpoints.Large,
			XLarge: responsive.DefaultBreakpoints().XLarge,
		},
	}
}

// Grid returns the terminal-to-points mapping for this layout.
func (l LayoutConfig) Grid() responsive.Grid {
	return responsive.Grid{
		Columns:  l.ReferenceColumns,
		Rows:     l.ReferenceRows,
		Baseline: responsive.Baseline{Width: l.BaselineWidth, Height: l.BaselineHeight},
	}
}

// GetChurchConfig returns the church details with defaults applied.
func (c *Config) GetChurchConfig() ChurchConfig {
	cfg := c.Church

	if cfg.Name == "" {
		cfg.Name = "Grace Community Church"
	}
	if cfg.ShortName == "" {
		cfg.ShortName = "GCCMA"
	}
	if cfg.Tagline == "" {
		cfg.Tagline = "Growing in Christ, Changing the World"
	}
	if cfg.Phone == "" {
		cfg.Phone = "+1 (555) 123-4567"
	}
	if cfg.Email == "" {
		cfg.Email = "info@gccma.org"
	}
	if cfg.Address == "" {
		cfg.Address = "123 Church Street, Faith City, FC 12345"
	}
	if cfg.Website == "" {
		cfg.Website = "www.gccma.org"
	}
	if cfg.Facebook == "" {
		cfg.Facebook = "https://facebook.com/gccma"
	}
	if cfg.Instagram == "" {
		cfg.Instagram = "https://instagram.com/gccma"
	}
	if cfg.YouTube == "" {
		cfg.YouTube = "https://youtube.com/gccma"
	}
	if cfg.Twitter == "" {
		cfg.Twitter = "https://twitter.com/gccma"
	}
	if len(cfg.ServiceTimes) == 0 {
		cfg.ServiceTimes = []string{"Sunday 10:00 AM", "Wednesday 7:00 PM"}
	}

	return cfg
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		return strings.ToLower(c.Log.Level)
	default:
		return "info"
	}
}
