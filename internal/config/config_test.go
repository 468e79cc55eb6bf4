//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gccma/gccma/internal/responsive"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/gccma.log",
			expected: filepath.Join(home, "logs", "gccma.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/gccma.log",
			expected: "/var/log/gccma.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/gccma.log",
			expected: "logs/gccma.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want a %s directory", paths[0], appName)
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global.toml")
	local := filepath.Join(dir, "local.toml")

	writeFile(t, global, `
icons = "nerd"
theme = "dark"

[church]
name = "First Church"
website = "https://first.example/"

[layout]
baseline_width = 400
`)
	writeFile(t, local, `
icons = "none"

[layout]
moderate_factor = 0.25
`)

	cfg, err := LoadFrom([]string{global, local, filepath.Join(dir, "missing.toml")})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Icons != "none" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "none")
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.Church.Name != "First Church" {
		t.Errorf("Church.Name = %q, want %q", cfg.Church.Name, "First Church")
	}
	if cfg.Church.Website != "https://first.example" {
		t.Errorf("Church.Website = %q, want trailing slash trimmed", cfg.Church.Website)
	}
	if cfg.Layout.BaselineWidth != 400 {
		t.Errorf("Layout.BaselineWidth = %v, want 400", cfg.Layout.BaselineWidth)
	}
	if cfg.Layout.ModerateFactor == nil || *cfg.Layout.ModerateFactor != 0.25 {
		t.Errorf("Layout.ModerateFactor = %v, want 0.25", cfg.Layout.ModerateFactor)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "icons = [unterminated")

	if _, err := LoadFrom([]string{path}); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML")
	}
}

func TestLoadFrom_NoFiles(t *testing.T) {
	cfg, err := LoadFrom(nil)
	if err != nil {
		t.Fatalf("LoadFrom(nil) error = %v", err)
	}
	if cfg.Icons != "" || cfg.Theme != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestGetLayoutConfig_Defaults(t *testing.T) {
	cfg := Config{}
	layout := cfg.GetLayoutConfig()

	if layout.BaselineWidth != 350 {
		t.Errorf("BaselineWidth = %v, want 350", layout.BaselineWidth)
	}
	if layout.BaselineHeight != 680 {
		t.Errorf("BaselineHeight = %v, want 680", layout.BaselineHeight)
	}
	if *layout.ModerateFactor != 0.5 {
		t.Errorf("ModerateFactor = %v, want 0.5", *layout.ModerateFactor)
	}
	if layout.MinFontRatio != 0.8 {
		t.Errorf("MinFontRatio = %v, want 0.8", layout.MinFontRatio)
	}
	if layout.ReferenceColumns != 80 {
		t.Errorf("ReferenceColumns = %d, want 80", layout.ReferenceColumns)
	}
	if layout.ReferenceRows != 24 {
		t.Errorf("ReferenceRows = %d, want 24", layout.ReferenceRows)
	}
	want := BreakpointsConfig{Small: 320, Medium: 375, Large: 414}
	if layout.Breakpoints != want {
		t.Errorf("Breakpoints = %+v, want %+v", layout.Breakpoints, want)
	}
}

func TestGetLayoutConfig_InvalidValues(t *testing.T) {
	cfg := Config{
		Layout: LayoutConfig{
			BaselineWidth:  -1,  // negative, should become 350
			ModerateFactor: ptr(1.5), // > 1, should become 0.5
			MinFontRatio:   -2,  // negative, should become 0.8
			Breakpoints: BreakpointsConfig{
				Small:  400, // not ascending, whole table reset
				Medium: 300,
				Large:  500,
			},
		},
	}

	layout := cfg.GetLayoutConfig()

	if layout.BaselineWidth != 350 {
		t.Errorf("BaselineWidth with invalid value = %v, want 350", layout.BaselineWidth)
	}
	if *layout.ModerateFactor != 0.5 {
		t.Errorf("ModerateFactor with invalid value = %v, want 0.5", *layout.ModerateFactor)
	}
	if layout.MinFontRatio != 0.8 {
		t.Errorf("MinFontRatio with invalid value = %v, want 0.8", layout.MinFontRatio)
	}
	if layout.Breakpoints.Small != 320 || layout.Breakpoints.Medium != 375 || layout.Breakpoints.Large != 414 {
		t.Errorf("Breakpoints with invalid values = %+v, want defaults", layout.Breakpoints)
	}
}

func TestGetLayoutConfig_CustomValues(t *testing.T) {
	cfg := Config{
		Layout: LayoutConfig{
			BaselineWidth:    400,
			BaselineHeight:   800,
			ModerateFactor:   ptr(1.0),
			MinFontRatio:     0.9,
			ReferenceColumns: 100,
			ReferenceRows:    30,
			Breakpoints:      BreakpointsConfig{Small: 300, Medium: 360, Large: 420},
		},
	}

	layout := cfg.GetLayoutConfig()
	if layout != cfg.Layout {
		t.Errorf("GetLayoutConfig() = %+v, want unchanged %+v", layout, cfg.Layout)
	}
}

func TestLayoutConfig_ScalerOptions(t *testing.T) {
	cfg := Config{}
	opts := cfg.GetLayoutConfig().ScalerOptions()

	def := responsive.DefaultOptions()
	if opts != def {
		t.Errorf("ScalerOptions() = %+v, want %+v", opts, def)
	}
}

func TestLayoutConfig_Grid(t *testing.T) {
	cfg := Config{}
	grid := cfg.GetLayoutConfig().Grid()

	if grid != responsive.DefaultGrid() {
		t.Errorf("Grid() = %+v, want %+v", grid, responsive.DefaultGrid())
	}
}

func TestGetChurchConfig_Defaults(t *testing.T) {
	cfg := Config{}
	church := cfg.GetChurchConfig()

	if church.ShortName != "GCCMA" {
		t.Errorf("ShortName = %q, want GCCMA", church.ShortName)
	}
	if church.Email != "info@gccma.org" {
		t.Errorf("Email = %q, want info@gccma.org", church.Email)
	}
	if len(church.ServiceTimes) == 0 {
		t.Error("ServiceTimes should have defaults")
	}
}

func TestGetChurchConfig_KeepsCustomValues(t *testing.T) {
	cfg := Config{Church: ChurchConfig{Name: "Hillside Chapel", Phone: "555-0100"}}
	church := cfg.GetChurchConfig()

	if church.Name != "Hillside Chapel" {
		t.Errorf("Name = %q, want Hillside Chapel", church.Name)
	}
	if church.Phone != "555-0100" {
		t.Errorf("Phone = %q, want 555-0100", church.Phone)
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"", "info"},
		{"debug", "debug"},
		{"WARN", "warn"},
		{"error", "error"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		cfg := Config{Log: LogConfig{Level: tt.level}}
		if got := cfg.GetLogLevel(); got != tt.want {
			t.Errorf("GetLogLevel(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func ptr(v float64) *float64 { return &v }

func TestGetLayoutConfig_ZeroFactorKept(t *testing.T) {
	cfg := Config{Layout: LayoutConfig{ModerateFactor: ptr(0)}}
	layout := cfg.GetLayoutConfig()
	if *layout.ModerateFactor != 0 {
		t.Errorf("ModerateFactor = %v, want 0", *layout.ModerateFactor)
	}
	opts := layout.ScalerOptions()
	if opts.ModerateFactor != 0 || !opts.ModerateFactorSet {
		t.Errorf("ScalerOptions() = %+v, want explicit zero factor", opts)
	}
	s := responsive.NewScaler(responsive.Metrics{Width: 700, Height: 680}, opts)
	if got := s.ModerateScaleDefault(16); got != 16 {
		t.Errorf("ModerateScaleDefault(16) with factor 0 = %v, want 16", got)
	}
}

func TestGetLayoutConfig_NaNRejected(t *testing.T) {
	nan := math.NaN()
	cfg := Config{Layout: LayoutConfig{
		BaselineWidth:  nan,
		ModerateFactor: &nan,
		MinFontRatio:   nan,
		Breakpoints:    BreakpointsConfig{Small: nan, Medium: 375, Large: 414},
	}}
	layout := cfg.GetLayoutConfig()
	if layout.BaselineWidth != 350 {
		t.Errorf("BaselineWidth = %v, want 350", layout.BaselineWidth)
	}
	if *layout.ModerateFactor != 0.5 {
		t.Errorf("ModerateFactor = %v, want 0.5", *layout.ModerateFactor)
	}
	if layout.MinFontRatio != 0.8 {
		t.Errorf("MinFontRatio = %v, want 0.8", layout.MinFontRatio)
	}
	if layout.Breakpoints.Small != 320 {
		t.Errorf("Breakpoints.Small = %v, want 320", layout.Breakpoints.Small)
	}
}

func TestLoadFrom_ZeroFactor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[layout]\nmoderate_factor = 0.0\n")

	cfg, err := LoadFrom([]string{path})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if got := *cfg.GetLayoutConfig().ModerateFactor; got != 0 {
		t.Errorf("ModerateFactor = %v, want 0", got)
	}
}
