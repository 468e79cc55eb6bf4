// Package responsive converts nominal design-unit sizes into sizes adjusted
// for the current display surface, and classifies the surface into coarse
// size buckets.
//
// All functions are pure: they read only the Metrics and Baseline they are
// given. Callers recompute a Scaler whenever the display is resized.
package responsive

import "math"

// Default tuning values.
const (
	// DefaultBaseWidth and DefaultBaseHeight describe a standard ~5" phone.
	DefaultBaseWidth  = 350
	DefaultBaseHeight = 680

	// DefaultModerateFactor is the damping applied by ModerateScaleDefault.
	DefaultModerateFactor = 0.5

	// DefaultMinFontRatio is the smallest fraction of its nominal size a
	// font is allowed to shrink to.
	DefaultMinFontRatio = 0.8
)

// Metrics is a snapshot of the display surface size in design points.
type Metrics struct {
	Width  float64
	Height float64
}

// Baseline is the reference surface all scale factors are relative to.
type Baseline struct {
	Width  float64
	Height float64
}

// DefaultBaseline returns the 350x680 reference.
func DefaultBaseline() Baseline {
	return Baseline{Width: DefaultBaseWidth, Height: DefaultBaseHeight}
}

// Options tunes a Scaler. Zero values are replaced with defaults by
// NewScaler, except a ModerateFactor marked with ModerateFactorSet: a
// factor of 0 is meaningful and leaves sizes unscaled.
type Options struct {
	Baseline          Baseline
	ModerateFactor    float64
	ModerateFactorSet bool
	MinFontRatio      float64
	Breakpoints       Breakpoints
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		Baseline:       DefaultBaseline(),
		ModerateFactor:    DefaultModerateFactor,
		ModerateFactorSet: true,
		MinFontRatio:      DefaultMinFontRatio,
		Breakpoints:       DefaultBreakpoints(),
	}
}

// Scaler computes device-adjusted sizes for one Metrics snapshot.
// It is an immutable value; build a new one when the metrics change.
type Scaler struct {
	metrics Metrics
	opts    Options
}

// NewScaler returns a Scaler for the given metrics. Unset option fields
// fall back to their defaults.
func NewScaler(m Metrics, opts Options) Scaler {
	def := DefaultOptions()
	if opts.Baseline.Width == 0 {
		opts.Baseline.Width = def.Baseline.Width
	}
	if opts.Baseline.Height == 0 {
		opts.Baseline.Height = def.Baseline.Height
	}
	if opts.ModerateFactor == 0 && !opts.ModerateFactorSet {
		opts.ModerateFactor = def.ModerateFactor
	}
	opts.ModerateFactorSet = true
	if opts.MinFontRatio == 0 {
		opts.MinFontRatio = def.MinFontRatio
	}
	if opts.Breakpoints == (Breakpoints{}) {
		opts.Breakpoints = def.Breakpoints
	}
	return Scaler{metrics: m, opts: opts}
}

// Metrics returns the snapshot this scaler was built from.
func (s Scaler) Metrics() Metrics {
	return s.metrics
}

// Options returns the effective options, defaults applied.
func (s Scaler) Options() Options {
	return s.opts
}

// WidthFactor is the ratio of current width to baseline width.
func (s Scaler) WidthFactor() float64 {
	return s.metrics.Width / s.opts.Baseline.Width
}

// HeightFactor is the ratio of current height to baseline height.
func (s Scaler) HeightFactor() float64 {
	return s.metrics.Height / s.opts.Baseline.Height
}

// Scale scales size linearly with the surface width. It never clamps.
func (s Scaler) Scale(size float64) float64 {
	return size * s.WidthFactor()
}

// VerticalScale scales size linearly with the surface height.
func (s Scaler) VerticalScale(size float64) float64 {
	return size * s.HeightFactor()
}

// ModerateScale blends the nominal size and the fully scaled size, i.e.
// size + (Scale(size)-size)*factor. factor 0 returns size unchanged and
// factor 1 returns Scale(size), both exactly. The factor is not range
// checked.
func (s Scaler) ModerateScale(size, factor float64) float64 {
	return size*(1-factor) + s.Scale(size)*factor
}

// ModerateScaleDefault is ModerateScale with the configured default factor.
func (s Scaler) ModerateScaleDefault(size float64) float64 {
	return s.ModerateScale(size, s.opts.ModerateFactor)
}

// FontSize scales a font size but never below MinFontRatio of its nominal
// value.
func (s Scaler) FontSize(size float64) float64 {
	return math.Max(s.Scale(size), size*s.opts.MinFontRatio)
}

// SizeClass classifies the current width.
func (s Scaler) SizeClass() SizeClass {
	return Classify(s.metrics.Width, s.opts.Breakpoints)
}
