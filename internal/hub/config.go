package hub

// Measure is a value expressed either as an absolute pixel count or as a
// fraction of the monitor's corresponding dimension, resolved against
// the active screen before handing a plain float to the layout code.
type Measure struct {
	Pixels   float64
	Fraction float64 // 0 when unset; only one of Pixels/Fraction should be nonzero
}

// MeasurePixels builds an absolute-pixel Measure.
func MeasurePixels(px float64) Measure { return Measure{Pixels: px} }

// MeasureFraction builds a Measure expressed as a fraction of the
// monitor's dimension (e.g. 0.5 for half the screen).
func MeasureFraction(f float64) Measure { return Measure{Fraction: f} }

// Resolve returns the Measure in pixels given the monitor's extent along
// the relevant axis.
func (m Measure) Resolve(monitorExtent float64) float64 {
	if m.Fraction > 0 {
		return m.Fraction * monitorExtent
	}
	return m.Pixels
}

// Config is the subset of external configuration the layout engine and
// graph operations consult directly. Everything else recognized by
// config.yaml (keymaps, log level, gap size, screen padding) lives in internal/config
// and never reaches the Hub.
type Config struct {
	TabBarHeight float64
	BorderSize   float64
	AutoTile     bool

	MinWidth  Measure
	MinHeight Measure
	MaxWidth  Measure
	MaxHeight Measure
}

// DefaultConfig supplies sane built-in defaults for the fields the Hub
// cares about.
func DefaultConfig() Config {
	return Config{
		TabBarHeight: 24,
		BorderSize:   2,
		AutoTile:     true,
	}
}
