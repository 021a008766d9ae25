package config

import (
	"fmt"

	"github.com/1broseidon/dome/internal/hub"
)

// ValidationError reports a bad value found while building the
// effective config, identifying the YAML path that produced it.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

// BuildEffectiveConfig overlays raw onto DefaultConfig, producing a
// fully-resolved Config ready to hand to the daemon.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Keymaps != nil {
		cfg.Keymaps = Keymap(raw.Keymaps)
	}
	if raw.LogLevel != nil {
		switch *raw.LogLevel {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = *raw.LogLevel
		default:
			return nil, &ValidationError{Path: "log_level", Err: fmt.Errorf("unknown level %q", *raw.LogLevel)}
		}
	}
	if raw.GapSize != nil {
		if *raw.GapSize < 0 {
			return nil, &ValidationError{Path: "gap_size", Err: fmt.Errorf("must be >= 0, got %d", *raw.GapSize)}
		}
		cfg.GapSize = *raw.GapSize
	}
	if raw.ScreenPadding != nil {
		if raw.ScreenPadding.Top != nil {
			cfg.ScreenPadding.Top = *raw.ScreenPadding.Top
		}
		if raw.ScreenPadding.Bottom != nil {
			cfg.ScreenPadding.Bottom = *raw.ScreenPadding.Bottom
		}
		if raw.ScreenPadding.Left != nil {
			cfg.ScreenPadding.Left = *raw.ScreenPadding.Left
		}
		if raw.ScreenPadding.Right != nil {
			cfg.ScreenPadding.Right = *raw.ScreenPadding.Right
		}
	}

	if raw.TabBarHeight != nil {
		cfg.Hub.TabBarHeight = *raw.TabBarHeight
	}
	if raw.BorderSize != nil {
		cfg.Hub.BorderSize = *raw.BorderSize
	}
	if raw.AutoTile != nil {
		cfg.Hub.AutoTile = *raw.AutoTile
	}
	if raw.MinWidth != nil {
		cfg.Hub.MinWidth = resolveMeasure(*raw.MinWidth)
	}
	if raw.MinHeight != nil {
		cfg.Hub.MinHeight = resolveMeasure(*raw.MinHeight)
	}
	if raw.MaxWidth != nil {
		cfg.Hub.MaxWidth = resolveMeasure(*raw.MaxWidth)
	}
	if raw.MaxHeight != nil {
		cfg.Hub.MaxHeight = resolveMeasure(*raw.MaxHeight)
	}

	return cfg, nil
}

func resolveMeasure(m RawMeasure) hub.Measure {
	if m.Fraction != nil {
		return hub.MeasureFraction(*m.Fraction)
	}
	if m.Pixels != nil {
		return hub.MeasurePixels(*m.Pixels)
	}
	return hub.Measure{}
}
