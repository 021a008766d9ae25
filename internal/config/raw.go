package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RawMeasure mirrors hub.Measure on the wire: either an absolute pixel
// count or a fraction of the monitor's extent ("50%").
type RawMeasure struct {
	Pixels   *float64
	Fraction *float64
}

func (m *RawMeasure) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("measure must be a number or a percentage string")
	}
	if value.Tag == "!!str" {
		var frac float64
		if _, err := fmt.Sscanf(value.Value, "%f%%", &frac); err != nil {
			return fmt.Errorf("invalid percentage %q: %w", value.Value, err)
		}
		f := frac / 100
		m.Fraction = &f
		return nil
	}
	var px float64
	if err := value.Decode(&px); err != nil {
		return fmt.Errorf("invalid measure %q: %w", value.Value, err)
	}
	m.Pixels = &px
	return nil
}

type RawMargins struct {
	Top    *int `yaml:"top"`
	Bottom *int `yaml:"bottom"`
	Left   *int `yaml:"left"`
	Right  *int `yaml:"right"`
}

// RawConfig is the YAML-tagged shape of ~/.config/dome/config.yaml.
// Every field is a pointer so merge can distinguish "unset" from "set
// to the zero value."
type RawConfig struct {
	Keymaps       map[string]string `yaml:"keymaps"`
	LogLevel      *string           `yaml:"log_level"`
	GapSize       *int              `yaml:"gap_size"`
	ScreenPadding *RawMargins       `yaml:"screen_padding"`

	TabBarHeight *float64 `yaml:"tab_bar_height"`
	BorderSize   *float64 `yaml:"border_size"`
	AutoTile     *bool    `yaml:"auto_tile"`

	MinWidth  *RawMeasure `yaml:"min_width"`
	MinHeight *RawMeasure `yaml:"min_height"`
	MaxWidth  *RawMeasure `yaml:"max_width"`
	MaxHeight *RawMeasure `yaml:"max_height"`
}

// merge overlays non-nil fields of overlay onto c, so layered config
// sources (defaults, then file, then env) can be combined field by
// field instead of wholesale.
func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.Keymaps != nil {
		if out.Keymaps == nil {
			out.Keymaps = make(map[string]string, len(overlay.Keymaps))
		}
		for chord, action := range overlay.Keymaps {
			out.Keymaps[chord] = action
		}
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.GapSize != nil {
		out.GapSize = overlay.GapSize
	}
	if overlay.ScreenPadding != nil {
		if out.ScreenPadding == nil {
			out.ScreenPadding = &RawMargins{}
		}
		merged := mergeRawMargins(*out.ScreenPadding, *overlay.ScreenPadding)
		out.ScreenPadding = &merged
	}
	if overlay.TabBarHeight != nil {
		out.TabBarHeight = overlay.TabBarHeight
	}
	if overlay.BorderSize != nil {
		out.BorderSize = overlay.BorderSize
	}
	if overlay.AutoTile != nil {
		out.AutoTile = overlay.AutoTile
	}
	if overlay.MinWidth != nil {
		out.MinWidth = overlay.MinWidth
	}
	if overlay.MinHeight != nil {
		out.MinHeight = overlay.MinHeight
	}
	if overlay.MaxWidth != nil {
		out.MaxWidth = overlay.MaxWidth
	}
	if overlay.MaxHeight != nil {
		out.MaxHeight = overlay.MaxHeight
	}
	return out
}

func mergeRawMargins(base, overlay RawMargins) RawMargins {
	out := base
	if overlay.Top != nil {
		out.Top = overlay.Top
	}
	if overlay.Bottom != nil {
		out.Bottom = overlay.Bottom
	}
	if overlay.Left != nil {
		out.Left = overlay.Left
	}
	if overlay.Right != nil {
		out.Right = overlay.Right
	}
	return out
}
