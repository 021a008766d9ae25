package config

import "testing"

func ptrInt(v int) *int         { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrBool(v bool) *bool      { return &v }
func ptrStr(v string) *string   { return &v }

func TestBuildEffectiveConfigDefaults(t *testing.T) {
	cfg, err := BuildEffectiveConfig(RawConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if !cfg.Hub.AutoTile {
		t.Fatalf("expected default auto_tile true")
	}
}

func TestBuildEffectiveConfigOverridesHubFields(t *testing.T) {
	raw := RawConfig{
		TabBarHeight: ptrFloat(30),
		BorderSize:   ptrFloat(4),
		AutoTile:     ptrBool(false),
		MinWidth:     &RawMeasure{Pixels: ptrFloat(120)},
	}
	cfg, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Hub.TabBarHeight != 30 || cfg.Hub.BorderSize != 4 || cfg.Hub.AutoTile {
		t.Fatalf("hub fields not applied: %+v", cfg.Hub)
	}
	if cfg.Hub.MinWidth.Resolve(1000) != 120 {
		t.Fatalf("expected resolved min width 120, got %v", cfg.Hub.MinWidth.Resolve(1000))
	}
}

func TestBuildEffectiveConfigRejectsUnknownLogLevel(t *testing.T) {
	_, err := BuildEffectiveConfig(RawConfig{LogLevel: ptrStr("verbose")})
	if err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}

func TestBuildEffectiveConfigRejectsNegativeGap(t *testing.T) {
	_, err := BuildEffectiveConfig(RawConfig{GapSize: ptrInt(-1)})
	if err == nil {
		t.Fatal("expected an error for a negative gap size")
	}
}

func TestRawConfigMergeOverlaysKeymaps(t *testing.T) {
	base := RawConfig{Keymaps: map[string]string{"super+h": "focus_left"}}
	overlay := RawConfig{Keymaps: map[string]string{"super+l": "focus_right"}}
	merged := base.merge(overlay)
	if merged.Keymaps["super+h"] != "focus_left" || merged.Keymaps["super+l"] != "focus_right" {
		t.Fatalf("expected merged keymaps from both layers, got %v", merged.Keymaps)
	}
}
