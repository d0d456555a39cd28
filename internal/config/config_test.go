package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML SplashConfig
	if err := yaml.Unmarshal(defaultSplashYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if fromYAML != DefaultSplashConfig() {
		t.Errorf("embedded YAML drifted from DefaultSplashConfig:\nyaml: %+v\ncode: %+v",
			fromYAML, DefaultSplashConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte("physics:\n  gravity: 500\n  boundary_bounce: 0.5\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Physics.Gravity != 500 {
		t.Errorf("gravity = %v, want 500 from custom file", cfg.Physics.Gravity)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing explicit path should fail")
	}
}

func TestTuningConversion(t *testing.T) {
	tun := DefaultSplashConfig().Tuning()

	if tun.Gravity != 2000 {
		t.Errorf("gravity = %v, want 2000", tun.Gravity)
	}
	if tun.Ground.LandingThreshold != 150 || tun.Letter.LandingThreshold != 200 {
		t.Errorf("landing thresholds = %v/%v, want 150/200",
			tun.Ground.LandingThreshold, tun.Letter.LandingThreshold)
	}
	if tun.Ground.Friction != 0.95 || tun.Letter.Friction != 0.98 {
		t.Errorf("frictions = %v/%v, want 0.95/0.98", tun.Ground.Friction, tun.Letter.Friction)
	}
}

func TestFeelPresets(t *testing.T) {
	base := DefaultSplashConfig()

	floaty := base
	ApplyFeelPreset(&floaty, FeelFloaty)
	if floaty.Physics.Gravity >= base.Physics.Gravity {
		t.Error("floaty preset did not reduce gravity")
	}
	if floaty.Materials.Ground.Bounce <= base.Materials.Ground.Bounce {
		t.Error("floaty preset did not increase bounce")
	}
	if floaty.Materials.Ground.LandingThreshold != base.Materials.Ground.LandingThreshold {
		t.Error("preset should not touch landing thresholds")
	}

	heavy := base
	ApplyFeelPreset(&heavy, FeelHeavy)
	if heavy.Physics.Gravity <= base.Physics.Gravity {
		t.Error("heavy preset did not increase gravity")
	}

	normal := base
	ApplyFeelPreset(&normal, FeelNormal)
	if normal != base {
		t.Error("normal preset changed the config")
	}
}

func TestParseFeelPreset(t *testing.T) {
	for input, want := range map[string]FeelPreset{
		"":       FeelNormal,
		"normal": FeelNormal,
		"floaty": FeelFloaty,
		"heavy":  FeelHeavy,
	} {
		got, ok := ParseFeelPreset(input)
		if !ok || got != want {
			t.Errorf("ParseFeelPreset(%q) = %v, %v; want %v, true", input, got, ok, want)
		}
	}
	if _, ok := ParseFeelPreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}
