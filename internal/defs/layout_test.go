package defs

import (
	"os"
	"path/filepath"
	"testing"

	"sarian/internal/config"
)

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLayoutAndApply(t *testing.T) {
	path := writeLayout(t, `{
		"shield": {"wide": [{"x": -60, "y": 0, "radius": 20}, {"x": 60, "y": 0, "radius": 20}]},
		"moons": [{"radius": 150, "start_angle": 10, "speed": 0.5}]
	}`)

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	base := config.Default()
	cfg := layout.Apply(base)
	cfg.Shield.Variant = "wide"

	if cfg.Shield.Variant != "wide" {
		t.Fatalf("variant = %q, want wide", cfg.Shield.Variant)
	}
	if got := len(cfg.Shield.LocalCircles()); got != 2 {
		t.Fatalf("wide circles = %d, want 2", got)
	}
	if len(cfg.Shield.Circles[config.ShieldTriple]) != 3 {
		t.Fatal("built-in variants lost after Apply")
	}
	if len(cfg.Moons.Slots) != 1 || cfg.Moons.Slots[0].StartAngle != 10 {
		t.Fatalf("moons = %+v", cfg.Moons.Slots)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("applied config invalid: %v", err)
	}

	// исходный конфиг не меняется
	if _, ok := base.Shield.Circles["wide"]; ok {
		t.Fatal("Apply mutated the base config")
	}
	if len(base.Moons.Slots) != 5 {
		t.Fatal("Apply mutated base moon slots")
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	if _, err := LoadLayout(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := LoadLayout(writeLayout(t, `{"shield": [`)); err == nil {
		t.Fatal("expected error for malformed json")
	}
	if _, err := LoadLayout(writeLayout(t, `{"shield": {"bad": [{"radius": 0}]}}`)); err == nil {
		t.Fatal("expected error for zero radius")
	}
}

func TestShippedLayoutMatchesDefaults(t *testing.T) {
	layout, err := LoadLayout(filepath.Join("..", "..", "assets", "layout.json"))
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	base := config.Default()
	cfg := layout.Apply(base)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("shipped layout invalid: %v", err)
	}
	if len(cfg.Moons.Slots) != len(base.Moons.Slots) {
		t.Fatalf("moon slots = %d, want %d", len(cfg.Moons.Slots), len(base.Moons.Slots))
	}
	for i, slot := range cfg.Moons.Slots {
		if slot != base.Moons.Slots[i] {
			t.Errorf("slot %d = %+v, want %+v", i, slot, base.Moons.Slots[i])
		}
	}
	for variant, circles := range base.Shield.Circles {
		got := cfg.Shield.Circles[variant]
		if len(got) != len(circles) {
			t.Fatalf("variant %s circles = %d, want %d", variant, len(got), len(circles))
		}
		for i := range circles {
			if got[i] != circles[i] {
				t.Errorf("variant %s circle %d = %+v, want %+v", variant, i, got[i], circles[i])
			}
		}
	}
}
