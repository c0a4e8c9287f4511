package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.Debounce() != 250*time.Millisecond {
		t.Fatalf("default debounce = %s, want 250ms", cfg.Debounce())
	}
}

func TestDebounceClamping(t *testing.T) {
	cases := []struct {
		ms   int
		want time.Duration
	}{
		{0, 250 * time.Millisecond},
		{10, 250 * time.Millisecond},
		{150, 150 * time.Millisecond},
		{300, 300 * time.Millisecond},
		{60000, 250 * time.Millisecond},
	}
	for _, tc := range cases {
		cfg := Config{General: GeneralConfig{DebounceMs: tc.ms}}
		if got := cfg.Debounce(); got != tc.want {
			t.Fatalf("Debounce(%d) = %s, want %s", tc.ms, got, tc.want)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "paper-light"
	cfg.General.DebounceMs = 150

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Appearance.Theme != "paper-light" || got.General.DebounceMs != 150 {
		t.Fatalf("round trip = %+v", got)
	}
}
