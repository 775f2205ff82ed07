package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv(EnvPredictionAPIURL, "")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DB.Path != "app.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Predictor.BaseURL != DefaultPredictionAPIURL || cfg.Predictor.URLSource != "default" {
		t.Fatalf("base url=%q source=%q", cfg.Predictor.BaseURL, cfg.Predictor.URLSource)
	}
	if cfg.Predictor.Timeout != 5*time.Second || cfg.Notify.DismissAfter != 5*time.Second {
		t.Fatalf("timeouts: %+v %+v", cfg.Predictor, cfg.Notify)
	}
	if cfg.Profile != DefaultProfile() {
		t.Fatalf("profile=%+v; want defaults", cfg.Profile)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := writeConfig(t, `
port: "9090"
predictor:
  base_url: http://model:8000
  timeout: 2s
profile:
  distance_unit: mi
  distance_per_cycle:
    min: 30
    max: 250
    step: 5
    default: 120
`)

	t.Setenv(EnvPredictionAPIURL, "")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Predictor.BaseURL != "http://model:8000" || cfg.Predictor.URLSource != "config" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Predictor.Timeout != 2*time.Second {
		t.Fatalf("timeout=%v", cfg.Predictor.Timeout)
	}
	if cfg.Profile.DistanceUnit != "mi" || cfg.Profile.DistancePerCycle.Max != 250 {
		t.Fatalf("profile override: %+v", cfg.Profile)
	}
	// untouched bounds keep their defaults
	if cfg.Profile.Re != DefaultProfile().Re {
		t.Fatalf("re=%+v", cfg.Profile.Re)
	}

	t.Setenv(EnvPredictionAPIURL, "http://env:7000")
	cfg, err = Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Predictor.BaseURL != "http://env:7000" || cfg.Predictor.URLSource != "env" {
		t.Fatalf("env override: %q %q", cfg.Predictor.BaseURL, cfg.Predictor.URLSource)
	}
}

func TestLoad_InvalidProfile(t *testing.T) {
	t.Setenv(EnvPredictionAPIURL, "")
	dir := writeConfig(t, `
profile:
  re:
    min: 1
    max: 0.5
`)
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "re:") {
		t.Fatalf("expected re bound error, got %v", err)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "port: [unterminated")
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestProfileValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Profile)
		ok     bool
	}{
		{"default", func(p *Profile) {}, true},
		{"default outside bounds", func(p *Profile) { p.Rct.Default = 2 }, false},
		{"zero usage min", func(p *Profile) { p.AverageDailyDistance.Min = 0 }, false},
		{"negative step", func(p *Profile) { p.Re.Step = -1 }, false},
		{"zero gauge", func(p *Profile) { p.GaugeMax = 0 }, false},
		{"thresholds not decreasing", func(p *Profile) { p.HealthThresholds.Good = 800 }, false},
		{"zero step allowed", func(p *Profile) { p.Re.Step = 0 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultProfile()
			tc.mutate(&p)
			err := p.Validate()
			if (err == nil) != tc.ok {
				t.Fatalf("Validate()=%v; ok=%v", err, tc.ok)
			}
		})
	}
}
