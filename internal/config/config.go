// Package config loads application settings and the dashboard profile with Viper.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/viper"
)

// EnvPredictionAPIURL overrides predictor.base_url.
const EnvPredictionAPIURL = "PREDICTION_API_URL"

// DefaultPredictionAPIURL is used when neither the config file nor the environment sets a base URL.
const DefaultPredictionAPIURL = "http://localhost:5000"

// Config holds all configuration values.
type Config struct {
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Predictor PredictorConfig `mapstructure:"predictor"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Profile   Profile         `mapstructure:"profile"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type PredictorConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	DemoMode bool          `mapstructure:"demo_mode"`

	// URLSource reports where BaseURL came from: "env", "config" or "default".
	URLSource string `mapstructure:"-"`
}

type NotifyConfig struct {
	DismissAfter time.Duration `mapstructure:"dismiss_after"`
	ShoutrrrURLs []string      `mapstructure:"shoutrrr_urls"`
}

// Bound describes one range-validated input.
type Bound struct {
	Min     float64 `mapstructure:"min" json:"min"`
	Max     float64 `mapstructure:"max" json:"max"`
	Step    float64 `mapstructure:"step" json:"step"`
	Default float64 `mapstructure:"default" json:"default"`
}

// Thresholds are the strict lower edges of the Excellent, Good and Fair buckets.
type Thresholds struct {
	Excellent float64 `mapstructure:"excellent" json:"excellent"`
	Good      float64 `mapstructure:"good" json:"good"`
	Fair      float64 `mapstructure:"fair" json:"fair"`
}

// Profile is the single set of units, bounds and thresholds used by every wizard.
type Profile struct {
	DistanceUnit         string     `mapstructure:"distance_unit" json:"distance_unit"`
	ImpedanceUnit        string     `mapstructure:"impedance_unit" json:"impedance_unit"`
	Re                   Bound      `mapstructure:"re" json:"re"`
	Rct                  Bound      `mapstructure:"rct" json:"rct"`
	DistancePerCycle     Bound      `mapstructure:"distance_per_cycle" json:"distance_per_cycle"`
	AverageDailyDistance Bound      `mapstructure:"average_daily_distance" json:"average_daily_distance"`
	HealthThresholds     Thresholds `mapstructure:"health_thresholds" json:"health_thresholds"`
	LifespanThresholds   Thresholds `mapstructure:"lifespan_thresholds" json:"lifespan_thresholds"`
	GaugeMax             float64    `mapstructure:"gauge_max" json:"gauge_max"`
}

// DefaultProfile returns the canonical kilometre profile.
func DefaultProfile() Profile {
	return Profile{
		DistanceUnit:         "km",
		ImpedanceUnit:        "ohm",
		Re:                   Bound{Min: 0.001, Max: 0.5, Step: 0.001, Default: 0.01},
		Rct:                  Bound{Min: 0.001, Max: 1.5, Step: 0.001, Default: 0.01},
		DistancePerCycle:     Bound{Min: 50, Max: 400, Step: 10, Default: 200},
		AverageDailyDistance: Bound{Min: 10, Max: 200, Step: 5, Default: 60},
		HealthThresholds:     Thresholds{Excellent: 700, Good: 400, Fair: 200},
		LifespanThresholds:   Thresholds{Excellent: 8, Good: 5, Fair: 3},
		GaugeMax:             1000,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("predictor.timeout", 5*time.Second)
	v.SetDefault("predictor.demo_mode", false)
	v.SetDefault("notify.dismiss_after", 5*time.Second)

	p := DefaultProfile()
	v.SetDefault("profile.distance_unit", p.DistanceUnit)
	v.SetDefault("profile.impedance_unit", p.ImpedanceUnit)
	setBoundDefaults(v, "profile.re", p.Re)
	setBoundDefaults(v, "profile.rct", p.Rct)
	setBoundDefaults(v, "profile.distance_per_cycle", p.DistancePerCycle)
	setBoundDefaults(v, "profile.average_daily_distance", p.AverageDailyDistance)
	setThresholdDefaults(v, "profile.health_thresholds", p.HealthThresholds)
	setThresholdDefaults(v, "profile.lifespan_thresholds", p.LifespanThresholds)
	v.SetDefault("profile.gauge_max", p.GaugeMax)
}

func setBoundDefaults(v *viper.Viper, key string, b Bound) {
	v.SetDefault(key+".min", b.Min)
	v.SetDefault(key+".max", b.Max)
	v.SetDefault(key+".step", b.Step)
	v.SetDefault(key+".default", b.Default)
}

func setThresholdDefaults(v *viper.Viper, key string, t Thresholds) {
	v.SetDefault(key+".excellent", t.Excellent)
	v.SetDefault(key+".good", t.Good)
	v.SetDefault(key+".fair", t.Fair)
}

// Load reads config.yml from the given directories (first match wins), applies
// defaults and environment overrides, and validates the profile.
// A missing config file is not an error.
func Load(dirs ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	setDefaults(v)

	if err := v.BindEnv("predictor.base_url", EnvPredictionAPIURL); err != nil {
		return nil, fmt.Errorf("binding predictor.base_url env: %w", err)
	}
	if err := v.BindEnv("auth.signing_key", "AUTH_SIGNING_KEY"); err != nil {
		return nil, fmt.Errorf("binding auth.signing_key env: %w", err)
	}
	if err := v.BindEnv("port", "PORT"); err != nil {
		return nil, fmt.Errorf("binding port env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	switch {
	case os.Getenv(EnvPredictionAPIURL) != "":
		cfg.Predictor.URLSource = "env"
	case cfg.Predictor.BaseURL != "":
		cfg.Predictor.URLSource = "config"
	default:
		cfg.Predictor.BaseURL = DefaultPredictionAPIURL
		cfg.Predictor.URLSource = "default"
	}

	if err := cfg.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every bound is well formed and that the usage bounds are strictly positive.
func (p Profile) Validate() error {
	bounds := []struct {
		name     string
		b        Bound
		positive bool
	}{
		{"re", p.Re, false},
		{"rct", p.Rct, false},
		{"distance_per_cycle", p.DistancePerCycle, true},
		{"average_daily_distance", p.AverageDailyDistance, true},
	}
	for _, e := range bounds {
		if err := e.b.validate(); err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		if e.positive && e.b.Min <= 0 {
			return fmt.Errorf("%s: min must be > 0, got %v", e.name, e.b.Min)
		}
	}
	if p.GaugeMax <= 0 {
		return fmt.Errorf("gauge_max must be > 0, got %v", p.GaugeMax)
	}
	for name, t := range map[string]Thresholds{"health": p.HealthThresholds, "lifespan": p.LifespanThresholds} {
		if !(t.Excellent > t.Good && t.Good > t.Fair) {
			return fmt.Errorf("%s thresholds must be strictly decreasing: %+v", name, t)
		}
	}
	return nil
}

func (b Bound) validate() error {
	for _, f := range []float64{b.Min, b.Max, b.Step, b.Default} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.New("bounds must be finite")
		}
	}
	if b.Min >= b.Max {
		return fmt.Errorf("min %v must be < max %v", b.Min, b.Max)
	}
	if b.Default < b.Min || b.Default > b.Max {
		return fmt.Errorf("default %v outside [%v, %v]", b.Default, b.Min, b.Max)
	}
	if b.Step < 0 {
		return fmt.Errorf("step must be >= 0, got %v", b.Step)
	}
	return nil
}
