package service

import (
	"math"

	"github.com/shopspring/decimal"

	"battery_dashboard/internal/config"
	"battery_dashboard/internal/models"
)

// Status buckets, best first.
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusFair      = "Fair"
	StatusPoor      = "Poor"
)

var bucketColors = map[string]string{
	StatusExcellent: "green",
	StatusGood:      "blue",
	StatusFair:      "yellow",
	StatusPoor:      "red",
}

// gauge colour bands, in percent
var gaugeBands = []struct {
	above float64
	color string
}{
	{70, "#22c55e"},
	{40, "#3b82f6"},
	{20, "#facc15"},
	{math.Inf(-1), "#ef4444"},
}

// Presenter turns stored results into badges, gauge readings, formatted values and chart series.
type Presenter struct {
	profile config.Profile
}

func NewPresenter(p config.Profile) *Presenter {
	return &Presenter{profile: p}
}

func bucket(v float64, t config.Thresholds) string {
	switch {
	case v > t.Excellent:
		return StatusExcellent
	case v > t.Good:
		return StatusGood
	case v > t.Fair:
		return StatusFair
	default:
		return StatusPoor
	}
}

func badge(status string) models.StatusBadge {
	return models.StatusBadge{Status: status, Color: bucketColors[status]}
}

// HealthStatus buckets a predicted RUL (cycles).
func (p *Presenter) HealthStatus(rul float64) models.StatusBadge {
	return badge(bucket(rul, p.profile.HealthThresholds))
}

// LifespanStatus buckets an estimated lifespan (years).
func (p *Presenter) LifespanStatus(years float64) models.StatusBadge {
	return badge(bucket(years, p.profile.LifespanThresholds))
}

// Gauge maps rul onto [0, 100] percent of the profile's gauge maximum.
func (p *Presenter) Gauge(rul float64) models.GaugeReading {
	pct := 0.0
	if !math.IsNaN(rul) {
		pct = math.Max(0, math.Min(100, rul/p.profile.GaugeMax*100))
	}
	for _, b := range gaugeBands {
		if pct > b.above {
			return models.GaugeReading{Percent: pct, Color: b.color}
		}
	}
	return models.GaugeReading{Percent: pct, Color: gaugeBands[len(gaugeBands)-1].color}
}

// FormatFixed renders v with exactly places decimals; non-finite values render as "-".
func FormatFixed(v float64, places int32) string {
	if !isFinite(v) {
		return "-"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func formatPlain(v float64) string {
	if !isFinite(v) {
		return "-"
	}
	return decimal.NewFromFloat(v).String()
}

// Present builds the dashboard view. pred must be non-nil; life may be nil.
func (p *Presenter) Present(pred *models.PredictionResult, life *models.LifespanResult) *models.Presentation {
	if pred == nil {
		return nil
	}
	out := &models.Presentation{
		Health:         p.HealthStatus(pred.PredictedRUL),
		Gauge:          p.Gauge(pred.PredictedRUL),
		DistanceUnit:   p.profile.DistanceUnit,
		ImpedanceUnits: p.profile.ImpedanceUnit,
		Display: map[string]string{
			"predicted_rul":       FormatFixed(pred.PredictedRUL, 2),
			"degradation_feature": FormatFixed(pred.DegradationFeature, 5),
			"re":                  FormatFixed(pred.Re, 4),
			"rct":                 FormatFixed(pred.Rct, 4),
		},
	}
	if life == nil {
		return out
	}

	ls := p.LifespanStatus(life.EstimatedLifespanYears)
	out.Lifespan = &ls
	out.Display["lifespan_years"] = FormatFixed(life.EstimatedLifespanYears, 1)
	out.Display["lifespan_years_detail"] = FormatFixed(life.EstimatedLifespanYears, 2)
	out.Display["total_distance"] = FormatFixed(life.TotalDistance, 2)
	out.Display["distance_per_cycle"] = formatPlain(life.DistancePerCycle)
	out.Display["average_daily_distance"] = formatPlain(life.AverageDailyDistance)

	chart, err := SynthesizeLifespan(pred.PredictedRUL, life.EstimatedLifespanYears, life.DistancePerCycle, life.AverageDailyDistance)
	if err != nil {
		out.ChartError = err.Error()
	} else {
		out.Chart = chart
	}
	return out
}
