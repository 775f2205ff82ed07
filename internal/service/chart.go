package service

import (
	"errors"
	"math"

	"battery_dashboard/internal/models"
)

// Degradation curve constants.
const (
	InitialHealth       = 100.0
	FinalHealth         = 20.0
	DegradationExponent = 1.2
	DaysPerYear         = 365.0
	MaxChartYears       = 500
	MaxHealthCycles     = 20000
	healthCurveDecimals = 100 // two decimal places
)

var (
	ErrInvalidUsage   = errors.New("cycles must be finite and >= 0, usage rates must be finite and > 0")
	ErrHorizonTooLong = errors.New("projection horizon too long to chart")
)

// SynthesizeLifespan draws a yearly health/distance projection from a cycle count and
// usage rates. yearsAtEndOfLife is the service's own estimate; the curve is rebuilt from
// cycles and rates so that it stays consistent with the rates it is labelled with.
//
// The series has ceil(totalYears)+2 points, except for zero cycles which yields the single
// point {0, 100, 0}.
func SynthesizeLifespan(predictedCycles, yearsAtEndOfLife, distancePerCycle, dailyDistance float64) ([]models.ChartPoint, error) {
	if !isFinite(predictedCycles) || predictedCycles < 0 ||
		!isFinite(distancePerCycle) || distancePerCycle <= 0 ||
		!isFinite(dailyDistance) || dailyDistance <= 0 {
		return nil, ErrInvalidUsage
	}

	totalDistance := predictedCycles * distancePerCycle
	cyclesPerYear := (DaysPerYear * dailyDistance) / distancePerCycle
	totalYears := predictedCycles / cyclesPerYear

	if totalYears == 0 {
		return []models.ChartPoint{{Year: 0, HealthPercent: InitialHealth, CumulativeDistance: 0}}, nil
	}
	if !isFinite(totalYears) || totalYears > MaxChartYears {
		return nil, ErrHorizonTooLong
	}

	last := int(math.Ceil(totalYears)) + 1
	points := make([]models.ChartPoint, 0, last+1)
	for year := 0; year <= last; year++ {
		y := float64(year)
		health := InitialHealth - (InitialHealth-FinalHealth)*math.Pow(y/totalYears, DegradationExponent)
		points = append(points, models.ChartPoint{
			Year:               year,
			HealthPercent:      math.Max(FinalHealth, health),
			CumulativeDistance: math.Min(totalDistance, y*DaysPerYear*dailyDistance),
		})
	}
	return points, nil
}

// SynthesizeHealthCurve is the linear per-cycle curve from 100% to 0% over ceil(rul) cycles.
func SynthesizeHealthCurve(rul float64) ([]models.HealthPoint, error) {
	if math.IsNaN(rul) {
		return nil, ErrInvalidUsage
	}
	if rul <= 0 {
		return []models.HealthPoint{{Cycle: 0, Health: InitialHealth}}, nil
	}
	if math.IsInf(rul, 1) || rul > MaxHealthCycles {
		return nil, ErrHorizonTooLong
	}

	total := int(math.Ceil(rul))
	points := make([]models.HealthPoint, 0, total+1)
	for i := 0; i <= total; i++ {
		h := math.Max(0, InitialHealth-float64(i)/float64(total)*InitialHealth)
		points = append(points, models.HealthPoint{
			Cycle:  i,
			Health: math.Round(h*healthCurveDecimals) / healthCurveDecimals,
		})
	}
	return points, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
