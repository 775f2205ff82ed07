package predictor

import (
	"context"
	"math"

	"battery_dashboard/internal/models"
)

// Demo model constants. The fabricated numbers only need to look plausible on the dashboard.
const (
	DemoMaxCycles      = 1200.0 // RUL of a pristine cell
	DemoFeatureCeiling = 1.25   // feature at which RUL reaches zero
	DemoRctWeight      = 0.5    // Rct contributes half as much as Re
	daysPerYear        = 365.0
	demoMessage        = "demo mode: values are simulated"
)

// DemoClient fabricates deterministic results without any network access.
// It is only wired when demo mode is switched on explicitly.
type DemoClient struct{}

var _ Client = DemoClient{}

// DemoFeature is the simulated degradation feature for re/rct.
func DemoFeature(re, rct float64) float64 {
	return re + DemoRctWeight*rct
}

// DemoRUL maps a degradation feature onto [0, DemoMaxCycles].
func DemoRUL(feature float64) float64 {
	rul := DemoMaxCycles * (1 - feature/DemoFeatureCeiling)
	return math.Max(0, math.Min(DemoMaxCycles, rul))
}

func (DemoClient) PredictRUL(ctx context.Context, re, rct float64) (models.PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		return models.PredictionResult{}, &Failure{Kind: KindTransport, Reason: reasonUnavailable, Err: err}
	}
	if !finite(re) || !finite(rct) || re < 0 || rct < 0 {
		return models.PredictionResult{}, &Failure{Kind: KindService, Reason: reasonPredictFailed}
	}
	f := DemoFeature(re, rct)
	return models.PredictionResult{
		Status:             models.StatusSuccess,
		Message:            demoMessage,
		Re:                 re,
		Rct:                rct,
		DegradationFeature: f,
		PredictedRUL:       DemoRUL(f),
	}, nil
}

func (DemoClient) EstimateLifespan(ctx context.Context, rul, distancePerCycle, averageDailyDistance float64) (models.LifespanResult, error) {
	if err := ctx.Err(); err != nil {
		return models.LifespanResult{}, &Failure{Kind: KindTransport, Reason: reasonUnavailable, Err: err}
	}
	if !finite(rul) || rul < 0 || !(distancePerCycle > 0) || !(averageDailyDistance > 0) {
		return models.LifespanResult{}, &Failure{Kind: KindService, Reason: reasonLifespanFailed}
	}
	cyclesPerYear := daysPerYear * averageDailyDistance / distancePerCycle
	return models.LifespanResult{
		Status:                 models.StatusSuccess,
		Message:                demoMessage,
		PredictedRUL:           rul,
		DistancePerCycle:       distancePerCycle,
		AverageDailyDistance:   averageDailyDistance,
		TotalDistance:          rul * distancePerCycle,
		EstimatedLifespanYears: rul / cyclesPerYear,
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
