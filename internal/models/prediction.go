package models

// Result status values reported by the prediction service.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// PredictionResult is the reply of the remote /predict call.
type PredictionResult struct {
	Status             string  `json:"status"`
	Message            string  `json:"message,omitempty"`
	Re                 float64 `json:"Re"`                  // ohms
	Rct                float64 `json:"Rct"`                 // ohms
	DegradationFeature float64 `json:"degradation_feature"` // derived server-side, display only
	PredictedRUL       float64 `json:"predicted_RUL"`       // cycles
}

// LifespanResult is the reply of the remote /battery-life-years call.
type LifespanResult struct {
	Status                 string  `json:"status"`
	Message                string  `json:"message,omitempty"`
	PredictedRUL           float64 `json:"predicted_RUL"`
	DistancePerCycle       float64 `json:"mileage_per_cycle"`
	AverageDailyDistance   float64 `json:"average_daily_mileage"`
	TotalDistance          float64 `json:"total_mileage"`
	EstimatedLifespanYears float64 `json:"estimated_lifespan_years"`
}

// ImpedanceInput carries the electrochemical impedance parameters of one submission.
type ImpedanceInput struct {
	Re  float64 `json:"re"`
	Rct float64 `json:"rct"`
}

// UsageInput carries the usage rates of one lifespan submission.
type UsageInput struct {
	DistancePerCycle     float64 `json:"distance_per_cycle"`
	AverageDailyDistance float64 `json:"average_daily_distance"`
}
