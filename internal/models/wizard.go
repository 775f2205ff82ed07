package models

// WizardStep is the current page of the two-step wizard.
type WizardStep string

const (
	StepPredict  WizardStep = "predict"
	StepLifespan WizardStep = "lifespan"
)

// Field names of the wizard inputs.
const (
	FieldRe                   = "re"
	FieldRct                  = "rct"
	FieldDistancePerCycle     = "distance_per_cycle"
	FieldAverageDailyDistance = "average_daily_distance"
)

// FieldState is the externally visible state of one bounded input.
type FieldState struct {
	Value   float64 `json:"value"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Unit    string  `json:"unit,omitempty"`
	Pending string  `json:"pending,omitempty"` // rejected text still shown to the user
}

// WizardSnapshot is a consistent copy of a wizard taken under its lock.
type WizardSnapshot struct {
	Step         WizardStep            `json:"step"`
	Busy         bool                  `json:"busy"`
	Demo         bool                  `json:"demo,omitempty"`
	Fields       map[string]FieldState `json:"fields"`
	Prediction   *PredictionResult     `json:"prediction,omitempty"`
	Lifespan     *LifespanResult       `json:"lifespan,omitempty"`
	Presentation *Presentation         `json:"presentation,omitempty"`
}
