package models

// StatusBadge is a qualitative bucket with its display colour.
type StatusBadge struct {
	Status string `json:"status"` // Excellent | Good | Fair | Poor
	Color  string `json:"color"`
}

// GaugeReading is the circular health indicator.
type GaugeReading struct {
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// ChartPoint is one year of the synthesized lifespan projection.
type ChartPoint struct {
	Year               int     `json:"year"`
	HealthPercent      float64 `json:"health_percent"`
	CumulativeDistance float64 `json:"cumulative_distance"`
}

// HealthPoint is one cycle of the linear per-cycle health curve.
type HealthPoint struct {
	Cycle  int     `json:"cycle"`
	Health float64 `json:"health"`
}

// Presentation bundles everything the dashboard renders for the stored results.
type Presentation struct {
	Health         StatusBadge       `json:"health"`
	Gauge          GaugeReading      `json:"gauge"`
	Lifespan       *StatusBadge      `json:"lifespan,omitempty"`
	Display        map[string]string `json:"display"`
	Chart          []ChartPoint      `json:"chart,omitempty"`
	ChartError     string            `json:"chart_error,omitempty"`
	DistanceUnit   string            `json:"distance_unit"`
	ImpedanceUnits string            `json:"impedance_units"`
}
