package service

import (
	"math"
	"strconv"
	"strings"

	"battery_dashboard/internal/config"
	"battery_dashboard/internal/models"
)

// Field is a bounded numeric input edited from a slider and a text box.
// Rejected edits never reach the value; the raw text stays pending until
// it is corrected or abandoned. Field is not safe for concurrent use; the
// owning Wizard serializes access.
type Field struct {
	name    string
	unit    string
	min     float64
	max     float64
	step    float64
	def     float64
	value   float64
	pending string
}

// NewField starts at the bound's default value.
func NewField(name, unit string, b config.Bound) *Field {
	return &Field{
		name:  name,
		unit:  unit,
		min:   b.Min,
		max:   b.Max,
		step:  b.Step,
		def:   b.Default,
		value: b.Default,
	}
}

func (f *Field) Name() string    { return f.name }
func (f *Field) Value() float64  { return f.value }
func (f *Field) Pending() string { return f.pending }

// Contains reports whether v is a finite number inside [min, max].
func (f *Field) Contains(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= f.min && v <= f.max
}

// SetFromControl applies a slider position, clamped to [min, max].
// NaN is ignored. Returns the committed value.
func (f *Field) SetFromControl(v float64) float64 {
	if math.IsNaN(v) {
		return f.value
	}
	f.value = math.Max(f.min, math.Min(f.max, v))
	f.pending = ""
	return f.value
}

// SetFromText commits s only when it parses to a finite number inside [min, max].
func (f *Field) SetFromText(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !f.Contains(v) {
		f.pending = s
		return false
	}
	f.value = v
	f.pending = ""
	return true
}

// Set is a discrete numeric entry with the same policy as SetFromText.
func (f *Field) Set(v float64) bool {
	if !f.Contains(v) {
		f.pending = strconv.FormatFloat(v, 'g', -1, 64)
		return false
	}
	f.value = v
	f.pending = ""
	return true
}

// Abandon drops rejected text; the last good value was never touched.
func (f *Field) Abandon() { f.pending = "" }

// Restore returns the field to its default.
func (f *Field) Restore() {
	f.value = f.def
	f.pending = ""
}

func (f *Field) State() models.FieldState {
	return models.FieldState{
		Value:   f.value,
		Min:     f.min,
		Max:     f.max,
		Step:    f.step,
		Unit:    f.unit,
		Pending: f.pending,
	}
}
