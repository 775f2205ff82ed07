package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"battery_dashboard/internal/config"
	"battery_dashboard/internal/logger"
	"battery_dashboard/internal/models"
	"battery_dashboard/internal/predictor"
	"battery_dashboard/internal/repository"
)

// Toast texts.
const (
	titlePredictOK     = "Prediction Successful"
	descPredictOK      = "Battery RUL has been calculated successfully."
	titlePredictFailed = "Prediction Failed"
	titleLifespanOK    = "Estimation Successful"
	descLifespanOK     = "Battery lifespan has been estimated successfully."
	titleLifespanFail  = "Estimation Failed"
	titleDiscarded     = "Result Discarded"
	descDiscarded      = "The wizard was reset before the result arrived."
)

const defaultDismissAfter = 5 * time.Second

// WizardDeps are shared by every wizard of a store.
type WizardDeps struct {
	Client       predictor.Client
	Notifier     Notifier
	Events       repository.EventRepo // optional
	Profile      config.Profile
	DismissAfter time.Duration
	Demo         bool
	Logger       *logger.Logger
}

// FieldEdit is one change to a wizard input. Exactly one of the members is used,
// checked in the order Abandon, Control, Value, Text.
type FieldEdit struct {
	Text    *string  `json:"text,omitempty"`
	Value   *float64 `json:"value,omitempty"`
	Control *float64 `json:"control,omitempty"` // slider position, clamped
	Abandon bool     `json:"abandon,omitempty"`
}

// Wizard is the two-step predict/lifespan flow of one user.
//
// At most one remote call is outstanding at a time. The call runs without the
// lock held; Reset bumps the generation so a result that lands afterwards is dropped.
type Wizard struct {
	mu sync.Mutex

	userID       int
	client       predictor.Client
	notifier     Notifier
	events       repository.EventRepo
	presenter    *Presenter
	dismissAfter time.Duration
	demo         bool
	log          *logger.Logger
	now          func() time.Time

	step       models.WizardStep
	prediction *models.PredictionResult
	lifespan   *models.LifespanResult
	fields     map[string]*Field
	busy       bool
	generation uint64
}

func NewWizard(userID int, d WizardDeps) *Wizard {
	p := d.Profile
	if d.DismissAfter <= 0 {
		d.DismissAfter = defaultDismissAfter
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	return &Wizard{
		userID:       userID,
		client:       d.Client,
		notifier:     d.Notifier,
		events:       d.Events,
		presenter:    NewPresenter(p),
		dismissAfter: d.DismissAfter,
		demo:         d.Demo,
		log:          d.Logger,
		now:          func() time.Time { return time.Now().UTC() },
		step:         models.StepPredict,
		fields: map[string]*Field{
			models.FieldRe:                   NewField(models.FieldRe, p.ImpedanceUnit, p.Re),
			models.FieldRct:                  NewField(models.FieldRct, p.ImpedanceUnit, p.Rct),
			models.FieldDistancePerCycle:     NewField(models.FieldDistancePerCycle, p.DistanceUnit, p.DistancePerCycle),
			models.FieldAverageDailyDistance: NewField(models.FieldAverageDailyDistance, p.DistanceUnit+"/day", p.AverageDailyDistance),
		},
	}
}

// Snapshot returns a consistent copy of the wizard.
func (w *Wizard) Snapshot() models.WizardSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Wizard) snapshotLocked() models.WizardSnapshot {
	s := models.WizardSnapshot{
		Step:   w.step,
		Busy:   w.busy,
		Demo:   w.demo,
		Fields: make(map[string]models.FieldState, len(w.fields)),
	}
	for name, f := range w.fields {
		s.Fields[name] = f.State()
	}
	if w.prediction != nil {
		pred := *w.prediction
		s.Prediction = &pred
	}
	if w.lifespan != nil {
		life := *w.lifespan
		s.Lifespan = &life
	}
	s.Presentation = w.presenter.Present(s.Prediction, s.Lifespan)
	return s
}

// EditField applies e to the named input and reports whether a value was committed.
func (w *Wizard) EditField(name string, e FieldEdit) (models.FieldState, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, ok := w.fields[name]
	if !ok {
		return models.FieldState{}, false, ErrUnknownField
	}

	var committed bool
	switch {
	case e.Abandon:
		f.Abandon()
	case e.Control != nil:
		f.SetFromControl(*e.Control)
		committed = true
	case e.Value != nil:
		committed = f.Set(*e.Value)
	case e.Text != nil:
		committed = f.SetFromText(*e.Text)
	default:
		return f.State(), false, ErrEmptyEdit
	}
	return f.State(), committed, nil
}

// SubmitImpedance runs the RUL prediction. A nil in uses the current field values;
// otherwise both values are validated before either field changes.
// On failure the wizard is unchanged and the *predictor.Failure is returned.
func (w *Wizard) SubmitImpedance(ctx context.Context, in *models.ImpedanceInput) (models.WizardSnapshot, error) {
	w.mu.Lock()
	if w.step != models.StepPredict {
		return w.rejectLocked(ErrWrongStep)
	}
	if w.busy {
		return w.rejectLocked(ErrCallInFlight)
	}
	re, rct := w.fields[models.FieldRe], w.fields[models.FieldRct]
	if in != nil {
		if !re.Contains(in.Re) || !rct.Contains(in.Rct) {
			return w.rejectLocked(ErrOutOfRange)
		}
		re.Set(in.Re)
		rct.Set(in.Rct)
	}
	reV, rctV := re.Value(), rct.Value()
	gen := w.begin()
	w.mu.Unlock()

	res, err := w.client.PredictRUL(ctx, reV, rctV)

	w.mu.Lock()
	if gen != w.generation {
		snap := w.snapshotLocked()
		w.mu.Unlock()
		w.log.Infow("predict_discarded", "user_id", w.userID)
		w.notify(ctx, models.NotifyError, titleDiscarded, descDiscarded)
		return snap, ErrResultDiscarded
	}
	w.busy = false
	if err != nil {
		snap := w.snapshotLocked()
		w.mu.Unlock()

		f := predictor.AsFailure(err)
		w.log.Warnw("predict_failed", "user_id", w.userID, "kind", f.Kind, "err", err)
		w.notify(ctx, models.NotifyError, titlePredictFailed, f.Reason)
		w.record(ctx, models.EventPredictFailed, f.Reason, map[string]any{"re": reV, "rct": rctV, "kind": f.Kind})
		return snap, f
	}
	w.prediction = &res
	w.step = models.StepLifespan
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.log.Infow("predict_ok", "user_id", w.userID, "predicted_rul", res.PredictedRUL)
	w.notify(ctx, models.NotifySuccess, titlePredictOK, descPredictOK)
	w.record(ctx, models.EventPredict, "RUL predicted", map[string]any{
		"re": reV, "rct": rctV, "predicted_rul": res.PredictedRUL,
	})
	return snap, nil
}

// SubmitUsage runs the lifespan estimate for the stored prediction.
// A nil in uses the current field values.
func (w *Wizard) SubmitUsage(ctx context.Context, in *models.UsageInput) (models.WizardSnapshot, error) {
	w.mu.Lock()
	if w.step != models.StepLifespan {
		return w.rejectLocked(ErrWrongStep)
	}
	if w.prediction == nil {
		return w.rejectLocked(ErrNoPrediction)
	}
	if w.busy {
		return w.rejectLocked(ErrCallInFlight)
	}
	dpc, daily := w.fields[models.FieldDistancePerCycle], w.fields[models.FieldAverageDailyDistance]
	if in != nil {
		if !dpc.Contains(in.DistancePerCycle) || !daily.Contains(in.AverageDailyDistance) {
			return w.rejectLocked(ErrOutOfRange)
		}
		dpc.Set(in.DistancePerCycle)
		daily.Set(in.AverageDailyDistance)
	}
	rul, dpcV, dailyV := w.prediction.PredictedRUL, dpc.Value(), daily.Value()
	gen := w.begin()
	w.mu.Unlock()

	res, err := w.client.EstimateLifespan(ctx, rul, dpcV, dailyV)

	w.mu.Lock()
	if gen != w.generation {
		snap := w.snapshotLocked()
		w.mu.Unlock()
		w.log.Infow("lifespan_discarded", "user_id", w.userID)
		w.notify(ctx, models.NotifyError, titleDiscarded, descDiscarded)
		return snap, ErrResultDiscarded
	}
	w.busy = false
	if err != nil {
		snap := w.snapshotLocked()
		w.mu.Unlock()

		f := predictor.AsFailure(err)
		w.log.Warnw("lifespan_failed", "user_id", w.userID, "kind", f.Kind, "err", err)
		w.notify(ctx, models.NotifyError, titleLifespanFail, f.Reason)
		w.record(ctx, models.EventLifespanFailed, f.Reason, map[string]any{
			"distance_per_cycle": dpcV, "average_daily_distance": dailyV, "kind": f.Kind,
		})
		return snap, f
	}
	w.lifespan = &res
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.log.Infow("lifespan_ok", "user_id", w.userID, "years", res.EstimatedLifespanYears)
	w.notify(ctx, models.NotifySuccess, titleLifespanOK, descLifespanOK)
	w.record(ctx, models.EventLifespan, "lifespan estimated", map[string]any{
		"predicted_rul": rul, "distance_per_cycle": dpcV, "average_daily_distance": dailyV,
		"years": res.EstimatedLifespanYears,
	})
	return snap, nil
}

// Back returns to the predict step; both results are kept.
func (w *Wizard) Back(ctx context.Context) (models.WizardSnapshot, error) {
	w.mu.Lock()
	if w.step != models.StepLifespan {
		return w.rejectLocked(ErrWrongStep)
	}
	if w.busy {
		return w.rejectLocked(ErrCallInFlight)
	}
	w.step = models.StepPredict
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.record(ctx, models.EventBack, "back to prediction", nil)
	return snap, nil
}

// Reset clears both results and returns to the predict step. An outstanding
// call is abandoned: its result will be discarded when it lands.
func (w *Wizard) Reset(ctx context.Context) models.WizardSnapshot {
	w.mu.Lock()
	w.step = models.StepPredict
	w.prediction = nil
	w.lifespan = nil
	w.busy = false
	w.generation++
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.record(ctx, models.EventReset, "wizard reset", nil)
	return snap
}

// LifespanChart synthesizes the yearly projection for the stored results.
func (w *Wizard) LifespanChart() ([]models.ChartPoint, error) {
	w.mu.Lock()
	pred, life := w.prediction, w.lifespan
	w.mu.Unlock()

	if pred == nil {
		return nil, ErrNoPrediction
	}
	if life == nil {
		return nil, ErrNoLifespan
	}
	return SynthesizeLifespan(pred.PredictedRUL, life.EstimatedLifespanYears, life.DistancePerCycle, life.AverageDailyDistance)
}

// HealthCurve synthesizes the per-cycle health series for the stored prediction.
func (w *Wizard) HealthCurve() ([]models.HealthPoint, error) {
	w.mu.Lock()
	pred := w.prediction
	w.mu.Unlock()

	if pred == nil {
		return nil, ErrNoPrediction
	}
	return SynthesizeHealthCurve(pred.PredictedRUL)
}

// begin marks a call in flight and returns its generation. Caller holds mu.
func (w *Wizard) begin() uint64 {
	w.busy = true
	return w.generation
}

// rejectLocked snapshots, unlocks and returns err.
func (w *Wizard) rejectLocked(err error) (models.WizardSnapshot, error) {
	snap := w.snapshotLocked()
	w.mu.Unlock()
	return snap, err
}

func (w *Wizard) notify(ctx context.Context, kind, title, desc string) {
	if w.notifier == nil {
		return
	}
	w.notifier.Notify(context.WithoutCancel(ctx), models.Notification{
		ID:             uuid.NewString(),
		UserID:         w.userID,
		Kind:           kind,
		Title:          title,
		Description:    desc,
		CreatedAt:      w.now(),
		DismissAfterMs: w.dismissAfter.Milliseconds(),
	})
}

// record appends to the history; failures are logged, never surfaced.
func (w *Wizard) record(ctx context.Context, typ, desc string, meta map[string]any) {
	if w.events == nil {
		return
	}
	ev := models.WizardEvent{
		UserID:      w.userID,
		OccurredAt:  w.now(),
		Type:        typ,
		Description: desc,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	if err := w.events.Append(context.WithoutCancel(ctx), ev); err != nil {
		w.log.Errorw("event_append_failed", "user_id", w.userID, "type", typ, "err", err)
	}
}
