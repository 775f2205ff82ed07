package service

import (
	"context"
	"sync"

	"battery_dashboard/internal/models"
)

// WizardStore keeps one in-memory Wizard per user, created on first use.
// Wizards are never persisted; a restart starts every user over.
type WizardStore struct {
	deps     WizardDeps
	settings Settings

	mu      sync.Mutex
	wizards map[int]*Wizard
}

var _ Wizards = (*WizardStore)(nil)

func NewWizardStore(deps WizardDeps, settings Settings) *WizardStore {
	return &WizardStore{
		deps:     deps,
		settings: settings,
		wizards:  make(map[int]*Wizard),
	}
}

func (s *WizardStore) get(userID int) *Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[userID]
	if !ok {
		w = NewWizard(userID, s.deps)
		s.wizards[userID] = w
	}
	return w
}

func (s *WizardStore) Snapshot(userID int) models.WizardSnapshot {
	return s.get(userID).Snapshot()
}

func (s *WizardStore) EditField(userID int, name string, e FieldEdit) (models.FieldState, bool, error) {
	return s.get(userID).EditField(name, e)
}

func (s *WizardStore) SubmitImpedance(ctx context.Context, userID int, in *models.ImpedanceInput) (models.WizardSnapshot, error) {
	return s.get(userID).SubmitImpedance(ctx, in)
}

func (s *WizardStore) SubmitUsage(ctx context.Context, userID int, in *models.UsageInput) (models.WizardSnapshot, error) {
	return s.get(userID).SubmitUsage(ctx, in)
}

func (s *WizardStore) Back(ctx context.Context, userID int) (models.WizardSnapshot, error) {
	return s.get(userID).Back(ctx)
}

func (s *WizardStore) Reset(ctx context.Context, userID int) models.WizardSnapshot {
	return s.get(userID).Reset(ctx)
}

func (s *WizardStore) LifespanChart(userID int) ([]models.ChartPoint, error) {
	return s.get(userID).LifespanChart()
}

func (s *WizardStore) HealthCurve(userID int) ([]models.HealthPoint, error) {
	return s.get(userID).HealthCurve()
}

// Settings is fixed at construction.
func (s *WizardStore) Settings() Settings { return s.settings }
