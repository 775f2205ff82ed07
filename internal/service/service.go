package service

import (
	"context"
	"time"

	"battery_dashboard/internal/config"
	"battery_dashboard/internal/logger"
	"battery_dashboard/internal/models"
	"battery_dashboard/internal/predictor"
	"battery_dashboard/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Wizards gives every signed-in user their own two-step wizard.
type Wizards interface {
	Snapshot(userID int) models.WizardSnapshot
	EditField(userID int, name string, e FieldEdit) (models.FieldState, bool, error)
	SubmitImpedance(ctx context.Context, userID int, in *models.ImpedanceInput) (models.WizardSnapshot, error)
	SubmitUsage(ctx context.Context, userID int, in *models.UsageInput) (models.WizardSnapshot, error)
	Back(ctx context.Context, userID int) (models.WizardSnapshot, error)
	Reset(ctx context.Context, userID int) models.WizardSnapshot
	LifespanChart(userID int) ([]models.ChartPoint, error)
	HealthCurve(userID int) ([]models.HealthPoint, error)
	Settings() Settings
}

// EventLog exposes the wizard history with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.WizardEvent, error)
}

// LogFilter selects one user's history.
type LogFilter struct {
	UserID int
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Type   string    // "", "PREDICT", "PREDICT_FAILED", "LIFESPAN", "LIFESPAN_FAILED", "BACK", "RESET"
}

// Notifier delivers one toast. Implementations must not block the caller for long.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Subscriber streams a user's toasts until the returned cancel func is called.
type Subscriber interface {
	Subscribe(userID int) (<-chan models.Notification, func())
}

// Settings is the effective predictor configuration shown on the debug view.
type Settings struct {
	BaseURL   string         `json:"base_url"`
	URLSource string         `json:"url_source"` // env | config | default
	FromEnv   bool           `json:"from_env"`
	Demo      bool           `json:"demo"`
	Timeout   string         `json:"timeout"`
	Profile   config.Profile `json:"profile"`
}

// Deps are the collaborators chosen once in main().
type Deps struct {
	Client        predictor.Client
	Notifier      Notifier
	Notifications Subscriber
	Logger        *logger.Logger
	Config        *config.Config
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Wizards
	EventLog
	Authorization
	Notifications Subscriber
}

// NewService wires the repository layer and the predictor into concrete services.
func NewService(repos *repository.Repository, d Deps) *Service {
	cfg := d.Config
	return &Service{
		Wizards: NewWizardStore(WizardDeps{
			Client:       d.Client,
			Notifier:     d.Notifier,
			Events:       repos.EventRepo,
			Profile:      cfg.Profile,
			DismissAfter: cfg.Notify.DismissAfter,
			Demo:         cfg.Predictor.DemoMode,
			Logger:       d.Logger,
		}, Settings{
			BaseURL:   cfg.Predictor.BaseURL,
			URLSource: cfg.Predictor.URLSource,
			FromEnv:   cfg.Predictor.URLSource == "env",
			Demo:      cfg.Predictor.DemoMode,
			Timeout:   cfg.Predictor.Timeout.String(),
			Profile:   cfg.Profile,
		}),
		EventLog:      NewEventLogService(repos.EventRepo),
		Authorization: NewAuthService(repos.Auth, cfg.Auth.SigningKey, cfg.Auth.TokenTTL),
		Notifications: d.Notifications,
	}
}
