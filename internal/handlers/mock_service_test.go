package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"battery_dashboard/internal/models"
	"battery_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockWizards records the last call; results come from the configured fields.
type mockWizards struct {
	snap     models.WizardSnapshot
	err      error
	field    models.FieldState
	commit   bool
	chart    []models.ChartPoint
	curve    []models.HealthPoint
	settings service.Settings

	lastUser      int
	lastField     string
	lastEdit      service.FieldEdit
	lastImpedance *models.ImpedanceInput
	lastUsage     *models.UsageInput
	calls         map[string]int
}

func (m *mockWizards) called(name string, userID int) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
	m.lastUser = userID
}

func (m *mockWizards) Snapshot(userID int) models.WizardSnapshot {
	m.called("snapshot", userID)
	return m.snap
}
func (m *mockWizards) EditField(userID int, name string, e service.FieldEdit) (models.FieldState, bool, error) {
	m.called("edit", userID)
	m.lastField = name
	m.lastEdit = e
	return m.field, m.commit, m.err
}
func (m *mockWizards) SubmitImpedance(ctx context.Context, userID int, in *models.ImpedanceInput) (models.WizardSnapshot, error) {
	m.called("predict", userID)
	m.lastImpedance = in
	return m.snap, m.err
}
func (m *mockWizards) SubmitUsage(ctx context.Context, userID int, in *models.UsageInput) (models.WizardSnapshot, error) {
	m.called("lifespan", userID)
	m.lastUsage = in
	return m.snap, m.err
}
func (m *mockWizards) Back(ctx context.Context, userID int) (models.WizardSnapshot, error) {
	m.called("back", userID)
	return m.snap, m.err
}
func (m *mockWizards) Reset(ctx context.Context, userID int) models.WizardSnapshot {
	m.called("reset", userID)
	return m.snap
}
func (m *mockWizards) LifespanChart(userID int) ([]models.ChartPoint, error) {
	m.called("chart", userID)
	return m.chart, m.err
}
func (m *mockWizards) HealthCurve(userID int) ([]models.HealthPoint, error) {
	m.called("curve", userID)
	return m.curve, m.err
}
func (m *mockWizards) Settings() service.Settings { return m.settings }

type mockEventLog struct {
	resp     []models.WizardEvent
	err      error
	lastUser int
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.WizardEvent, error) {
	m.lastUser = f.UserID
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// mockSubscriber hands out one pre-made channel.
type mockSubscriber struct {
	ch       chan models.Notification
	lastUser int
	canceled chan struct{}
}

func (m *mockSubscriber) Subscribe(userID int) (<-chan models.Notification, func()) {
	m.lastUser = userID
	return m.ch, func() { close(m.canceled) }
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// doJSON sends a request with a bearer token and optional JSON body.
func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
