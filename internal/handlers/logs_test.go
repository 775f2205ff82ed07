package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"battery_dashboard/internal/models"
	"battery_dashboard/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	auth := &mockAuth{parseID: 99}
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.WizardEvent{
		{EventID: "e1", UserID: 99, OccurredAt: now, Type: models.EventPredict, Description: "predicted"},
		{EventID: "e2", UserID: 99, OccurredAt: now.Add(1 * time.Second), Type: models.EventLifespan, Description: "estimated"},
	}
	logs := &mockEventLog{resp: events}
	s := &service.Service{
		Authorization: auth,
		EventLog:      logs,
	}
	r := newTestRouter(s)

	// Missing/invalid 'from' → 400
	w := doJSON(r, http.MethodGet, "/api/v1/logs?from=notatime", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/logs?from=2025-02-02&to=2025-02-01", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed range, got %d", w.Code)
	}

	// Lowercase type is normalized before the service call.
	q := "/api/v1/logs?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=lifespan"
	w = doJSON(r, http.MethodGet, q, "")
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                  `json:"count"`
		Events []models.WizardEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != models.EventLifespan {
		t.Fatalf("expected lastType LIFESPAN, got %q", logs.lastType)
	}
	if logs.lastUser != 99 {
		t.Fatalf("expected user 99, got %d", logs.lastUser)
	}
	if !logs.lastFrom.Equal(now) {
		t.Fatalf("from=%v; want %v", logs.lastFrom, now)
	}
}

func TestLogsHandler_DateOnlyToIsEndOfDay(t *testing.T) {
	logs := &mockEventLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs})

	w := doJSON(r, http.MethodGet, "/api/v1/logs?to=2025-03-04", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	want := time.Date(2025, 3, 4, 23, 59, 59, 999999999, time.UTC)
	if !logs.lastTo.Equal(want) {
		t.Fatalf("to=%v; want %v", logs.lastTo, want)
	}
}

func TestLogsHandler_ServiceError(t *testing.T) {
	logs := &mockEventLog{err: errors.New("db down")}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs})

	w := doJSON(r, http.MethodGet, "/api/v1/logs", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
