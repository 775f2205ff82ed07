// Package predictor talks to the remote battery prediction service.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"

	"battery_dashboard/internal/models"
)

// Remote routes.
const (
	PathPredict      = "/predict"
	PathLifespan     = "/battery-life-years"
	defaultTimeout   = 5 * time.Second
	maxResponseBytes = 1 << 20 // 1 MB
)

// User-facing failure reasons.
const (
	reasonUnavailable    = "Network error or server unavailable."
	reasonTimeout        = "timeout"
	reasonMalformed      = "Malformed response from prediction service."
	reasonPredictFailed  = "Failed to predict battery RUL."
	reasonLifespanFailed = "Failed to estimate battery lifespan."
)

// Client issues the two remote calls used by the wizard.
type Client interface {
	PredictRUL(ctx context.Context, re, rct float64) (models.PredictionResult, error)
	EstimateLifespan(ctx context.Context, rul, distancePerCycle, averageDailyDistance float64) (models.LifespanResult, error)
}

type predictRequest struct {
	Re  float64 `json:"Re"`
	Rct float64 `json:"Rct"`
}

// lifespanRequest carries predicted_RUL explicitly so the service stays stateless.
type lifespanRequest struct {
	PredictedRUL         float64 `json:"predicted_RUL"`
	DistancePerCycle     float64 `json:"mileage_per_cycle"`
	AverageDailyDistance float64 `json:"average_daily_mileage"`
}

// HTTPClient is a Client backed by the JSON-over-HTTP prediction service.
type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for baseURL. A non-positive timeout uses the 5s default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// BaseURL returns the normalized service root.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

// PredictRUL posts Re/Rct to /predict.
func (c *HTTPClient) PredictRUL(ctx context.Context, re, rct float64) (models.PredictionResult, error) {
	var out models.PredictionResult
	if err := c.post(ctx, PathPredict, predictRequest{Re: re, Rct: rct}, &out); err != nil {
		return models.PredictionResult{}, err
	}
	if out.Status != models.StatusSuccess {
		return models.PredictionResult{}, serviceFailure(out.Message, reasonPredictFailed)
	}
	return out, nil
}

// EstimateLifespan posts the usage rates and the prior RUL to /battery-life-years.
func (c *HTTPClient) EstimateLifespan(ctx context.Context, rul, distancePerCycle, averageDailyDistance float64) (models.LifespanResult, error) {
	var out models.LifespanResult
	req := lifespanRequest{
		PredictedRUL:         rul,
		DistancePerCycle:     distancePerCycle,
		AverageDailyDistance: averageDailyDistance,
	}
	if err := c.post(ctx, PathLifespan, req, &out); err != nil {
		return models.LifespanResult{}, err
	}
	if out.Status != models.StatusSuccess {
		return models.LifespanResult{}, serviceFailure(out.Message, reasonLifespanFailed)
	}
	return out, nil
}

func serviceFailure(msg, fallback string) *Failure {
	if strings.TrimSpace(msg) == "" {
		msg = fallback
	}
	return &Failure{Kind: KindService, Reason: msg}
}

// post sends body as JSON and decodes a 2xx reply into out.
func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return &Failure{Kind: KindTransport, Reason: reasonUnavailable, Err: pkgerrors.Wrap(err, "encode request")}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Failure{Kind: KindTransport, Reason: reasonUnavailable, Err: pkgerrors.Wrapf(err, "build request for %s", path)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &Failure{Kind: KindTimeout, Reason: reasonTimeout, Err: err}
		}
		return &Failure{Kind: KindTransport, Reason: reasonUnavailable, Err: pkgerrors.Wrapf(err, "POST %s", path)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &Failure{Kind: KindTimeout, Reason: reasonTimeout, Err: err}
		}
		return &Failure{Kind: KindTransport, Reason: reasonUnavailable, Err: pkgerrors.Wrapf(err, "read %s response", path)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Failure{
			Kind:   KindTransport,
			Reason: errorReason(raw),
			Err:    pkgerrors.Errorf("got %d from %s: %s", resp.StatusCode, path, truncate(string(raw), 200)),
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Failure{Kind: KindTransport, Reason: reasonMalformed, Err: pkgerrors.Wrapf(err, "decode %s response", path)}
	}
	return nil
}

// errorReason returns the service's own message from a non-2xx body when it has one.
func errorReason(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if msg := strings.TrimSpace(body.Message); msg != "" {
			return msg
		}
	}
	return reasonUnavailable
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
