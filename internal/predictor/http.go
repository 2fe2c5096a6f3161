package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"focuseval/internal/sample"
)

// Client talks to the predictor service over HTTP. One request is kept in
// flight at a time by the orchestrator; the per-request timeout lives on the
// underlying http.Client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a predictor client for a base URL with a request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type analyzeContext struct {
	AppName     string    `json:"app_name"`
	WindowTitle string    `json:"window_title,omitempty"`
	UserFocus   string    `json:"user_focus"`
	Timestamp   time.Time `json:"timestamp"`
}

type analyzeRequest struct {
	Text    string         `json:"text"`
	Context analyzeContext `json:"context"`
}

type analyzeResponse struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Category       string  `json:"category"`
	Summary        string  `json:"summary"`
}

// Analyze submits one sample's screen text and focus goal for classification.
func (c *Client) Analyze(ctx context.Context, smp sample.Sample) (sample.Prediction, error) {
	payload := analyzeRequest{
		Text: smp.Text,
		Context: analyzeContext{
			AppName:     smp.AppName,
			WindowTitle: smp.WindowTitle,
			UserFocus:   smp.UserFocus,
			Timestamp:   smp.AnnotatedAt,
		},
	}
	var resp analyzeResponse
	if err := c.post(ctx, "/analyze_focus", payload, &resp); err != nil {
		return sample.Prediction{}, err
	}
	return sample.Prediction{
		IsValid:    resp.Classification == "focused",
		Confidence: resp.Confidence,
		Category:   resp.Category,
		Summary:    resp.Summary,
	}, nil
}

type modelsResponse struct {
	Active    string      `json:"active"`
	Available []ModelInfo `json:"available"`
}

// ActiveModel reports the model currently loaded by the service.
func (c *Client) ActiveModel(ctx context.Context) (string, error) {
	var resp modelsResponse
	if err := c.get(ctx, "/models", &resp); err != nil {
		return "", err
	}
	return resp.Active, nil
}

// ListModels returns the service's model catalog in its reported order.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var resp modelsResponse
	if err := c.get(ctx, "/models", &resp); err != nil {
		return nil, err
	}
	return resp.Available, nil
}

// SwitchModel asks the service to load a different model. The switch is
// asynchronous; readiness is observed through ModelReady.
func (c *Client) SwitchModel(ctx context.Context, id string) error {
	payload := struct {
		Model string `json:"model"`
	}{Model: id}
	return c.post(ctx, "/switch_model", payload, nil)
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// ModelReady reports whether the active model finished loading.
func (c *Client) ModelReady(ctx context.Context) (bool, error) {
	var resp healthResponse
	if err := c.get(ctx, "/health", &resp); err != nil {
		return false, err
	}
	return resp.ModelLoaded, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("predictor %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("predictor %s: HTTP %d: %s", path, resp.StatusCode, bytes.TrimSpace(body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
