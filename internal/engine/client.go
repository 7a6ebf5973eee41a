package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vk/embergrid/internal/ctxlog"
	"github.com/vk/embergrid/internal/job"
	"github.com/vk/embergrid/internal/validation"
)

// Client talks to the simulation engine's job API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the engine at baseURL. The timeout bounds
// each request end to end, including reading the response body.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// ValidateResult is the engine's verdict on an assembled job. When Valid is
// false, Tree carries the hierarchical failure report.
type ValidateResult struct {
	Valid bool
	Tree  validation.Result
}

type validateResponse struct {
	Valid      bool              `json:"valid"`
	Validation validation.Result `json:"validation"`
}

type submitResponse struct {
	Job string `json:"job"`
}

// Validate asks the engine to check the job without executing it.
func (c *Client) Validate(ctx context.Context, j *job.Job) (*ValidateResult, error) {
	var out validateResponse
	if err := c.post(ctx, "/api/v1/jobs/validate", j, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &ValidateResult{Valid: out.Valid, Tree: out.Validation}, nil
}

// Submit queues the job for execution and returns the engine's job id.
func (c *Client) Submit(ctx context.Context, j *job.Job) (string, error) {
	var out submitResponse
	if err := c.post(ctx, "/api/v1/jobs", j, http.StatusAccepted, &out); err != nil {
		return "", err
	}
	if out.Job == "" {
		return "", fmt.Errorf("engine accepted job %s but returned no id", j.ID)
	}
	return out.Job, nil
}

func (c *Client) post(ctx context.Context, path string, j *job.Job, wantStatus int, out any) error {
	logger := ctxlog.FromContext(ctx)

	body, err := json.Marshal(encodeJob(j))
	if err != nil {
		return fmt.Errorf("failed to encode job %s: %w", j.ID, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("Calling engine.", "url", url, "job", j.ID)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	logger.Debug("Engine responded.", "url", url, "status", resp.Status)

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("engine returned %s for %s: %s", resp.Status, path, strings.TrimSpace(string(raw)))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode engine response: %w", err)
	}
	return nil
}
