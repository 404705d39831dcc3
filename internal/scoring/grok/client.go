// Package grok implements the external AI scorer against the Grok analyze
// endpoint. Every failure mode degrades to an unavailable result; the client
// never surfaces errors to the evaluation pipeline.
package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-evaluator/internal/scoring"
	"resume-evaluator/internal/shared/telemetry"
)

const requestTimeout = 30 * time.Second

// Client calls the configured Grok endpoint with bearer authentication.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a Grok client, or nil when the API key or URL is
// missing. A nil *Client is a valid, permanently-unavailable scorer.
func NewClient(apiKey, apiURL string) *Client {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(apiURL) == "" {
		return nil
	}
	return &Client{
		apiKey: apiKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type analyzeRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

// Evaluate posts the job and resume text for scoring. Non-200 responses,
// timeouts and malformed bodies all report as unavailable.
func (c *Client) Evaluate(ctx context.Context, jobText, resumeText string) scoring.Result {
	if c == nil {
		return scoring.Unavailable()
	}

	payload, err := json.Marshal(analyzeRequest{
		JobDescription: jobText,
		ResumeText:     resumeText,
	})
	if err != nil {
		return scoring.Unavailable()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return scoring.Unavailable()
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.Error("grok.request.failed", map[string]any{"err": err.Error()})
		return scoring.Unavailable()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		telemetry.Error("grok.request.failed", map[string]any{"status": resp.StatusCode})
		return scoring.Unavailable()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return scoring.Unavailable()
	}

	return parseResponse(body)
}

func parseResponse(body []byte) scoring.Result {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		telemetry.Error("grok.response.malformed", map[string]any{"err": err.Error()})
		return scoring.Unavailable()
	}

	score, ok := numberField(data, "score")
	if !ok {
		return scoring.Unavailable()
	}

	feedback := stringField(data, "feedback")
	if feedback == "" {
		feedback = stringField(data, "comments")
	}

	assessment := rawField(data, "structured_assessment")
	if assessment == nil {
		assessment = rawField(data, "analysis")
	}
	if assessment == nil {
		assessment = json.RawMessage(body)
	}

	return scoring.Result{
		Score:      score,
		Available:  true,
		Feedback:   feedback,
		Assessment: assessment,
	}
}

func numberField(data map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := data[key]
	if !ok {
		return 0, false
	}
	var val float64
	if err := json.Unmarshal(raw, &val); err != nil {
		return 0, false
	}
	return val, true
}

func stringField(data map[string]json.RawMessage, key string) string {
	raw, ok := data[key]
	if !ok {
		return ""
	}
	var val string
	if err := json.Unmarshal(raw, &val); err != nil {
		return ""
	}
	return val
}

func rawField(data map[string]json.RawMessage, key string) json.RawMessage {
	raw, ok := data[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	return raw
}
