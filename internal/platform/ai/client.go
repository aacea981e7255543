// Package ai implements the client for the external generative-text
// collaborator. Calls are best-effort: one bounded retry on transient
// failure, then ErrServiceUnavailable so handlers can degrade gracefully.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

const (
	requestTimeout     = 20 * time.Second
	defaultTemperature = 0.7
)

// Client talks to a Gemini-style generateContent endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ portssvc.AITextSvc = (*Client)(nil)

// NewClient creates a text generation client. An empty apiKey yields a client
// whose calls always return ErrServiceUnavailable.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt and returns the first candidate's text. A failed
// or malformed call is retried once before giving up.
func (c *Client) generate(ctx context.Context, prompt string, temperature float64, wantJSON bool) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.ErrServiceUnavailable
	}

	cfg := &generationConfig{Temperature: temperature}
	if wantJSON {
		cfg.ResponseMimeType = "application/json"
	}
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		text, err := c.doGenerate(ctx, url, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("%w: %v", apperrors.ErrServiceUnavailable, lastErr)
}

func (c *Client) doGenerate(ctx context.Context, url string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("generation endpoint returned %d: %s", resp.StatusCode, string(payload))
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation response contained no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// SermonOutline generates a sermon outline for a topic.
func (c *Client) SermonOutline(ctx context.Context, req dto.SermonOutlineRequest) (string, error) {
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	var b strings.Builder
	b.WriteString("Write a structured sermon outline on the topic: ")
	b.WriteString(req.Topic)
	b.WriteString(".")
	if req.ScriptureRef != "" {
		b.WriteString(" Anchor it in ")
		b.WriteString(req.ScriptureRef)
		b.WriteString(".")
	}
	if req.Audience != "" {
		b.WriteString(" The audience is ")
		b.WriteString(req.Audience)
		b.WriteString(".")
	}
	b.WriteString(" Use numbered main points with short sub-points.")
	return c.generate(ctx, b.String(), temperature, false)
}

// DailyVerse generates a short verse-of-the-day reflection.
func (c *Client) DailyVerse(ctx context.Context) (string, error) {
	prompt := "Pick one encouraging Bible verse for today and write a two-sentence reflection on it. Start with the verse reference."
	return c.generate(ctx, prompt, defaultTemperature, false)
}

// LocationScout suggests outreach locations for an area.
func (c *Client) LocationScout(ctx context.Context, req dto.LocationScoutRequest) (string, error) {
	var b strings.Builder
	b.WriteString("Suggest five suitable public venues in ")
	b.WriteString(req.Area)
	b.WriteString(" for a church outreach")
	if req.EventKind != "" {
		b.WriteString(" of kind ")
		b.WriteString(req.EventKind)
	}
	b.WriteString(". For each, give the venue type and one sentence on why it fits.")
	return c.generate(ctx, b.String(), defaultTemperature, false)
}

// FinancialInsight generates the structured summary over finance context.
func (c *Client) FinancialInsight(ctx context.Context, financeContext string) (*dto.FinancialInsightResponse, error) {
	var b strings.Builder
	b.WriteString("You are a financial advisor for a church. Given this finance summary:\n")
	b.WriteString(financeContext)
	b.WriteString("\nRespond with JSON of the shape {\"summary\": string, \"recommendations\": [string]}. Keep the summary to three sentences and give at most four recommendations.")

	text, err := c.generate(ctx, b.String(), 0.3, true)
	if err != nil {
		return nil, err
	}

	var insight dto.FinancialInsightResponse
	if err := json.Unmarshal([]byte(text), &insight); err != nil {
		return nil, fmt.Errorf("%w: malformed insight payload: %v", apperrors.ErrServiceUnavailable, err)
	}
	return &insight, nil
}
