// Package gemini calls the Gemini generateContent REST endpoint to rewrite
// feedback text. The client is an external collaborator: callers treat every
// failure as a pass-through and must never surface it to the user.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
)

// Config holds the upstream endpoint settings.
type Config struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// Client implements the TextEnhancer port over the Gemini REST API.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ portssvc.TextEnhancer = (*Client)(nil)

// NewClient creates a Gemini client. The HTTP client carries a timeout so an
// unresponsive upstream cannot hang a request indefinitely.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Enhance sends the feedback text wrapped in the HR enhancement prompt and
// returns the rewritten text. Any failure returns an error; the feedback
// service converts errors into a pass-through of the original text.
func (c *Client) Enhance(ctx context.Context, text string, employeeName string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(text, employeeName)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode enhancement request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build enhancement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("enhancement request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("enhancement request failed: %s", resp.Status)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode enhancement response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("enhancement response contained no candidates")
	}

	enhanced := parsed.Candidates[0].Content.Parts[0].Text
	c.logger.Debug("Enhancement response received", slog.Int("length", len(enhanced)))
	return enhanced, nil
}

// buildPrompt wraps the raw feedback in the HR enhancement instructions.
func buildPrompt(text string, employeeName string) string {
	nameContext := ""
	if employeeName != "" {
		nameContext = " for " + employeeName
	}
	return fmt.Sprintf(`You are a professional HR feedback enhancement assistant. Your role is to transform any employee feedback into constructive, professional, and actionable workplace communication.
Transform this workplace feedback%s into professional, constructive communication. Keep it concise (2-3 sentences max) and natural.

SAFETY FILTERING (CRITICAL):
- Remove or rephrase any profanity, harsh language, or toxic expressions
- Eliminate personal accusations or character attacks
- Convert complaints into constructive suggestions
- Transform negative statements into growth opportunities
- Replace vague criticisms with specific, actionable feedback

ENHANCEMENT REQUIREMENTS:
- Use the actual person's name if provided
- Make it constructive and solution-focused
- Keep the original meaning but improve tone
- Be specific and actionable
- Sound natural, not robotic
- Focus on behaviors and outcomes, not personality traits
- Use "I" statements and observation-based language

Original feedback: "%s"

Enhanced version:`, nameContext, text)
}
