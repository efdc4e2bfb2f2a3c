// Package gemini generates the daily English practice sentence through the
// Gemini REST API. The collaborator must never fail visibly: any error,
// timeout or missing credential degrades to a fixed fallback pair.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"treasury/internal/engine"
	"treasury/internal/log"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultTimeout = 15 * time.Second

	prompt = "Generate a simple, inspiring, or useful English sentence for a primary school student to practice speaking. Include the Chinese translation. Return ONLY JSON."
)

// Fallback is returned whenever the API cannot produce a pair.
var Fallback = engine.SentencePair{
	Sentence:    "Practice makes perfect.",
	Translation: "熟能生巧。",
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
	log     *log.Logger
}

func NewClient(apiKey, model string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default().WithComponent("gemini")
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     logger,
	}
}

// Generate returns a sentence/translation pair. It never returns an error:
// the fallback pair is the answer to every failure mode.
func (c *Client) Generate(ctx context.Context) engine.SentencePair {
	if c.apiKey == "" {
		c.log.Debug("no api key configured, using fallback sentence")
		return Fallback
	}
	pair, err := c.generate(ctx)
	if err != nil {
		c.log.Warn("sentence generation failed, using fallback", "error", err)
		return Fallback
	}
	return pair
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context) (engine.SentencePair, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"sentence":    map[string]any{"type": "STRING"},
					"translation": map[string]any{"type": "STRING"},
				},
				"required": []string{"sentence", "translation"},
			},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return engine.SentencePair{}, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return engine.SentencePair{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return engine.SentencePair{}, fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return engine.SentencePair{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return engine.SentencePair{}, fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return engine.SentencePair{}, fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return engine.SentencePair{}, fmt.Errorf("empty response")
	}

	var pair engine.SentencePair
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &pair); err != nil {
		return engine.SentencePair{}, fmt.Errorf("decode sentence pair: %w", err)
	}
	if pair.Sentence == "" {
		return engine.SentencePair{}, fmt.Errorf("response missing sentence")
	}
	return pair, nil
}
