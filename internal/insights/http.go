package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = "You are a helpdesk analytics assistant. Given aggregated " +
	"ticket statistics for a time period and the comparable previous period, " +
	"write a short narrative highlighting workload, resolution speed, customer " +
	"satisfaction and notable agent performance. Be concrete and use the numbers."

// HTTPGenerator calls an OpenAI-compatible chat-completions endpoint.
type HTTPGenerator struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generate forwards the aggregated context and returns the model's narrative.
func (g HTTPGenerator) Generate(ctx context.Context, req Request) (Insight, error) {
	if strings.TrimSpace(g.BaseURL) == "" {
		return Insight{}, fmt.Errorf("insights base URL is not set")
	}

	contextJSON, err := json.Marshal(req)
	if err != nil {
		return Insight{}, fmt.Errorf("failed to encode insight context: %w", err)
	}

	payload := struct {
		Model    string        `json:"model"`
		Messages []chatMessage `json:"messages"`
	}{
		Model: g.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(contextJSON)},
		},
	}

	body, _ := json.Marshal(payload)
	url := strings.TrimRight(g.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Insight{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(g.APIKey) != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.APIKey)
	}

	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return Insight{}, fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Insight{}, fmt.Errorf("insight service returned %s", resp.Status)
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Insight{}, fmt.Errorf("failed to decode insight response: %w", err)
	}
	if len(res.Choices) == 0 {
		return Insight{}, fmt.Errorf("empty insight response")
	}

	return Insight{
		Narrative:   res.Choices[0].Message.Content,
		Model:       g.Model,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
