package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// systemPrompt frames the assistant persona. It wraps every user message and
// is not user-controllable.
const systemPrompt = `You are a helpful medical assistant. Provide clear, concise, and accurate medical information.
Follow these guidelines:
1. Be professional and empathetic
2. Provide detailed but easy to understand explanations
3. Include relevant medical advice and precautions
4. Always recommend consulting a doctor for serious conditions
5. Format your response in a clear, structured way
6. If the question is not medical related, politely inform that you can only help with medical queries

User's question: `

// GeminiClient calls a Gemini-style generateContent endpoint.
type GeminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewGeminiClient creates a new completion client. The timeout bounds the
// whole upstream call; a timeout surfaces as an ordinary completion failure.
func NewGeminiClient(baseURL, model, apiKey string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
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

// Complete sends the system-primed prompt plus the user message upstream and
// returns the generated text. Any transport error, non-2xx status, or
// unexpected response shape is a completion failure.
func (c *GeminiClient) Complete(ctx context.Context, userMessage string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{{Text: systemPrompt + userMessage}},
		}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var result generateContentResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	// Strict shape check: a missing candidate or part is a failure, not a fault.
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("unexpected completion response shape")
	}
	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty completion text")
	}
	return text, nil
}
