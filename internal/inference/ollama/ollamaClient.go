package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/customHttpClient"
	"github.com/adikol/docvoice/internal/inference"
	"github.com/adikol/docvoice/pkg/logger_i"
)

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *logger_i.Logger
}

func NewClient(host string, port string, model string) *Client {
	return &Client{
		baseURL:    fmt.Sprintf("http://%s:%s", host, port),
		model:      model,
		httpClient: customHttpClient.GetPooledClient(config.InferenceTimeout),
		logger:     logger_i.NewLogger("llm_ollama"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// Answer routes context-backed questions through /api/chat with a system
// instruction, and free questions through /api/generate.
func (c *Client) Answer(ctx context.Context, question string, docContext string, language string) (string, error) {
	if docContext != "" {
		body := chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: inference.BuildSystemPrompt(docContext, language)},
				{Role: "user", Content: question},
			},
			Stream: false,
		}
		return c.post(ctx, "/api/chat", body)
	}

	body := generateRequest{
		Model:  c.model,
		Prompt: inference.BuildGeneralPrompt(question, language),
		Stream: false,
	}
	return c.post(ctx, "/api/generate", body)
}

func (c *Client) post(ctx context.Context, path string, body any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("inference request failed", "path", path, "error", err)
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference server returned %d", resp.StatusCode)
	}

	return decodeReply(raw), nil
}
