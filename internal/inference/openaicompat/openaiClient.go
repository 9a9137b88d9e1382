package openaicompat

import (
	"context"
	"errors"
	"fmt"

	"github.com/adikol/docvoice/internal/inference"
	"github.com/adikol/docvoice/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client speaks the OpenAI-compatible chat surface many local inference
// servers expose (Ollama serves it under /v1).
type Client struct {
	client openai.Client
	model  string
	logger *logger_i.Logger
}

func NewClient(host string, port string, model string) *Client {
	return &Client{
		client: openai.NewClient(
			option.WithBaseURL(fmt.Sprintf("http://%s:%s/v1", host, port)),
			option.WithAPIKey("local"), //the local server ignores the key but the SDK requires one
		),
		model:  model,
		logger: logger_i.NewLogger("llm_openai_compat"),
	}
}

func (c *Client) Answer(ctx context.Context, question string, docContext string, language string) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if docContext != "" {
		messages = append(messages,
			openai.SystemMessage(inference.BuildSystemPrompt(docContext, language)),
			openai.UserMessage(question),
		)
	} else {
		messages = append(messages, openai.UserMessage(inference.BuildGeneralPrompt(question, language)))
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		c.logger.Error("inference request failed", "error", err)
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("inference server returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
