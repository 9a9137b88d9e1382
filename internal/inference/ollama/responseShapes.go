package ollama

import (
	"encoding/json"
	"strings"
)

// The local server answers in one of a few shapes depending on endpoint
// and version. Each known shape is decoded explicitly, in order; the raw
// body text is the last resort.

type chatShape struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type choicesShape struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type generateShape struct {
	Response string `json:"response"`
}

func decodeReply(raw []byte) string {
	var chat chatShape
	if err := json.Unmarshal(raw, &chat); err == nil && chat.Message.Content != "" {
		return chat.Message.Content
	}

	var choices choicesShape
	if err := json.Unmarshal(raw, &choices); err == nil && len(choices.Choices) > 0 && choices.Choices[0].Message.Content != "" {
		return choices.Choices[0].Message.Content
	}

	var gen generateShape
	if err := json.Unmarshal(raw, &gen); err == nil && gen.Response != "" {
		return gen.Response
	}

	return strings.TrimSpace(string(raw))
}
