package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/adikol/docvoice/internal/translate"
	"github.com/adikol/docvoice/pkg/logger_i"
	"google.golang.org/genai"
)

type translator struct {
	client    *genai.Client
	modelName string
}

var (
	logger   *logger_i.Logger
	instance *translator
	once     sync.Once
)

// GetGeminiTranslator returns nil when no API key is configured; the
// caller then runs without translation, like the original optional
// translator dependency.
func GetGeminiTranslator(ctx context.Context, apikey string, modelName string) translate.Translator {
	once.Do(func() {
		logger = logger_i.NewLogger("translator_gemini")
		if apikey == "" {
			logger.Warn("No Gemini API key configured, translation disabled")
			return
		}
		newTranslatorClient(ctx, apikey, modelName)
	})

	if instance == nil {
		return nil
	}
	return instance
}

func newTranslatorClient(ctx context.Context, apikey string, modelName string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return
	}
	instance = &translator{client: c, modelName: modelName}
	logger.Info("Gemini translator created", "model", modelName)
}

func (t *translator) Translate(ctx context.Context, text string, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text to %s. Reply with only the translation, nothing else.\n\n%s", targetLanguage, text)

	result, err := t.client.Models.GenerateContent(ctx, t.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	return result.Text(), nil
}
