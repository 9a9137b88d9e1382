package capture

import (
	"context"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/conversation"
	"github.com/adikol/docvoice/internal/translate"
	"github.com/adikol/docvoice/pkg/logger_i"
)

// ContextHandler is the watcher handler the service wires in: every new
// capture lands in the conversation registry, and when a translator is
// configured the text is auto-translated for display. Translation failure
// never blocks the capture; the registry keeps the original text either way.
func ContextHandler(ctx context.Context, registry *conversation.Registry, translator translate.Translator, logger *logger_i.Logger) Handler {
	return func(text string) {
		registry.SetClipboard(text)

		if translator == nil {
			logger.Info("Clipboard captured", "characters", len(text))
			return
		}

		tctx, cancel := context.WithTimeout(ctx, config.InferenceTimeout)
		defer cancel()

		translated, err := translator.Translate(tctx, text, config.DefaultLanguage)
		if err != nil {
			logger.Error("Clipboard translation failed", "error", err)
			return
		}
		logger.Info("Clipboard translated", "characters", len(text), "translation", translated)
	}
}
