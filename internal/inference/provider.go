package inference

import (
	"context"
	"fmt"
)

// Provider answers a question against optional document/clipboard context
// in the requested language. Implementations talk to a locally hosted
// model server; errors come back as values and are rendered as plain text
// by the handlers, never retried.
type Provider interface {
	Answer(ctx context.Context, question string, docContext string, language string) (string, error)
}

// BuildSystemPrompt constrains the model to the supplied context only.
func BuildSystemPrompt(docContext string, language string) string {
	return fmt.Sprintf("You are an expert document analyst. Answer the user's question using ONLY the supplied context below. Always respond in %s. If the answer is not in the context, say so.\n\nContext:\n%s", language, docContext)
}

// BuildGeneralPrompt is the no-context fallback.
func BuildGeneralPrompt(question string, language string) string {
	return fmt.Sprintf("Answer this question clearly in %s:\n\n%s\n\nProvide a comprehensive answer with examples.", language, question)
}
