package translate

import "context"

// Translator converts captured text into the user's target language.
// Implementations are optional glue; a nil Translator means translation
// is disabled and captured text is displayed as is.
type Translator interface {
	Translate(ctx context.Context, text string, targetLanguage string) (string, error)
}
