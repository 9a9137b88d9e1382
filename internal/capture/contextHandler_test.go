package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/conversation"
	"github.com/adikol/docvoice/pkg/logger_i"
)

type MockTranslator struct {
	OnTranslate func(ctx context.Context, text string, targetLanguage string) (string, error)

	GotText     string
	GotLanguage string
	Calls       int
}

func (m *MockTranslator) Translate(ctx context.Context, text string, targetLanguage string) (string, error) {
	m.Calls++
	m.GotText = text
	m.GotLanguage = targetLanguage
	if m.OnTranslate != nil {
		return m.OnTranslate(ctx, text, targetLanguage)
	}
	return "translated: " + text, nil
}

func TestContextHandler_TranslatesNewCaptures(t *testing.T) {
	registry := conversation.NewRegistry()
	translator := &MockTranslator{}
	log := logger_i.NewLogger("capture_test")

	h := ContextHandler(context.Background(), registry, translator, log)
	h("copied sentence")

	if got := registry.Resolve(""); got != "copied sentence" {
		t.Errorf("registry got %q, want the captured text", got)
	}
	if translator.Calls != 1 {
		t.Fatalf("translator calls got %d, want 1", translator.Calls)
	}
	if translator.GotText != "copied sentence" {
		t.Errorf("translated text got %q", translator.GotText)
	}
	if translator.GotLanguage != config.DefaultLanguage {
		t.Errorf("target language got %q, want default", translator.GotLanguage)
	}
}

func TestContextHandler_NoTranslatorStillCaptures(t *testing.T) {
	registry := conversation.NewRegistry()
	log := logger_i.NewLogger("capture_test")

	h := ContextHandler(context.Background(), registry, nil, log)
	h("display only")

	if got := registry.Resolve(""); got != "display only" {
		t.Errorf("registry got %q, want the captured text", got)
	}
}

func TestContextHandler_TranslationFailureKeepsCapture(t *testing.T) {
	registry := conversation.NewRegistry()
	translator := &MockTranslator{OnTranslate: func(ctx context.Context, text string, lang string) (string, error) {
		return "", errors.New("quota exceeded")
	}}
	log := logger_i.NewLogger("capture_test")

	h := ContextHandler(context.Background(), registry, translator, log)
	h("still captured")

	if got := registry.Resolve(""); got != "still captured" {
		t.Errorf("registry got %q, the original text must survive a failed translation", got)
	}
}

func TestWatcher_DrivesContextHandler(t *testing.T) {
	registry := conversation.NewRegistry()
	translator := &MockTranslator{}
	log := logger_i.NewLogger("capture_test")

	f := &feed{values: []string{"first", "first", "second"}}
	w := NewWatcher(f.read, 0, ContextHandler(context.Background(), registry, translator, log))

	for range f.values {
		w.poll()
	}

	// two distinct captures, each translated once
	if translator.Calls != 2 {
		t.Errorf("translator calls got %d, want 2", translator.Calls)
	}
	if got := registry.Resolve(""); got != "second" {
		t.Errorf("registry got %q, want the latest capture", got)
	}
}
