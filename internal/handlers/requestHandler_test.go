package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/conversation"
	"github.com/adikol/docvoice/pkg/logger_i"
)

type MockProvider struct {
	OnAnswer func(ctx context.Context, question string, docContext string, language string) (string, error)

	GotContext  string
	GotLanguage string
}

func (m *MockProvider) Answer(ctx context.Context, question string, docContext string, language string) (string, error) {
	m.GotContext = docContext
	m.GotLanguage = language
	if m.OnAnswer != nil {
		return m.OnAnswer(ctx, question, docContext, language)
	}
	return "mock answer", nil
}

type MockSynthesizer struct {
	Audio []byte
	Err   error
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return io.NopCloser(bytes.NewReader(m.Audio)), nil
}

func setupHandlers(t *testing.T, provider *MockProvider, synth AudioSynthesizer) *conversation.Registry {
	t.Helper()
	logRH = logger_i.NewLogger("handlers_test")
	registry := conversation.NewRegistry()
	InitRequestHandlers(RequestHandlerDeps{
		Provider:    provider,
		Registry:    registry,
		Synthesizer: synth,
	})
	return registry
}

func tracedRequest(method string, target string, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(r.Context(), config.TRACE_ID_KEY, "test-trace")
	return r.WithContext(ctx)
}

func TestAskHandler_FormatsAnswer(t *testing.T) {
	provider := &MockProvider{OnAnswer: func(ctx context.Context, q string, d string, l string) (string, error) {
		return "Point one\n\nPoint two\n\nPoint three", nil
	}}
	registry := setupHandlers(t, provider, nil)
	registry.SetDocument("notes.pdf", "document body")

	w := httptest.NewRecorder()
	AskHandler(w, tracedRequest(http.MethodPost, "/api/ask", `{"question":"what is this?"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "1. Point one") || !strings.Contains(body, "3. Point three") {
		t.Errorf("answer not numbered:\n%s", body)
	}
	if provider.GotContext != "document body" {
		t.Errorf("provider context got %q, want the registry document", provider.GotContext)
	}
	if provider.GotLanguage != config.DefaultLanguage {
		t.Errorf("language got %q, want default", provider.GotLanguage)
	}
}

func TestAskHandler_MissingQuestion(t *testing.T) {
	setupHandlers(t, &MockProvider{}, nil)

	for _, body := range []string{`{}`, `{"question":"   "}`, `not json`} {
		w := httptest.NewRecorder()
		AskHandler(w, tracedRequest(http.MethodPost, "/api/ask", body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status got %d, want 400", body, w.Code)
		}
	}
}

func TestAskHandler_ExplicitContextWins(t *testing.T) {
	provider := &MockProvider{}
	registry := setupHandlers(t, provider, nil)
	registry.SetDocument("notes.pdf", "document body")

	w := httptest.NewRecorder()
	AskHandler(w, tracedRequest(http.MethodPost, "/api/ask",
		`{"question":"q","context":"pasted snippet","language":"german"}`))

	if provider.GotContext != "pasted snippet" {
		t.Errorf("context got %q, want the explicit value", provider.GotContext)
	}
	if provider.GotLanguage != "german" {
		t.Errorf("language got %q, want german", provider.GotLanguage)
	}
}

func TestAskStreamHandler_StreamsWholeAnswer(t *testing.T) {
	provider := &MockProvider{OnAnswer: func(ctx context.Context, q string, d string, l string) (string, error) {
		return "streamed  answer\nwith   spacing", nil
	}}
	setupHandlers(t, provider, nil)

	w := httptest.NewRecorder()
	AskStreamHandler(w, tracedRequest(http.MethodPost, "/api/ask-stream", `{"question":"q"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want 200", w.Code)
	}
	// whitespace collapses to single spaces on the wire
	if got := w.Body.String(); got != "streamed answer with spacing" {
		t.Errorf("streamed body got %q", got)
	}
}

func TestAskStreamHandler_InferenceFailureIsPlainText(t *testing.T) {
	provider := &MockProvider{OnAnswer: func(ctx context.Context, q string, d string, l string) (string, error) {
		return "", errors.New("connection refused")
	}}
	setupHandlers(t, provider, nil)

	w := httptest.NewRecorder()
	AskStreamHandler(w, tracedRequest(http.MethodPost, "/api/ask-stream", `{"question":"q"}`))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status got %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to get response") {
		t.Errorf("expected a readable failure message, got %q", w.Body.String())
	}
}

func TestAskAudioStreamHandler(t *testing.T) {
	audio := bytes.Repeat([]byte{0xAB}, 3000) // spans multiple chunks

	t.Run("Streams_MP3_Bytes", func(t *testing.T) {
		setupHandlers(t, &MockProvider{}, &MockSynthesizer{Audio: audio})

		w := httptest.NewRecorder()
		AskAudioStreamHandler(w, tracedRequest(http.MethodPost, "/api/ask-audio-stream", `{"question":"q"}`))

		if w.Code != http.StatusOK {
			t.Fatalf("status got %d, want 200", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
			t.Errorf("content type got %q", ct)
		}
		if !bytes.Equal(w.Body.Bytes(), audio) {
			t.Errorf("audio body mismatch: got %d bytes, want %d", w.Body.Len(), len(audio))
		}
	})

	t.Run("Not_Configured", func(t *testing.T) {
		setupHandlers(t, &MockProvider{}, nil)

		w := httptest.NewRecorder()
		AskAudioStreamHandler(w, tracedRequest(http.MethodPost, "/api/ask-audio-stream", `{"question":"q"}`))

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status got %d, want 503", w.Code)
		}
	})

	t.Run("Synthesis_Failure", func(t *testing.T) {
		setupHandlers(t, &MockProvider{}, &MockSynthesizer{Err: errors.New("voice unavailable")})

		w := httptest.NewRecorder()
		AskAudioStreamHandler(w, tracedRequest(http.MethodPost, "/api/ask-audio-stream", `{"question":"q"}`))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status got %d, want 500", w.Code)
		}
	})
}

func TestResolveLanguage(t *testing.T) {
	if got := resolveLanguage(""); got != config.DefaultLanguage {
		t.Errorf("empty language got %q", got)
	}
	if got := resolveLanguage("telugu"); got != "telugu" {
		t.Errorf("got %q, want telugu", got)
	}
}

func TestFormatIntegration_NoResponse(t *testing.T) {
	provider := &MockProvider{OnAnswer: func(ctx context.Context, q string, d string, l string) (string, error) {
		return "   ", nil
	}}
	setupHandlers(t, provider, nil)

	w := httptest.NewRecorder()
	AskHandler(w, tracedRequest(http.MethodPost, "/api/ask", `{"question":"q"}`))

	if !strings.Contains(w.Body.String(), "No response from model.") {
		t.Errorf("blank reply should surface as no-response, got %q", w.Body.String())
	}
}
