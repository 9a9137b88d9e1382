package conversation

import "sync"

// Registry holds the two context sources a question can draw on: the text
// of the most recently processed document and the last clipboard capture.
// Each question is answered independently; no turn history is kept here.
type Registry struct {
	mu            sync.RWMutex
	documentName  string
	documentText  string
	clipboardText string
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) SetDocument(name string, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documentName = name
	r.documentText = text
}

func (r *Registry) SetClipboard(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clipboardText = text
}

func (r *Registry) Document() (string, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.documentName, r.documentText
}

// Resolve picks the context for a question: an explicit value wins, then
// document text, then clipboard text. Empty means "no context available".
func (r *Registry) Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.documentText != "" {
		return r.documentText
	}
	return r.clipboardText
}
