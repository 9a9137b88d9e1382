package capture

import (
	"context"
	"strings"
	"time"

	"github.com/adikol/docvoice/pkg/logger_i"
)

// ReadFunc reads the current clipboard value. Non-text content surfaces
// as an error and the tick is skipped.
type ReadFunc func() (string, error)

// Handler receives each newly observed clipboard value.
type Handler func(text string)

// Watcher polls the clipboard on a fixed interval. Identical consecutive
// reads are no-ops; any change triggers the handler, including a change
// back to a previously seen value.
type Watcher struct {
	read     ReadFunc
	interval time.Duration
	handler  Handler
	lastClip string
	logger   *logger_i.Logger
}

func NewWatcher(read ReadFunc, interval time.Duration, handler Handler) *Watcher {
	return &Watcher{
		read:     read,
		interval: interval,
		handler:  handler,
		logger:   logger_i.NewLogger("Clipboard Watcher"),
	}
}

func (w *Watcher) Run(ctx context.Context) {
	w.logger.Info("Clipboard watcher started", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Clipboard watcher stopped")
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

func (w *Watcher) poll() {
	text, err := w.read()
	if err != nil {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" || text == w.lastClip {
		return
	}
	w.lastClip = text
	w.handler(text)
}
