package answer

import (
	"fmt"
	"strings"
)

const (
	exampleNote  = "Example:\nRefer to the example given above."
	sourceFooter = "Source: Answer generated using the supplied text and the local model."
)

// Format turns a raw model reply into numbered points. Paragraphs win when
// there are at least three of them; otherwise the text is split into
// sentences. This is a presentation heuristic, nothing more.
func Format(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "No response from model."
	}

	parts := segments(text)

	var lines []string
	if len(parts) >= 3 {
		lines = parts
	} else {
		lines = splitSentences(text)
	}

	numbered := make([]string, 0, len(lines))
	for i, line := range lines {
		numbered = append(numbered, fmt.Sprintf("%d. %s", i+1, line))
	}
	out := strings.Join(numbered, "\n\n")

	lower := strings.ToLower(text)
	if strings.Contains(lower, "example") || strings.Contains(lower, "e.g.") {
		out += "\n\n" + exampleNote
	}

	return out + "\n\n" + sourceFooter
}

func segments(text string) []string {
	sep := "\n"
	if strings.Contains(text, "\n\n") {
		sep = "\n\n"
	}
	var parts []string
	for _, p := range strings.Split(text, sep) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// splitSentences is a naive split on sentence-ending punctuation followed
// by a space.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		b.WriteRune(runes[i])
		if isTerminator(runes[i]) && (i+1 == len(runes) || runes[i+1] == ' ') {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
