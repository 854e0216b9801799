package ui

import "sync"

// Text is a UI label.
type Text struct {
	mu      sync.Mutex
	text    string
	enabled bool
}

// NewText creates an enabled label with the given text.
func NewText(text string) *Text {
	return &Text{text: text, enabled: true}
}

// Text returns the label's current text.
func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// SetText replaces the label's text.
func (t *Text) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = text
}

// Enabled returns whether the label is shown.
func (t *Text) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// SetEnabled shows or hides the label.
func (t *Text) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}
