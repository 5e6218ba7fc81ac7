// Package emojis classifies runes against the Unicode emoji table. It
// mirrors the per-character membership test the frequency analyses need:
// multi-rune sequences (skin tones, ZWJ families) count per component
package emojis

import "github.com/forPelevin/gomoji"

// Classifier answers emoji membership questions over a fixed alphabet
type Classifier struct{}

// New constructs a Classifier
func New() *Classifier { return &Classifier{} }

// Is reports whether r is an emoji
func (c *Classifier) Is(r rune) bool {
	_, err := gomoji.GetInfo(string(r))
	return err == nil
}

// Extract returns every emoji occurrence in text, one entry per rune, in
// order of appearance
func (c *Classifier) Extract(text string) []string {
	var out []string
	for _, r := range text {
		if c.Is(r) {
			out = append(out, string(r))
		}
	}
	return out
}
