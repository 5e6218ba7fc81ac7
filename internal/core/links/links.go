// Package links detects URL spans in message bodies. Detection only; the
// aggregation layer counts spans and never dereferences them
package links

import "mvdan.cc/xurls/v2"

// Detector finds link spans in free text
type Detector struct {
	re interface{ FindAllString(string, int) []string }
}

// New constructs a Detector using the relaxed matcher, which also catches
// scheme-less links like example.com the way chat users actually type them
func New() *Detector {
	return &Detector{re: xurls.Relaxed()}
}

// NewStrict constructs a Detector that only accepts links with a scheme
func NewStrict() *Detector {
	return &Detector{re: xurls.Strict()}
}

// Find returns every link span in text, in order of appearance
func (d *Detector) Find(text string) []string {
	if text == "" {
		return nil
	}
	return d.re.FindAllString(text, -1)
}
