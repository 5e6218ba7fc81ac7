// Package textclean provides a deterministic message cleaner for the word
// frequency analyses
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization and case folding
// 3 Strip URLs
// 4 Strip punctuation and symbols keep letters underscores and spaces
// 5 Strip digits
// 6 Collapse whitespace to single spaces and trim
package textclean

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Cleaner is concurrency safe when used with the pool below
type Cleaner struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(), // unicode case folding
		)
	},
}

// urlRe strips link spans before punctuation folding so scheme and path
// fragments do not leak into the token stream
var urlRe = regexp.MustCompile(`(?:https?://|www\.)\S+`)

// New constructs a Cleaner
func New() *Cleaner { return &Cleaner{} }

// Clean returns the cleaned form of s following the pipeline described above
func (c *Cleaner) Clean(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2 normalize and fold via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 3 strip urls
	ns = urlRe.ReplaceAllString(ns, " ")

	// 4-5 keep letters underscores and whitespace
	ns = stripNonWord(ns)

	// 6 collapse whitespace and trim
	return collapseSpaces(ns)
}

// Tokens cleans s and returns the tokens that survive the stop set and the
// minimum length, in input order
func (c *Cleaner) Tokens(s string, stop map[string]struct{}, minLen int) []string {
	cleaned := c.Clean(s)
	if cleaned == "" {
		return nil
	}
	fields := strings.Fields(cleaned)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len([]rune(w)) < minLen {
			continue
		}
		if _, skip := stop[w]; skip {
			continue
		}
		out = append(out, w)
	}
	return out
}

// stripNonWord drops everything except letters, underscores, and whitespace.
// Digits go too; bare numbers are noise in a word frequency table
func stripNonWord(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
