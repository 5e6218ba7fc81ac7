// Package analyze implements the descriptive statistics over a parsed
// transcript collection. Every function is pure over the collection plus an
// author filter; the external lookups (link detection, emoji membership,
// stop words) are injected as capabilities so tests can substitute fakes
package analyze

import (
	"chatlens/internal/core/textclean"
	"chatlens/internal/core/transcript"
)

// LinkFinder finds link spans in free text. Used only for counting
type LinkFinder interface {
	Find(text string) []string
}

// EmojiExtractor returns every emoji occurrence in text
type EmojiExtractor interface {
	Extract(text string) []string
}

// StopSet answers stop-word membership for cleaned lowercase tokens
type StopSet interface {
	Contains(word string) bool
}

// minWordLen is the shortest token the word frequency analyses keep
const minWordLen = 3

// topWords is the size of the common-words table
const topWords = 20

// topUsers is the size of the busy-users ranking
const topUsers = 5

// Analyzer runs aggregations over transcript collections
type Analyzer struct {
	links LinkFinder
	emoji EmojiExtractor
	stop  StopSet
	clean *textclean.Cleaner
}

// New constructs an Analyzer with the given capabilities
func New(links LinkFinder, emoji EmojiExtractor, stop StopSet) *Analyzer {
	return &Analyzer{
		links: links,
		emoji: emoji,
		stop:  stop,
		clean: textclean.New(),
	}
}

// wordRecords returns the filtered records that participate in word
// frequency analyses: no notifications, no media placeholders, no bodies
// that are empty after trimming
func wordRecords(col transcript.Collection) []transcript.Record {
	out := make([]transcript.Record, 0, col.Len())
	for _, r := range col.Records() {
		if r.IsNotification() {
			continue
		}
		if containsMedia(r.Body) {
			continue
		}
		if r.Body == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
