package analyze

import (
	"strings"

	"chatlens/internal/core/transcript"
)

// tokens returns the cleaned, stop-filtered tokens of one body
func (a *Analyzer) tokens(body string) []string {
	cleaned := a.clean.Tokens(body, nil, minWordLen)
	out := cleaned[:0]
	for _, w := range cleaned {
		if a.stop.Contains(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// CommonWords returns the top cleaned tokens for the author filter,
// descending, ties by first encounter. Notifications, media placeholders,
// and empty bodies do not participate
func (a *Analyzer) CommonWords(col transcript.Collection, author string) []WordCount {
	c := newCounter()
	for _, r := range wordRecords(col.Filter(author)) {
		for _, w := range a.tokens(r.Body) {
			c.add(w)
		}
	}

	ranked := c.sortedDesc()
	if len(ranked) > topWords {
		ranked = ranked[:topWords]
	}
	out := make([]WordCount, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, WordCount{Word: p.key, Count: p.count})
	}
	return out
}

// WordCloudInput returns the cleaned corpus blob for the external word-cloud
// renderer. An empty-after-cleaning corpus is reported, not an error
func (a *Analyzer) WordCloudInput(col transcript.Collection, author string) WordCloud {
	var parts []string
	for _, r := range wordRecords(col.Filter(author)) {
		if toks := a.tokens(r.Body); len(toks) > 0 {
			parts = append(parts, strings.Join(toks, " "))
		}
	}
	text := strings.Join(parts, " ")
	return WordCloud{Text: text, Empty: text == ""}
}

// EmojiFrequency counts emoji occurrences across all bodies for the author
// filter, descending, ties by first encounter
func (a *Analyzer) EmojiFrequency(col transcript.Collection, author string) []EmojiCount {
	c := newCounter()
	for _, r := range col.Filter(author).Records() {
		for _, e := range a.emoji.Extract(r.Body) {
			c.add(e)
		}
	}

	out := make([]EmojiCount, 0, len(c.order))
	for _, p := range c.sortedDesc() {
		out = append(out, EmojiCount{Emoji: p.key, Count: p.count})
	}
	return out
}
