package analyze

import (
	"math"
	"strings"

	"chatlens/internal/core/transcript"
)

// containsMedia reports whether a body carries the media placeholder
func containsMedia(body string) bool {
	return strings.Contains(body, transcript.MediaPlaceholder)
}

// Summary computes the headline counters for the author filter
func (a *Analyzer) Summary(col transcript.Collection, author string) Summary {
	filtered := col.Filter(author)

	var s Summary
	s.Messages = filtered.Len()
	for _, r := range filtered.Records() {
		s.Words += len(strings.Fields(r.Body))
		if r.IsMedia() {
			s.Media++
		}
		s.Links += len(a.links.Find(r.Body))
	}
	return s
}

// BusyUsers ranks authors by message count over the whole collection. The
// author filter is deliberately ignored; a single-user ranking is
// meaningless. Ties keep first-encounter order
func (a *Analyzer) BusyUsers(col transcript.Collection) BusyUsers {
	c := newCounter()
	for _, r := range col.Records() {
		c.add(r.Author)
	}

	ranked := c.sortedDesc()
	total := c.total()

	out := BusyUsers{
		Top:    make([]UserCount, 0, topUsers),
		Shares: make([]UserShare, 0, len(ranked)),
	}
	for i, p := range ranked {
		if i < topUsers {
			out.Top = append(out.Top, UserCount{Author: p.key, Messages: p.count})
		}
		out.Shares = append(out.Shares, UserShare{
			Author:  p.key,
			Percent: round2(float64(p.count) / float64(total) * 100),
		})
	}
	return out
}

// round2 rounds to two decimal places
func round2(f float64) float64 { return math.Round(f*100) / 100 }
