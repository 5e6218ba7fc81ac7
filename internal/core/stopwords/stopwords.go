// Package stopwords loads the stop-word set used by the word frequency
// analyses. A bundled default list ships in the binary; an on-disk override
// may replace it and fails soft back to the bundle
package stopwords

import (
	_ "embed"
	"os"
	"strings"

	"chatlens/internal/platform/logger"
)

//go:embed default_list.txt
var embedded string

// minimal is the last-resort set should the bundled list ever come up empty
var minimal = []string{"the", "and", "to", "of", "i", "a", "you", "is", "in", "it"}

// Set is a stop-word membership set over cleaned lowercase tokens
type Set map[string]struct{}

// Contains reports whether w is a stop word
func (s Set) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Load returns the stop-word set. A non-empty path overrides the bundled
// list; a path that cannot be read is logged and ignored rather than
// failing the caller
func Load(path string) Set {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if s := parse(string(raw)); len(s) > 0 {
				return s
			}
			logger.Named("stopwords").Warn().Str("path", path).Msg("override file empty, using bundled list")
		} else {
			logger.Named("stopwords").Warn().Err(err).Str("path", path).Msg("override unreadable, using bundled list")
		}
	}

	if s := parse(embedded); len(s) > 0 {
		return s
	}
	s := make(Set, len(minimal))
	for _, w := range minimal {
		s[w] = struct{}{}
	}
	return s
}

// parse splits one word per line, trimming and lowercasing; blank lines and
// # comments are skipped
func parse(raw string) Set {
	s := make(Set, 160)
	for _, line := range strings.Split(raw, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}
