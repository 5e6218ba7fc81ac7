package transcript

import (
	"regexp"
	"strings"
)

// authorRe finds the first "name: " boundary in a chunk. Bodies that start
// with their own "text: more" prefix before any real author delimiter are
// inherently ambiguous under this grammar; first match wins, accepted as a
// known misclassification source for pathological bodies
var authorRe = regexp.MustCompile(`([^:]+):\s`)

// Classify splits one chunk into (author, body). Chunks without a colon-space
// boundary are system notifications: the sentinel author and the full
// trimmed chunk as body
func Classify(chunk string) (author, body string) {
	chunk = strings.TrimSpace(chunk)

	m := authorRe.FindStringSubmatchIndex(chunk)
	if m == nil {
		return Notification, chunk
	}
	author = strings.TrimSpace(chunk[m[2]:m[3]])
	body = strings.TrimSpace(chunk[m[1]:])
	return author, body
}
