package transcript

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Candidate layouts are tried in a fixed priority order and the first one
// that parses wins. Exports carry no locale marker, so a token like
// 02/03/23 is genuinely ambiguous between day-first and month-first; the
// cascade does not try to re-rank on such tokens, it just takes the first
// fit. Month-day order and 2-digit years come first to match the most
// common export shape
var (
	layouts12h = []string{
		"1/2/06, 3:04 PM",
		"2/1/06, 3:04 PM",
		"1/2/2006, 3:04 PM",
		"2/1/2006, 3:04 PM",
	}
	layouts12hSec = []string{
		"1/2/06, 3:04:05 PM",
		"2/1/06, 3:04:05 PM",
		"1/2/2006, 3:04:05 PM",
		"2/1/2006, 3:04:05 PM",
	}
	layouts24h = []string{
		"1/2/06, 15:04",
		"2/1/06, 15:04",
		"1/2/2006, 15:04",
		"2/1/2006, 15:04",
	}
	layouts24hSec = []string{
		"1/2/06, 15:04:05",
		"2/1/06, 15:04:05",
		"1/2/2006, 15:04:05",
		"2/1/2006, 15:04:05",
	}
)

var (
	meridiemRe = regexp.MustCompile(`(?i)([ap])m`)
	secondsRe  = regexp.MustCompile(`\d{1,2}:\d{2}:\d{2}`)
)

// normalizeToken makes a raw boundary token parseable: compatibility
// decomposition, invisible-space folding, whitespace collapse, and
// separator residue trimming
func normalizeToken(tok string) string {
	tok, _, _ = transform.String(norm.NFKD, strings.TrimSpace(tok))

	// different clients use different invisible separators before AM/PM
	tok = strings.ReplaceAll(tok, " ", " ")
	tok = strings.ReplaceAll(tok, " ", " ")

	tok = collapseSpaces(tok)
	tok = strings.TrimSpace(strings.Trim(tok, "-"))
	tok = strings.TrimSpace(tok)
	return tok
}

// collapseSpaces converts runs of whitespace to a single ASCII space
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

// ParseTimestamp maps one boundary token to a canonical instant, taken as
// naive local time of the export. It fails with *UnparseableTimestampError
// when no candidate format fits
func ParseTimestamp(tok string) (time.Time, error) {
	s := normalizeToken(tok)

	// Go layouts are case-exact for the meridiem, exports are not
	s = meridiemRe.ReplaceAllStringFunc(s, strings.ToUpper)

	withSec := secondsRe.MatchString(s)

	var cascade []string
	if strings.Contains(s, "AM") || strings.Contains(s, "PM") {
		cascade = layouts12h
		if withSec {
			cascade = layouts12hSec
		}
	} else {
		cascade = layouts24h
		if withSec {
			cascade = layouts24hSec
		}
	}

	for _, layout := range cascade {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, &UnparseableTimestampError{Token: strings.TrimSpace(tok)}
}
