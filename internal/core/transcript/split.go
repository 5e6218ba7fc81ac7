package transcript

import "regexp"

// sp matches one separator character. Go's \s is ASCII-only, and some export
// locales put a narrow no-break space (U+202F) or no-break space (U+00A0)
// before the AM/PM marker, so both are folded into the class
const sp = `[\s` + "  " + `]`

// boundary matches one message's date/time prefix plus the " - " separator:
// M/D/YY or M/D/YYYY, a comma, H:MM with optional seconds, an optional
// 12-hour marker, then the dash. Compiled once; shared by Split and Parse
var boundary = regexp.MustCompile(
	`\d{1,2}/\d{1,2}/\d{2,4},` + sp + `\d{1,2}:\d{2}(?::\d{2})?` + sp + `*(?:[AaPp][Mm])?` + sp + `*-` + sp + `*`,
)

// Split cuts raw into an ordered token sequence (the matched timestamp
// prefixes) and an equal-length chunk sequence (the message text between
// consecutive matches). Text before the first match is discarded; exports
// begin with a timestamp
func Split(raw string) (tokens, chunks []string, err error) {
	locs := boundary.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return nil, nil, ErrNoBoundaries
	}

	tokens = make([]string, 0, len(locs))
	chunks = make([]string, 0, len(locs))
	for i, loc := range locs {
		tokens = append(tokens, raw[loc[0]:loc[1]])
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunks = append(chunks, raw[loc[1]:end])
	}

	if len(tokens) != len(chunks) {
		return nil, nil, &StructuralMismatchError{Tokens: len(tokens), Chunks: len(chunks)}
	}
	return tokens, chunks, nil
}
