package transcript

import "errors"

// sampleTokens is how many raw tokens an UnparseableTimestampError carries
// for diagnosis
const sampleTokens = 5

// Parse runs the full pipeline over one raw export. It produces exactly one
// Record per timestamp boundary, in input order, or fails without exposing a
// partial collection
func Parse(raw string) (Collection, error) {
	tokens, chunks, err := Split(raw)
	if err != nil {
		return Collection{}, err
	}

	records := make([]Record, 0, len(tokens))
	for i, tok := range tokens {
		ts, err := ParseTimestamp(tok)
		if err != nil {
			var ue *UnparseableTimestampError
			if errors.As(err, &ue) {
				n := min(sampleTokens, len(tokens))
				ue.Samples = append(ue.Samples, tokens[:n]...)
			}
			return Collection{}, err
		}

		author, body := Classify(chunks[i])
		records = append(records, Record{
			Timestamp: ts,
			Author:    author,
			Body:      body,
			Calendar:  Enrich(ts),
		})
	}

	if len(records) != len(tokens) {
		return Collection{}, &StructuralMismatchError{Tokens: len(tokens), Chunks: len(records)}
	}
	return Collection{records: records}, nil
}
