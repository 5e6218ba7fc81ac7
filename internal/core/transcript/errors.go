package transcript

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoBoundaries means the boundary pattern never matched; the input is not
// a recognized transcript export
var ErrNoBoundaries = errors.New("transcript: no timestamp boundaries found")

// StructuralMismatchError reports a token/chunk count divergence from the
// splitter. It is fatal for the whole parse
type StructuralMismatchError struct {
	Tokens int
	Chunks int
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("transcript: %d timestamp tokens but %d message chunks", e.Tokens, e.Chunks)
}

// UnparseableTimestampError reports a token that matched none of the
// candidate formats. Samples carries a few raw tokens for diagnosis
type UnparseableTimestampError struct {
	Token   string
	Samples []string
}

func (e *UnparseableTimestampError) Error() string {
	msg := fmt.Sprintf("transcript: unparseable timestamp %q", e.Token)
	if len(e.Samples) > 0 {
		msg += " (sample tokens: " + strings.Join(e.Samples, " | ") + ")"
	}
	return msg
}
