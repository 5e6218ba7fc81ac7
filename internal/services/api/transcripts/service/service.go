// Package service contains transcript parsing workflows
package service

import (
	"context"
	"errors"
	"time"

	"chatlens/internal/core/transcript"
	perr "chatlens/internal/platform/errors"
	"chatlens/internal/platform/logger"
	"chatlens/internal/services/api/transcripts/domain"
)

// Service defines the transcripts service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the transcripts service
type Svc struct{}

// New constructs a transcripts service
func New() *Svc { return &Svc{} }

// Parse runs the full parse pipeline over the posted export
func (s *Svc) Parse(ctx context.Context, in domain.ParseInput) (domain.ParseResult, error) {
	col, err := transcript.Parse(in.Content)
	if err != nil {
		return domain.ParseResult{}, WrapParseErr(ctx, err)
	}

	records := col.Records()
	out := domain.ParseResult{
		Count:   col.Len(),
		Authors: col.Authors(),
		Records: make([]domain.Record, 0, len(records)),
	}
	for i, r := range records {
		if in.Preview > 0 && i >= in.Preview {
			break
		}
		out.Records = append(out.Records, domain.Record{
			Timestamp: r.Timestamp.Format(time.RFC3339),
			Author:    r.Author,
			Body:      r.Body,
			Date:      r.Calendar.Date,
			Weekday:   r.Calendar.Weekday,
			Period:    r.Calendar.Period,
		})
	}
	return out, nil
}

// WrapParseErr maps core parse failures onto the coded error surface.
// Shared with the analytics service, which runs the same pipeline
func WrapParseErr(ctx context.Context, err error) error {
	log := logger.C(ctx)

	var ts *transcript.UnparseableTimestampError
	if errors.As(err, &ts) {
		log.Warn().Str("token", ts.Token).Msg("unparseable timestamp token")
		return perr.Wrap(err, perr.ErrorCodeParse, "unreadable timestamp in transcript")
	}
	var sm *transcript.StructuralMismatchError
	if errors.As(err, &sm) {
		log.Warn().Int("tokens", sm.Tokens).Int("chunks", sm.Chunks).Msg("boundary structure mismatch")
		return perr.Wrap(err, perr.ErrorCodeParse, "transcript structure mismatch")
	}
	if errors.Is(err, transcript.ErrNoBoundaries) {
		return perr.Wrap(err, perr.ErrorCodeParse, "no message boundaries found")
	}
	return perr.Wrap(err, perr.ErrorCodeParse, "transcript could not be parsed")
}
