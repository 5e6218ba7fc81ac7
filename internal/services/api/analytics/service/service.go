// Package service contains analytics workflows
package service

import (
	"context"
	"time"

	"chatlens/internal/core/analyze"
	"chatlens/internal/core/transcript"
	"chatlens/internal/platform/logger"
	"chatlens/internal/services/api/analytics/domain"
	transsvc "chatlens/internal/services/api/transcripts/service"

	"github.com/google/uuid"
)

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analytics service
type Svc struct {
	agg *analyze.Analyzer
}

// New constructs an analytics service
func New(agg *analyze.Analyzer) *Svc {
	if agg == nil {
		panic("analytics.Service requires a non nil Analyzer")
	}
	return &Svc{agg: agg}
}

// parse runs the pipeline and maps failures onto the coded error surface
func (s *Svc) parse(ctx context.Context, in domain.AnalyzeInput) (transcript.Collection, error) {
	col, err := transcript.Parse(in.Content)
	if err != nil {
		return transcript.Collection{}, transsvc.WrapParseErr(ctx, err)
	}
	return col, nil
}

// Summary returns the headline counters
func (s *Svc) Summary(ctx context.Context, in domain.AnalyzeInput) (domain.SummaryResult, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return domain.SummaryResult{}, err
	}
	return s.agg.Summary(col, in.Author), nil
}

// BusyUsers returns the sender ranking; the author filter does not apply
func (s *Svc) BusyUsers(ctx context.Context, in domain.AnalyzeInput) (domain.BusyUsersResult, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return domain.BusyUsersResult{}, err
	}
	return s.agg.BusyUsers(col), nil
}

// CommonWords returns the top cleaned tokens
func (s *Svc) CommonWords(ctx context.Context, in domain.AnalyzeInput) ([]domain.WordCountRow, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.agg.CommonWords(col, in.Author), nil
}

// WordCloud returns the cleaned corpus blob. An empty corpus degrades to an
// explicit no-data result with a warn log, never a failed request
func (s *Svc) WordCloud(ctx context.Context, in domain.AnalyzeInput) (domain.WordCloudResult, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return domain.WordCloudResult{}, err
	}
	wc := s.agg.WordCloudInput(col, in.Author)
	if wc.Empty {
		logger.C(ctx).Warn().Str("author", in.Author).Msg("word cloud corpus empty after cleaning")
	}
	return wc, nil
}

// EmojiFrequency returns per-emoji counts
func (s *Svc) EmojiFrequency(ctx context.Context, in domain.AnalyzeInput) ([]domain.EmojiRow, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.agg.EmojiFrequency(col, in.Author), nil
}

// MonthlyTimeline returns (year, month) buckets
func (s *Svc) MonthlyTimeline(ctx context.Context, in domain.AnalyzeInput) ([]domain.MonthBucketRow, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.agg.MonthlyTimeline(col, in.Author), nil
}

// DailyTimeline returns per-date counts
func (s *Svc) DailyTimeline(ctx context.Context, in domain.AnalyzeInput) ([]domain.DayBucketRow, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.agg.DailyTimeline(col, in.Author), nil
}

// WeekActivity returns weekday counts
func (s *Svc) WeekActivity(ctx context.Context, in domain.AnalyzeInput) ([]domain.NameCountRow, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.agg.WeekActivity(col, in.Author), nil
}

// MonthActivity returns month-name counts
func (s *Svc) MonthActivity(ctx context.Context, in domain.AnalyzeInput) ([]domain.NameCountRow, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.agg.MonthActivity(col, in.Author), nil
}

// Heatmap returns the weekday by period grid
func (s *Svc) Heatmap(ctx context.Context, in domain.AnalyzeInput) (domain.HeatmapResult, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return domain.HeatmapResult{}, err
	}
	return s.agg.ActivityHeatmap(col, in.Author), nil
}

// Report runs every aggregation in one pass and stamps the bundle
func (s *Svc) Report(ctx context.Context, in domain.AnalyzeInput) (domain.Report, error) {
	col, err := s.parse(ctx, in)
	if err != nil {
		return domain.Report{}, err
	}

	wc := s.agg.WordCloudInput(col, in.Author)
	if wc.Empty {
		logger.C(ctx).Warn().Str("author", in.Author).Msg("word cloud corpus empty after cleaning")
	}

	return domain.Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Author:      in.Author,
		Summary:     s.agg.Summary(col, in.Author),
		BusyUsers:   s.agg.BusyUsers(col),
		CommonWords: s.agg.CommonWords(col, in.Author),
		WordCloud:   wc,
		Emoji:       s.agg.EmojiFrequency(col, in.Author),
		Monthly:     s.agg.MonthlyTimeline(col, in.Author),
		Daily:       s.agg.DailyTimeline(col, in.Author),
		WeekDays:    s.agg.WeekActivity(col, in.Author),
		Months:      s.agg.MonthActivity(col, in.Author),
		Heatmap:     s.agg.ActivityHeatmap(col, in.Author),
	}, nil
}
