package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context, in AnalyzeInput) (SummaryResult, error)
	BusyUsers(ctx context.Context, in AnalyzeInput) (BusyUsersResult, error)
	CommonWords(ctx context.Context, in AnalyzeInput) ([]WordCountRow, error)
	WordCloud(ctx context.Context, in AnalyzeInput) (WordCloudResult, error)
	EmojiFrequency(ctx context.Context, in AnalyzeInput) ([]EmojiRow, error)
	MonthlyTimeline(ctx context.Context, in AnalyzeInput) ([]MonthBucketRow, error)
	DailyTimeline(ctx context.Context, in AnalyzeInput) ([]DayBucketRow, error)
	WeekActivity(ctx context.Context, in AnalyzeInput) ([]NameCountRow, error)
	MonthActivity(ctx context.Context, in AnalyzeInput) ([]NameCountRow, error)
	Heatmap(ctx context.Context, in AnalyzeInput) (HeatmapResult, error)
	Report(ctx context.Context, in AnalyzeInput) (Report, error)
}
