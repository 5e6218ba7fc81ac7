package module

import (
	"context"

	"chatlens/internal/services/api/analytics/domain"
	ansvc "chatlens/internal/services/api/analytics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnalyticsPort struct {
	svc       ansvc.Service
	stopwords int
}

// StopwordCount reports how many stop words the analyzer loaded
func (a adaptAnalyticsPort) StopwordCount() int { return a.stopwords }

// Report runs the all-in-one bundle for other modules
func (a adaptAnalyticsPort) Report(ctx context.Context, in domain.AnalyzeInput) (domain.Report, error) {
	return a.svc.Report(ctx, in)
}

// Summary runs the headline counters for other modules
func (a adaptAnalyticsPort) Summary(ctx context.Context, in domain.AnalyzeInput) (domain.SummaryResult, error) {
	return a.svc.Summary(ctx, in)
}
