// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/platform/net/http/bind"
	"chatlens/internal/services/api/analytics/domain"
	svc "chatlens/internal/services/api/analytics/service"
)

// Deps are the handler dependencies
type Deps struct {
	Svc svc.Service
	// MaxBytes caps the request body; exports can be large
	MaxBytes int64
}

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	opts := bind.JSONOptions{MaxBytes: d.MaxBytes, DisallowUnknown: true}
	post := func(path string, fn func(*stdhttp.Request, domain.AnalyzeInput) (any, error)) {
		httpkit.PostJSON(r, path, fn, opts)
	}

	post("/summary", h.summary)
	post("/busy-users", h.busyUsers)
	post("/words/common", h.commonWords)
	post("/words/cloud", h.wordCloud)
	post("/emoji", h.emoji)
	post("/timeline/monthly", h.monthly)
	post("/timeline/daily", h.daily)
	post("/activity/week", h.week)
	post("/activity/month", h.month)
	post("/activity/heatmap", h.heatmap)
	post("/report", h.report)
}

type handlers struct{ deps Deps }

// swagger:route POST /analytics/summary Analytics analyticsSummary
// @Summary Headline counters for a transcript
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {object} domain.SummaryResult "ok"
// @Router /analytics/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.Summary(r.Context(), in)
}

// swagger:route POST /analytics/busy-users Analytics analyticsBusyUsers
// @Summary Sender ranking with percent shares
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {object} domain.BusyUsersResult "ok"
// @Router /analytics/busy-users [post]
func (h *handlers) busyUsers(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.BusyUsers(r.Context(), in)
}

// swagger:route POST /analytics/words/common Analytics analyticsCommonWords
// @Summary Top cleaned tokens
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {array} domain.WordCountRow "ok"
// @Router /analytics/words/common [post]
func (h *handlers) commonWords(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.CommonWords(r.Context(), in)
}

// swagger:route POST /analytics/words/cloud Analytics analyticsWordCloud
// @Summary Cleaned corpus blob for a word cloud renderer
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {object} domain.WordCloudResult "ok"
// @Router /analytics/words/cloud [post]
func (h *handlers) wordCloud(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.WordCloud(r.Context(), in)
}

// swagger:route POST /analytics/emoji Analytics analyticsEmoji
// @Summary Emoji frequency table
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {array} domain.EmojiRow "ok"
// @Router /analytics/emoji [post]
func (h *handlers) emoji(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.EmojiFrequency(r.Context(), in)
}

// swagger:route POST /analytics/timeline/monthly Analytics analyticsMonthly
// @Summary Message counts per (year, month)
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {array} domain.MonthBucketRow "ok"
// @Router /analytics/timeline/monthly [post]
func (h *handlers) monthly(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.MonthlyTimeline(r.Context(), in)
}

// swagger:route POST /analytics/timeline/daily Analytics analyticsDaily
// @Summary Message counts per calendar date
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {array} domain.DayBucketRow "ok"
// @Router /analytics/timeline/daily [post]
func (h *handlers) daily(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.DailyTimeline(r.Context(), in)
}

// swagger:route POST /analytics/activity/week Analytics analyticsWeek
// @Summary Message counts per weekday
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {array} domain.NameCountRow "ok"
// @Router /analytics/activity/week [post]
func (h *handlers) week(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.WeekActivity(r.Context(), in)
}

// swagger:route POST /analytics/activity/month Analytics analyticsMonth
// @Summary Message counts per month name
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {array} domain.NameCountRow "ok"
// @Router /analytics/activity/month [post]
func (h *handlers) month(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.MonthActivity(r.Context(), in)
}

// swagger:route POST /analytics/activity/heatmap Analytics analyticsHeatmap
// @Summary Weekday by period activity grid
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {object} domain.HeatmapResult "ok"
// @Router /analytics/activity/heatmap [post]
func (h *handlers) heatmap(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.Heatmap(r.Context(), in)
}

// swagger:route POST /analytics/report Analytics analyticsReport
// @Summary Every aggregation in one stamped bundle
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Transcript"
// @Success 200 {object} domain.Report "ok"
// @Router /analytics/report [post]
func (h *handlers) report(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.deps.Svc.Report(r.Context(), in)
}
