// Package http provides http transport for transcripts
package http

import (
	stdhttp "net/http"

	"chatlens/internal/modkit/httpkit"
	"chatlens/internal/platform/net/http/bind"
	"chatlens/internal/services/api/transcripts/domain"
	svc "chatlens/internal/services/api/transcripts/service"
)

// Deps are the handler dependencies
type Deps struct {
	Svc svc.Service
	// MaxBytes caps the request body; exports can be large
	MaxBytes int64
}

// Register mounts transcript endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	opts := bind.JSONOptions{MaxBytes: d.MaxBytes, DisallowUnknown: true}
	httpkit.PostJSON(r, "/parse", h.parse, opts)
}

type handlers struct{ deps Deps }

// swagger:route POST /transcripts/parse Transcripts transcriptsParse
// @Summary Parse a raw chat export into records
// @Tags Transcripts
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Raw export"
// @Success 200 {object} domain.ParseResult "ok"
// @Router /transcripts/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.deps.Svc.Parse(r.Context(), in)
}
