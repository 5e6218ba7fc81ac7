package module

import (
	"context"

	"chatlens/internal/services/api/transcripts/domain"
	transsvc "chatlens/internal/services/api/transcripts/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptTranscriptsPort struct{ svc transsvc.Service }

// Parse runs the parse pipeline for other modules
func (a adaptTranscriptsPort) Parse(ctx context.Context, in domain.ParseInput) (domain.ParseResult, error) {
	return a.svc.Parse(ctx, in)
}
