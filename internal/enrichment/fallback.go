package enrichment

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/metrics"
)

// Fallback answers without any network access.
type Fallback struct {
	metrics *metrics.Metrics
}

var _ Gateway = (*Fallback)(nil)

func NewFallback(m *metrics.Metrics) *Fallback {
	return &Fallback{metrics: m}
}

func (f *Fallback) DraftProcedureRecord(_ context.Context, _, _ string) string {
	count(f.metrics, opDraft, "fallback")
	return DraftMissingKey
}

func (f *Fallback) SuggestAftercare(_ context.Context, _ string) string {
	count(f.metrics, opAftercare, "fallback")
	return AftercareMissingKey
}
