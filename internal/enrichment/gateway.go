// Package enrichment turns free-text procedure notes into a formal record and
// suggests aftercare tips through a remote text-generation model. Every
// operation degrades to a fixed string; none of them return an error.
package enrichment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	"github.com/BruksfildServices01/estetica-agenda/internal/metrics"
)

type Gateway interface {
	DraftProcedureRecord(ctx context.Context, rawNotes, procedureType string) string
	SuggestAftercare(ctx context.Context, procedureType string) string
}

const (
	DraftMissingKey     = "Chave de API não configurada. Adicione sua chave para usar a IA."
	DraftFailed         = "Erro ao conectar com a IA."
	DraftEmpty          = "Não foi possível gerar o resumo."
	AftercareMissingKey = "API Key missing."
)

const (
	opDraft     = "draft_procedure_record"
	opAftercare = "suggest_aftercare"
)

// New picks the Gemini gateway when a key is configured and the fallback
// otherwise. m may be nil.
func New(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) Gateway {
	if cfg.GeminiAPIKey == "" {
		logger.Info("GEMINI_API_KEY ausente, usando gateway de fallback")
		return NewFallback(m)
	}
	return NewGemini(GeminiOptions{
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		APIKey:  cfg.GeminiAPIKey,
	}, logger, m)
}

func count(m *metrics.Metrics, op, outcome string) {
	if m != nil {
		m.EnrichmentCalls.WithLabelValues(op, outcome).Inc()
	}
}
