package enrichment

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/metrics"
)

type GeminiOptions struct {
	BaseURL string
	Model   string
	APIKey  string
}

// ======================================================
// WIRE TYPES
// ======================================================

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// ======================================================
// CLIENT
// ======================================================

// Gemini calls the generateContent endpoint once per operation. There is no
// retry; the request context bounds the call.
type Gemini struct {
	http    *resty.Client
	model   string
	apiKey  string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

var _ Gateway = (*Gemini)(nil)

func NewGemini(opts GeminiOptions, logger *zap.Logger, m *metrics.Metrics) *Gemini {
	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Gemini{
		http:    client,
		model:   opts.Model,
		apiKey:  opts.APIKey,
		logger:  logger,
		metrics: m,
	}
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	var out generateResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetPathParam("model", g.model).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode(), msg)
	}

	return out.text(), nil
}

func (g *Gemini) DraftProcedureRecord(ctx context.Context, rawNotes, procedureType string) string {
	text, err := g.generate(ctx, draftPrompt(rawNotes, procedureType))
	if err != nil {
		g.logger.Error("erro ao gerar registro do procedimento",
			zap.String("procedure", procedureType),
			zap.Error(err),
		)
		count(g.metrics, opDraft, "error")
		return DraftFailed
	}

	text = strings.TrimSpace(text)
	if text == "" {
		count(g.metrics, opDraft, "empty")
		return DraftEmpty
	}

	count(g.metrics, opDraft, "ok")
	return text
}

func (g *Gemini) SuggestAftercare(ctx context.Context, procedureType string) string {
	text, err := g.generate(ctx, aftercarePrompt(procedureType))
	if err != nil {
		g.logger.Error("erro ao sugerir cuidados pós-procedimento",
			zap.String("procedure", procedureType),
			zap.Error(err),
		)
		count(g.metrics, opAftercare, "error")
		return ""
	}

	count(g.metrics, opAftercare, "ok")
	return strings.TrimSpace(text)
}
