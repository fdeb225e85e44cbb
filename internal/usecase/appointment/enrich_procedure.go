package appointment

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/dto"
	"github.com/BruksfildServices01/estetica-agenda/internal/enrichment"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
)

// EnrichProcedure drafts the procedure record and the aftercare tips in
// parallel and composes the aiSummary value. Nothing is stored; the caller
// saves the appointment with the returned summary.
type EnrichProcedure struct {
	gateway enrichment.Gateway
}

func NewEnrichProcedure(gateway enrichment.Gateway) *EnrichProcedure {
	return &EnrichProcedure{gateway: gateway}
}

func (uc *EnrichProcedure) Execute(ctx context.Context, in dto.EnrichRequest) (dto.EnrichResponse, error) {
	service := strings.TrimSpace(in.Service)
	notes := strings.TrimSpace(in.Notes)
	if service == "" || notes == "" {
		return dto.EnrichResponse{}, httperr.ErrBusinessMsg(
			"enrich_fields_required",
			"Preencha o procedimento e as observações antes de gerar o resumo.",
		)
	}

	var summary, aftercare string

	// The gateway never returns errors; the group only joins the two calls.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary = uc.gateway.DraftProcedureRecord(gctx, notes, service)
		return nil
	})
	g.Go(func() error {
		aftercare = uc.gateway.SuggestAftercare(gctx, service)
		return nil
	})
	_ = g.Wait()

	return dto.EnrichResponse{
		Summary:   summary,
		Aftercare: aftercare,
		AISummary: domain.ComposeAISummary(summary, aftercare),
	}, nil
}
