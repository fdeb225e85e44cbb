package client

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
)

// DeleteClient removes the client only. Their appointments stay and render
// with the unknown-client placeholder.
type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(repo domain.Repository, audit *audit.Dispatcher) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

// Execute reports whether a client was removed. Unknown ids are a no-op.
func (uc *DeleteClient) Execute(ctx context.Context, id string) bool {
	if _, ok := uc.repo.Get(ctx, id); !ok {
		return false
	}

	uc.repo.Delete(ctx, id)

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})
	return true
}
