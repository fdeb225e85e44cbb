package client

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// Repository is the CRUD surface over the client collection. Save replaces
// in place or appends; Delete of an unknown id is a no-op.
type Repository interface {
	List(ctx context.Context) []models.Client
	Get(ctx context.Context, id string) (models.Client, bool)
	Save(ctx context.Context, c Validated)
	Delete(ctx context.Context, id string)
}
