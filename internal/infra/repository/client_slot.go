package repository

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

// ClientSlotRepository keeps the client collection in the CLIENTS slot.
// Mutations are serialized so each read-modify-write runs alone, as it did
// on a single-threaded client.
type ClientSlotRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewClientSlotRepository(store *storage.Store) *ClientSlotRepository {
	return &ClientSlotRepository{store: store}
}

func clientID(c models.Client) string { return c.ID }

func (r *ClientSlotRepository) load(ctx context.Context) *storage.Ordered[models.Client] {
	return storage.NewOrdered(storage.ReadAll[models.Client](ctx, r.store, storage.SlotClients), clientID)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ClientSlotRepository) List(ctx context.Context) []models.Client {
	return r.load(ctx).Values()
}

func (r *ClientSlotRepository) Get(ctx context.Context, id string) (models.Client, bool) {
	return r.load(ctx).Get(id)
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *ClientSlotRepository) Save(ctx context.Context, c domain.Validated) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients := r.load(ctx)
	clients.Upsert(c.Client())
	storage.WriteAll(ctx, r.store, storage.SlotClients, clients.Values())
}

func (r *ClientSlotRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients := r.load(ctx)
	if !clients.Delete(id) {
		return
	}
	storage.WriteAll(ctx, r.store, storage.SlotClients, clients.Values())
}

// Compile-time check
var _ domain.Repository = (*ClientSlotRepository)(nil)
