package repository

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/domain/theme"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

// ThemeSlotRepository keeps the theme preference as a bare string in the
// THEME slot.
type ThemeSlotRepository struct {
	store *storage.Store
}

func NewThemeSlotRepository(store *storage.Store) *ThemeSlotRepository {
	return &ThemeSlotRepository{store: store}
}

func (r *ThemeSlotRepository) Get(ctx context.Context) theme.Mode {
	v, _ := r.store.ReadString(ctx, storage.SlotTheme)
	return theme.Parse(v)
}

func (r *ThemeSlotRepository) Set(ctx context.Context, mode theme.Mode) {
	r.store.WriteString(ctx, storage.SlotTheme, string(mode))
}
