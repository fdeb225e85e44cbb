package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

// AppointmentSlotRepository keeps the appointment collection in the
// APPOINTMENTS slot. Queries filter and sort the full collection after each
// read; there is no secondary index.
type AppointmentSlotRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewAppointmentSlotRepository(store *storage.Store) *AppointmentSlotRepository {
	return &AppointmentSlotRepository{store: store}
}

func appointmentID(ap models.Appointment) string { return ap.ID }

func (r *AppointmentSlotRepository) load(ctx context.Context) *storage.Ordered[models.Appointment] {
	return storage.NewOrdered(storage.ReadAll[models.Appointment](ctx, r.store, storage.SlotAppointments), appointmentID)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentSlotRepository) List(ctx context.Context) []models.Appointment {
	return r.load(ctx).Values()
}

func (r *AppointmentSlotRepository) Get(ctx context.Context, id string) (models.Appointment, bool) {
	return r.load(ctx).Get(id)
}

func (r *AppointmentSlotRepository) ListByDate(ctx context.Context, date string) []models.Appointment {
	out := []models.Appointment{}
	for _, ap := range r.List(ctx) {
		if ap.Date == date {
			out = append(out, ap)
		}
	}

	// HH:MM zero-padded: string order is time order
	slices.SortStableFunc(out, func(a, b models.Appointment) int {
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

func (r *AppointmentSlotRepository) ListByClient(ctx context.Context, clientID string) []models.Appointment {
	out := []models.Appointment{}
	for _, ap := range r.List(ctx) {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}

	slices.SortStableFunc(out, func(a, b models.Appointment) int {
		return strings.Compare(b.Date+b.Time, a.Date+a.Time)
	})
	return out
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *AppointmentSlotRepository) Save(ctx context.Context, ap domain.Validated) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load(ctx)
	list.Upsert(ap.Appointment())
	storage.WriteAll(ctx, r.store, storage.SlotAppointments, list.Values())
}

func (r *AppointmentSlotRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load(ctx)
	if !list.Delete(id) {
		return
	}
	storage.WriteAll(ctx, r.store, storage.SlotAppointments, list.Values())
}

// Compile-time check
var _ domain.Repository = (*AppointmentSlotRepository)(nil)
