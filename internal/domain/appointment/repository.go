package appointment

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

type Repository interface {
	// -------- Collection --------
	List(ctx context.Context) []models.Appointment
	Get(ctx context.Context, id string) (models.Appointment, bool)

	// -------- Queries --------

	// ListByDate keeps exact date matches, ascending by time.
	ListByDate(ctx context.Context, date string) []models.Appointment

	// ListByClient keeps the client's appointments, newest first by date+time.
	ListByClient(ctx context.Context, clientID string) []models.Appointment

	// -------- Mutations --------
	Save(ctx context.Context, ap Validated)
	Delete(ctx context.Context, id string)
}
