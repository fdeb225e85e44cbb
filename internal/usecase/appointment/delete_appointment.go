package appointment

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(repo domain.Repository, audit *audit.Dispatcher) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

// Execute reports whether an appointment was removed.
func (uc *DeleteAppointment) Execute(ctx context.Context, id string) bool {
	if _, ok := uc.repo.Get(ctx, id); !ok {
		return false
	}

	uc.repo.Delete(ctx, id)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})
	return true
}
