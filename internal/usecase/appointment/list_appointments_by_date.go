package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/dto"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

type ListAppointmentsByDate struct {
	repo    domain.Repository
	clients clientdomain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	clients clientdomain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:    repo,
		clients: clients,
	}
}

// Execute lists the day's appointments by time, or the whole collection in
// stored order when date is empty.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) []dto.AppointmentListDTO {

	var appointments []models.Appointment
	if date == "" {
		appointments = uc.repo.List(ctx)
	} else {
		appointments = uc.repo.ListByDate(ctx, date)
	}

	return WithClientNames(appointments, ClientIndex(uc.clients.List(ctx)))
}

func ClientIndex(clients []models.Client) map[string]models.Client {
	idx := make(map[string]models.Client, len(clients))
	for _, c := range clients {
		idx[c.ID] = c
	}
	return idx
}

func WithClientNames(appointments []models.Appointment, clients map[string]models.Client) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			Appointment: ap,
			ClientName:  domain.ClientName(clients, ap.ClientID),
		})
	}
	return out
}
