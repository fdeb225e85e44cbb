package client

import (
	"context"

	apdomain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// ClientHistory lists a client's appointments, newest first. It answers for
// deleted clients too.
type ClientHistory struct {
	appointments apdomain.Repository
}

func NewClientHistory(appointments apdomain.Repository) *ClientHistory {
	return &ClientHistory{appointments: appointments}
}

func (uc *ClientHistory) Execute(ctx context.Context, clientID string) []models.Appointment {
	return uc.appointments.ListByClient(ctx, clientID)
}
