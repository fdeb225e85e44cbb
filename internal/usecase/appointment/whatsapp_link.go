package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/messaging"
)

type WhatsAppLink struct {
	repo     domain.Repository
	clients  clientdomain.Repository
	whatsapp *messaging.WhatsApp
}

func NewWhatsAppLink(
	repo domain.Repository,
	clients clientdomain.Repository,
	whatsapp *messaging.WhatsApp,
) *WhatsAppLink {
	return &WhatsAppLink{
		repo:     repo,
		clients:  clients,
		whatsapp: whatsapp,
	}
}

func (uc *WhatsAppLink) Execute(ctx context.Context, appointmentID string, kind messaging.Kind) (string, error) {
	if kind == "" {
		kind = messaging.KindReminder
	}
	if !kind.Valid() {
		return "", httperr.ErrBusinessMsg("invalid_message_kind", "Tipo de mensagem inválido.")
	}

	ap, ok := uc.repo.Get(ctx, appointmentID)
	if !ok {
		return "", httperr.ErrBusinessMsg("appointment_not_found", "Agendamento não encontrado.")
	}

	c, ok := uc.clients.Get(ctx, ap.ClientID)
	if !ok {
		return "", httperr.ErrBusinessMsg("client_not_found", "Cliente não encontrado.")
	}

	return uc.whatsapp.Link(kind, c, ap)
}
