package appointment

import (
	"context"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/idgen"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type SaveAppointment struct {
	repo    domain.Repository
	clients clientdomain.Repository
	audit   *audit.Dispatcher
}

func NewSaveAppointment(
	repo domain.Repository,
	clients clientdomain.Repository,
	audit *audit.Dispatcher,
) *SaveAppointment {
	return &SaveAppointment{
		repo:    repo,
		clients: clients,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute creates the appointment when id is empty and replaces it otherwise.
func (uc *SaveAppointment) Execute(
	ctx context.Context,
	id string,
	form domain.Form,
) (models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Novo ou existente
	// --------------------------------------------------
	var previousClient string
	if id == "" {
		id = idgen.New()
	} else {
		existing, ok := uc.repo.Get(ctx, id)
		if !ok {
			return models.Appointment{}, httperr.ErrBusinessMsg("appointment_not_found", "Agendamento não encontrado.")
		}
		previousClient = existing.ClientID
	}

	// --------------------------------------------------
	// 2️⃣ Validação
	// --------------------------------------------------
	v, err := domain.Validate(id, form)
	if err != nil {
		return models.Appointment{}, err
	}

	// --------------------------------------------------
	// 3️⃣ Cliente (um agendamento órfão pode manter o id antigo)
	// --------------------------------------------------
	ap := v.Appointment()
	if ap.ClientID != previousClient {
		if _, ok := uc.clients.Get(ctx, ap.ClientID); !ok {
			return models.Appointment{}, httperr.ErrBusinessMsg("client_not_found", "Cliente não encontrado.")
		}
	}

	// --------------------------------------------------
	// 4️⃣ Persistência + auditoria
	// --------------------------------------------------
	uc.repo.Save(ctx, v)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_saved",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"client_id": ap.ClientID,
			"date":      ap.Date,
			"time":      ap.Time,
			"status":    ap.Status,
		},
	})

	return ap, nil
}
