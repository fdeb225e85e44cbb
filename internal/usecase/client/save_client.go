package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/idgen"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaveClientInput struct {
	// ID vazio cria um novo cliente.
	ID string

	Name  string
	Phone string
	Email string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type SaveClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewSaveClient(repo domain.Repository, audit *audit.Dispatcher) *SaveClient {
	return &SaveClient{repo: repo, audit: audit, now: time.Now}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveClient) Execute(ctx context.Context, in SaveClientInput) (models.Client, error) {
	c := models.Client{
		ID:    in.ID,
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
		Notes: in.Notes,
	}

	// --------------------------------------------------
	// 1️⃣ Novo ou existente (createdAt é preservado)
	// --------------------------------------------------
	if c.ID == "" {
		c.ID = idgen.New()
		c.CreatedAt = uc.now().UnixMilli()
	} else {
		existing, ok := uc.repo.Get(ctx, c.ID)
		if !ok {
			return models.Client{}, httperr.ErrBusinessMsg("client_not_found", "Cliente não encontrado.")
		}
		c.CreatedAt = existing.CreatedAt
	}

	// --------------------------------------------------
	// 2️⃣ Validação
	// --------------------------------------------------
	v, err := domain.Validate(c)
	if err != nil {
		return models.Client{}, err
	}

	// --------------------------------------------------
	// 3️⃣ Persistência + auditoria
	// --------------------------------------------------
	uc.repo.Save(ctx, v)

	uc.audit.Dispatch(audit.Event{
		Action:   "client_saved",
		Entity:   "client",
		EntityID: v.ID(),
		Metadata: map[string]any{"name": v.Client().Name},
	})

	return v.Client(), nil
}
