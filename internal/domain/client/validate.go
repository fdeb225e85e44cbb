package client

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/validators"
)

// Validated is a client record that passed Validate. Repositories only
// accept this type.
type Validated struct {
	c models.Client
}

func (v Validated) Client() models.Client { return v.c }

func (v Validated) ID() string { return v.c.ID }

type rules struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Phone string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

// Validate trims the text fields and checks that name and phone are present.
func Validate(c models.Client) (Validated, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Notes = strings.TrimSpace(c.Notes)

	err := validators.Get().Struct(rules{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email})
	if err == nil {
		return Validated{c: c}, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Validated{}, err
	}

	switch verrs[0].Field() {
	case "Name":
		return Validated{}, httperr.ErrBusinessMsg("client_name_required", "Por favor, preencha o nome do cliente.")
	case "Phone":
		return Validated{}, httperr.ErrBusinessMsg("client_phone_required", "Por favor, preencha o telefone do cliente.")
	case "Email":
		return Validated{}, httperr.ErrBusinessMsg("invalid_email", "E-mail inválido.")
	default:
		return Validated{}, httperr.ErrBusinessMsg("invalid_client", "Cliente inválido.")
	}
}
