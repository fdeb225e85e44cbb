package appointment

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/validators"
)

const DefaultDuration = 60

// Validated is an appointment record that passed Validate.
type Validated struct {
	ap models.Appointment
}

func (v Validated) Appointment() models.Appointment { return v.ap }

func (v Validated) ID() string { return v.ap.ID }

type rules struct {
	ID       string  `validate:"required"`
	ClientID string  `validate:"required"`
	Service  string  `validate:"required"`
	Date     string  `validate:"required,datetime=2006-01-02"`
	Time     string  `validate:"required,datetime=15:04"`
	Duration int     `validate:"gt=0"`
	Price    float64 `validate:"gte=0"`
	Deposit  float64 `validate:"gte=0"`
	Status   string  `validate:"required"`
}

var errMissingFields = httperr.ErrBusinessMsg("missing_required_fields", "Preencha todos os campos obrigatórios.")

// Validate turns a form into a record with the given id. Duration falls back
// to 60 minutes and deposit to zero when they cannot be read; a blank status
// becomes Pendente.
func Validate(id string, f Form) (Validated, error) {
	if f.Price.blank() {
		return Validated{}, errMissingFields
	}
	price, ok := f.Price.float()
	if !ok {
		return Validated{}, httperr.ErrBusinessMsg("invalid_price", "Valor inválido.")
	}

	duration, ok := f.Duration.minutes()
	if !ok || duration <= 0 {
		duration = DefaultDuration
	}

	deposit, ok := f.Deposit.float()
	if !ok {
		deposit = 0
	}

	status := Status(strings.TrimSpace(f.Status))
	if status == "" {
		status = InitialStatus()
	}
	if !status.Valid() {
		return Validated{}, httperr.ErrBusinessMsg("invalid_status", "Status de pagamento inválido.")
	}

	ap := models.Appointment{
		ID:             id,
		ClientID:       strings.TrimSpace(f.ClientID),
		Service:        strings.TrimSpace(f.Service),
		Date:           strings.TrimSpace(f.Date),
		Time:           strings.TrimSpace(f.Time),
		Duration:       duration,
		Price:          price,
		Deposit:        deposit,
		Status:         string(status),
		ProcedureNotes: f.ProcedureNotes,
		AISummary:      f.AISummary,
	}

	err := validators.Get().Struct(rules{
		ID:       ap.ID,
		ClientID: ap.ClientID,
		Service:  ap.Service,
		Date:     ap.Date,
		Time:     ap.Time,
		Duration: ap.Duration,
		Price:    ap.Price,
		Deposit:  ap.Deposit,
		Status:   ap.Status,
	})
	if err == nil {
		return Validated{ap: ap}, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Validated{}, err
	}

	fe := verrs[0]
	switch {
	case fe.Tag() == "required":
		return Validated{}, errMissingFields
	case fe.Field() == "Date":
		return Validated{}, httperr.ErrBusinessMsg("invalid_date", "Data inválida.")
	case fe.Field() == "Time":
		return Validated{}, httperr.ErrBusinessMsg("invalid_time", "Horário inválido.")
	case fe.Field() == "Price":
		return Validated{}, httperr.ErrBusinessMsg("invalid_price", "Valor inválido.")
	case fe.Field() == "Deposit":
		return Validated{}, httperr.ErrBusinessMsg("invalid_deposit", "Sinal inválido.")
	default:
		return Validated{}, httperr.ErrBusinessMsg("invalid_appointment", "Agendamento inválido.")
	}
}
