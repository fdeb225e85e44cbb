package messaging

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/validators"
)

var ErrInvalidPhone = httperr.ErrBusinessMsg("invalid_phone", "Este cliente não possui um telefone válido cadastrado.")

type Kind string

const (
	KindReminder     Kind = "reminder"
	KindConfirmation Kind = "confirmation"
)

func (k Kind) Valid() bool {
	return k == KindReminder || k == KindConfirmation
}

var weekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// WhatsApp builds wa.me links with a pre-filled message.
type WhatsApp struct {
	CountryCode  string
	BusinessName string
}

func NewWhatsApp(countryCode, businessName string) *WhatsApp {
	return &WhatsApp{CountryCode: countryCode, BusinessName: businessName}
}

func (w *WhatsApp) Link(kind Kind, c models.Client, ap models.Appointment) (string, error) {
	digits := validators.PhoneDigits(c.Phone)
	if digits == "" {
		return "", ErrInvalidPhone
	}

	var msg string
	if kind == KindConfirmation {
		msg = w.Confirmation(c, ap)
	} else {
		msg = Reminder(c, ap)
	}

	return fmt.Sprintf("https://wa.me/%s%s?text=%s", w.CountryCode, digits, escape(msg)), nil
}

func Reminder(c models.Client, ap models.Appointment) string {
	return fmt.Sprintf(
		"Olá %s! ✨ Lembrando do seu horário hoje para *%s* às %s. Até já!",
		validators.FirstName(c.Name), ap.Service, ap.Time,
	)
}

func (w *WhatsApp) Confirmation(c models.Client, ap models.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá *%s*! ✨\n\n", validators.FirstName(c.Name))
	b.WriteString("Confirmando seu agendamento:\n\n")
	fmt.Fprintf(&b, "📅 *Data:* %s\n", displayDate(ap.Date))
	fmt.Fprintf(&b, "⏰ *Horário:* %s\n", ap.Time)
	fmt.Fprintf(&b, "💆‍♀️ *Procedimento:* %s\n\n", ap.Service)
	fmt.Fprintf(&b, "Local: %s\n", w.BusinessName)
	b.WriteString("_Aguardamos você!_")
	return b.String()
}

// displayDate renders "dd/MM (weekday)"; an unparseable date is returned as is.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s (%s)", t.Format("02/01"), weekdays[t.Weekday()])
}

// componentUnescape restores the marks encodeURIComponent leaves as is and
// url.QueryEscape encodes.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escape percent-encodes like encodeURIComponent: spaces become %20 and
// !'()* stay literal.
func escape(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
