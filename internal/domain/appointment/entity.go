package appointment

import (
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// UnknownClientLabel is rendered for an appointment whose client was deleted.
const UnknownClientLabel = "Cliente Desconhecido"

// ClientName resolves the client's display name, or the placeholder when the
// reference dangles.
func ClientName(clients map[string]models.Client, clientID string) string {
	if c, ok := clients[clientID]; ok {
		return c.Name
	}
	return UnknownClientLabel
}

// OutstandingAmount is what is still to be collected: price minus deposit,
// zero once the appointment is marked paid.
func OutstandingAmount(ap models.Appointment) float64 {
	if Status(ap.Status) == StatusPaid {
		return 0
	}
	return ap.Price - ap.Deposit
}

const aftercareSeparator = "\n\n---\n\n💡 Dicas Pós-Procedimento:\n"

// ComposeAISummary joins the drafted procedure record and the aftercare tips
// into the single stored aiSummary value.
func ComposeAISummary(record, aftercare string) string {
	return record + aftercareSeparator + aftercare
}
