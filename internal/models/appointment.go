package models

// Appointment references its client by id only. A ClientID that no longer
// resolves is a valid, permanent state.
type Appointment struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`

	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`

	Price   float64 `json:"price"`
	Deposit float64 `json:"deposit"`
	Status  string  `json:"status"`

	ProcedureNotes string `json:"procedureNotes,omitempty"`
	AISummary      string `json:"aiSummary,omitempty"`
}
