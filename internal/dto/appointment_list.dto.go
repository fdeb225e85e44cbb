package dto

import "github.com/BruksfildServices01/estetica-agenda/internal/models"

// AppointmentListDTO is an appointment with its client's display name
// resolved. ClientName is the placeholder when the client no longer exists.
type AppointmentListDTO struct {
	models.Appointment
	ClientName string `json:"clientName"`
}
