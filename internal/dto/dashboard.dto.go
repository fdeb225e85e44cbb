package dto

type DashboardDTO struct {
	Date         string               `json:"date"`
	Today        []AppointmentListDTO `json:"today"`
	TodayCount   int                  `json:"todayCount"`
	PendingValue float64              `json:"pendingValue"`
	TotalCount   int                  `json:"totalCount"`
}
