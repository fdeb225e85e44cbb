package dto

type EnrichRequest struct {
	Service string `json:"service"`
	Notes   string `json:"notes"`
}

type EnrichResponse struct {
	Summary   string `json:"summary"`
	Aftercare string `json:"aftercare"`
	AISummary string `json:"aiSummary"`
}
