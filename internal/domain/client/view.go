package client

import (
	"slices"
	"strings"

	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

// SortByName orders clients alphabetically, case-insensitive, in place.
func SortByName(clients []models.Client) {
	slices.SortStableFunc(clients, func(a, b models.Client) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

// Filter keeps clients whose name contains query (case-insensitive) or whose
// phone contains it verbatim. An empty query keeps everything.
func Filter(clients []models.Client, query string) []models.Client {
	if query == "" {
		return clients
	}
	q := strings.ToLower(query)
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}
