package client

import (
	"context"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context, query string) []models.Client {
	clients := uc.repo.List(ctx)
	domain.SortByName(clients)
	return domain.Filter(clients, query)
}
