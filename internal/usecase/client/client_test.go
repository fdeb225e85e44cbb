package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	apdomain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/memory"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

type nopAlerter struct{}

func (nopAlerter) Alert(context.Context, string) {}

type fixture struct {
	clients      *repository.ClientSlotRepository
	appointments *repository.AppointmentSlotRepository
	auditLog     *audit.Logger
	dispatcher   *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.New(memory.New(0), zap.NewNop(), nopAlerter{}, nil)
	al := audit.New(store)
	d := audit.NewDispatcher(al, zap.NewNop())
	t.Cleanup(d.Close)
	return &fixture{
		clients:      repository.NewClientSlotRepository(store),
		appointments: repository.NewAppointmentSlotRepository(store),
		auditLog:     al,
		dispatcher:   d,
	}
}

func TestSaveClient_CreateThenUpdatePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewSaveClient(f.clients, f.dispatcher)
	uc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	created, err := uc.Execute(ctx, SaveClientInput{Name: " Ana Silva ", Phone: "11999990000"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Ana Silva", created.Name)
	require.Equal(t, int64(1700000000000), created.CreatedAt)

	uc.now = func() time.Time { return time.UnixMilli(1800000000000) }
	updated, err := uc.Execute(ctx, SaveClientInput{ID: created.ID, Name: "Ana S.", Phone: "11999990000"})
	require.NoError(t, err)
	require.Equal(t, int64(1700000000000), updated.CreatedAt)

	all := f.clients.List(ctx)
	require.Len(t, all, 1)
	require.Equal(t, "Ana S.", all[0].Name)

	f.dispatcher.Close()
	require.Len(t, f.auditLog.List(ctx, "client_saved", ""), 2)
}

func TestSaveClient_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewSaveClient(f.clients, f.dispatcher)

	_, err := uc.Execute(ctx, SaveClientInput{ID: "missing", Name: "Ana", Phone: "1"})
	require.True(t, httperr.IsBusiness(err, "client_not_found"))

	_, err = uc.Execute(ctx, SaveClientInput{Name: "  ", Phone: "1"})
	require.True(t, httperr.IsBusiness(err, "client_name_required"))

	require.Empty(t, f.clients.List(ctx))
}

func TestListClients_SortsAndFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	save := NewSaveClient(f.clients, f.dispatcher)

	for _, in := range []SaveClientInput{
		{Name: "carla", Phone: "21 5555"},
		{Name: "Ana", Phone: "11 4444"},
		{Name: "Bruna", Phone: "11 3333"},
	} {
		_, err := save.Execute(ctx, in)
		require.NoError(t, err)
	}

	list := NewListClients(f.clients)

	names := func(q string) []string {
		var out []string
		for _, c := range list.Execute(ctx, q) {
			out = append(out, c.Name)
		}
		return out
	}

	require.Equal(t, []string{"Ana", "Bruna", "carla"}, names(""))
	require.Equal(t, []string{"carla"}, names("CAR"))
	require.Equal(t, []string{"Ana", "Bruna"}, names("11 "))
}

func TestDeleteClient_KeepsHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, err := NewSaveClient(f.clients, f.dispatcher).Execute(ctx, SaveClientInput{Name: "Ana Silva", Phone: "1"})
	require.NoError(t, err)

	v, err := apdomain.Validate("a1", apdomain.Form{
		ClientID: c.ID, Service: "Limpeza", Date: "2024-03-15", Time: "14:00", Price: "150",
	})
	require.NoError(t, err)
	f.appointments.Save(ctx, v)

	del := NewDeleteClient(f.clients, f.dispatcher)
	require.True(t, del.Execute(ctx, c.ID))
	require.False(t, del.Execute(ctx, c.ID))

	history := NewClientHistory(f.appointments).Execute(ctx, c.ID)
	require.Len(t, history, 1)
	require.Equal(t, "a1", history[0].ID)
}
