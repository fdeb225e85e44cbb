package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/domain/theme"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/memory"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

type nopAlerter struct{ count int }

func (n *nopAlerter) Alert(context.Context, string) { n.count++ }

func newStore(t *testing.T) (*storage.Store, *memory.Store) {
	t.Helper()
	kv := memory.New(0)
	return storage.New(kv, zap.NewNop(), &nopAlerter{}, nil), kv
}

func mustClient(t *testing.T, c models.Client) client.Validated {
	t.Helper()
	v, err := client.Validate(c)
	require.NoError(t, err)
	return v
}

func mustAppointment(t *testing.T, id, clientID, date, tm string) appointment.Validated {
	t.Helper()
	v, err := appointment.Validate(id, appointment.Form{
		ClientID: clientID,
		Service:  "Limpeza de Pele",
		Date:     date,
		Time:     tm,
		Duration: "60",
		Price:    "150",
	})
	require.NoError(t, err)
	return v
}

func TestClientRepository_SaveReplaceDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewClientSlotRepository(store)

	ana := models.Client{ID: "a", Name: "Ana", Phone: "1", CreatedAt: 10}
	repo.Save(ctx, mustClient(t, ana))
	repo.Save(ctx, mustClient(t, models.Client{ID: "b", Name: "Bia", Phone: "2", CreatedAt: 20}))
	require.Len(t, repo.List(ctx), 2)

	ana.Name = "Ana Silva"
	repo.Save(ctx, mustClient(t, ana))

	list := repo.List(ctx)
	require.Len(t, list, 2)
	require.Equal(t, ana, list[0], "replace keeps position and every field")

	repo.Delete(ctx, "missing")
	require.Len(t, repo.List(ctx), 2)

	repo.Delete(ctx, "a")
	list = repo.List(ctx)
	require.Len(t, list, 1)
	require.Equal(t, "b", list[0].ID)

	_, ok := repo.Get(ctx, "a")
	require.False(t, ok)
}

func TestAppointmentRepository_ListByDateSortsByTime(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewAppointmentSlotRepository(store)

	repo.Save(ctx, mustAppointment(t, "1", "c", "2024-06-10", "14:00"))
	repo.Save(ctx, mustAppointment(t, "2", "c", "2024-06-11", "08:00"))
	repo.Save(ctx, mustAppointment(t, "3", "c", "2024-06-10", "09:30"))
	repo.Save(ctx, mustAppointment(t, "4", "c", "2024-06-10", "09:00"))

	got := repo.ListByDate(ctx, "2024-06-10")
	require.Len(t, got, 3)
	require.Equal(t, []string{"4", "3", "1"}, ids(got))

	require.NotNil(t, repo.ListByDate(ctx, "2030-01-01"))
	require.Empty(t, repo.ListByDate(ctx, "2030-01-01"))
}

func TestAppointmentRepository_ListByClientNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewAppointmentSlotRepository(store)

	repo.Save(ctx, mustAppointment(t, "1", "ana", "2024-06-10", "09:00"))
	repo.Save(ctx, mustAppointment(t, "2", "ana", "2024-07-01", "08:00"))
	repo.Save(ctx, mustAppointment(t, "3", "bia", "2024-08-01", "08:00"))
	repo.Save(ctx, mustAppointment(t, "4", "ana", "2024-06-10", "15:00"))

	got := repo.ListByClient(ctx, "ana")
	require.Equal(t, []string{"2", "4", "1"}, ids(got))
}

func TestAppointmentRepository_ReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewAppointmentSlotRepository(store)

	repo.Save(ctx, mustAppointment(t, "1", "ana", "2024-06-10", "09:00"))
	repo.Save(ctx, mustAppointment(t, "1", "ana", "2024-06-12", "10:00"))
	require.Len(t, repo.List(ctx), 1)

	got, ok := repo.Get(ctx, "1")
	require.True(t, ok)
	require.Equal(t, "2024-06-12", got.Date)

	repo.Delete(ctx, "nope")
	require.Len(t, repo.List(ctx), 1)
	repo.Delete(ctx, "1")
	require.Empty(t, repo.List(ctx))
}

// Ana's appointment outlives Ana.
func TestScenario_DeletingClientKeepsAppointments(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	clients := NewClientSlotRepository(store)
	appointments := NewAppointmentSlotRepository(store)

	ana := mustClient(t, models.Client{ID: "ana-id", Name: "Ana Silva", Phone: "11999990000", CreatedAt: 1})
	clients.Save(ctx, ana)
	require.Len(t, clients.List(ctx), 1)

	apt := mustAppointment(t, "apt-1", ana.ID(), "2024-06-10", "09:00")
	appointments.Save(ctx, apt)

	byDate := appointments.ListByDate(ctx, "2024-06-10")
	require.Equal(t, []models.Appointment{apt.Appointment()}, byDate)

	clients.Delete(ctx, ana.ID())

	require.Equal(t, []models.Appointment{apt.Appointment()}, appointments.ListByClient(ctx, ana.ID()))
	require.Empty(t, clients.List(ctx))
}

func TestRepositories_CorruptSlotReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	require.NoError(t, kv.Set(ctx, storage.SlotAppointments, "garbage"))

	repo := NewAppointmentSlotRepository(store)
	require.Empty(t, repo.List(ctx))

	repo.Save(ctx, mustAppointment(t, "1", "c", "2024-06-10", "09:00"))
	require.Len(t, repo.List(ctx), 1)
}

func TestClientRepository_DuplicateIDsSurviveSave(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)
	require.NoError(t, kv.Set(ctx, storage.SlotClients,
		`[{"id":"x","name":"Ana","phone":"1","createdAt":1},{"id":"x","name":"Bia","phone":"2","createdAt":2}]`))

	repo := NewClientSlotRepository(store)
	require.Len(t, repo.List(ctx), 2)

	repo.Save(ctx, mustClient(t, models.Client{ID: "y", Name: "Carla", Phone: "3"}))
	all := repo.List(ctx)
	require.Len(t, all, 3)
	require.Equal(t, []string{"Ana", "Bia", "Carla"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestThemeRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	repo := NewThemeSlotRepository(store)

	require.Equal(t, theme.Light, repo.Get(ctx))
	repo.Set(ctx, theme.Dark)
	require.Equal(t, theme.Dark, repo.Get(ctx))
}

func ids(list []models.Appointment) []string {
	out := make([]string, len(list))
	for i, ap := range list {
		out[i] = ap.ID
	}
	return out
}
