package dashboard

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/estetica-agenda/internal/domain/client"
	"github.com/BruksfildServices01/estetica-agenda/internal/dto"
	"github.com/BruksfildServices01/estetica-agenda/internal/timezone"
	apuc "github.com/BruksfildServices01/estetica-agenda/internal/usecase/appointment"
)

// GetDashboard summarizes the current day in the professional's timezone.
type GetDashboard struct {
	appointments domain.Repository
	clients      clientdomain.Repository
	tz           string
	now          func() time.Time
}

func NewGetDashboard(
	appointments domain.Repository,
	clients clientdomain.Repository,
	tz string,
) *GetDashboard {
	return &GetDashboard{
		appointments: appointments,
		clients:      clients,
		tz:           tz,
		now:          time.Now,
	}
}

func (uc *GetDashboard) Execute(ctx context.Context) dto.DashboardDTO {
	today := timezone.DateIn(uc.tz, uc.now())

	todays := uc.appointments.ListByDate(ctx, today)

	var pending float64
	for _, ap := range todays {
		pending += domain.OutstandingAmount(ap)
	}

	return dto.DashboardDTO{
		Date:         today,
		Today:        apuc.WithClientNames(todays, apuc.ClientIndex(uc.clients.List(ctx))),
		TodayCount:   len(todays),
		PendingValue: pending,
		TotalCount:   len(uc.appointments.List(ctx)),
	}
}
