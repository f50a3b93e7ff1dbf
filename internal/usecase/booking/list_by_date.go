package booking

import (
	"context"
	"time"

	domain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

// Execute lista os bookings do dia da station, na janela do timezone local.
func (uc *ListByDate) Execute(
	ctx context.Context,
	stationSlug string,
	date string,
) ([]models.Booking, error) {

	station, err := uc.repo.GetStationBySlug(ctx, stationSlug)
	if err != nil {
		return nil, httperr.ErrBusiness("station_not_found")
	}

	loc := timezone.Location(station.Timezone)
	start, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	end := start.Add(24 * time.Hour)

	return uc.repo.ListByStationAndDate(ctx, station.ID, start, end)
}
