package availability

import (
	"context"
	"time"

	bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	holdDomain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

// Disponibilidade de um dia: um item por slot fixo
type SlotAvailability struct {
	SlotTime  string `json:"slot_time"`
	Mode      string `json:"mode"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

type GetAvailability struct {
	repo holdDomain.Repository
	vars *dynvars.Service
}

func NewGetAvailability(
	repo holdDomain.Repository,
	vars *dynvars.Service,
) *GetAvailability {
	return &GetAvailability{repo: repo, vars: vars}
}

// Execute calcula capacidade e restante por slot. Leitura informativa:
// não trava linhas, a verdade final é decidida na criação do hold.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	stationSlug string,
	date string,
) ([]SlotAvailability, error) {

	station, err := uc.repo.GetStationBySlug(ctx, stationSlug)
	if err != nil {
		return nil, httperr.ErrBusiness("station_not_found")
	}

	loc := timezone.Location(station.Timezone)
	eventDate, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	windowDays, err := uc.vars.ChefAvailabilityWindowDays(ctx)
	if err != nil {
		return nil, err
	}
	longAdvanceCap, err := uc.vars.LongAdvanceSlotCapacity(ctx)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(station.Timezone)
	daysUntil := bookingDomain.DaysUntil(eventDate, now)

	out := make([]SlotAvailability, 0, len(scheduling.SlotTimes))
	for _, slot := range scheduling.SlotTimes {

		holds, err := uc.repo.ListActiveHoldsForSlot(ctx, station.ID, eventDate, slot)
		if err != nil {
			return nil, err
		}
		bookings, err := uc.repo.ListActiveBookingsForSlot(ctx, station.ID, eventDate, slot)
		if err != nil {
			return nil, err
		}
		chefs, err := uc.repo.CountAvailableChefs(ctx, station.ID, int(eventDate.Weekday()), slot)
		if err != nil {
			return nil, err
		}

		result := scheduling.Evaluate(scheduling.CapacityInput{
			DaysUntilEvent: daysUntil,
			WindowDays:     windowDays,
			AvailableChefs: chefs,
			LongAdvanceCap: longAdvanceCap,
			ExistingCount:  len(holds) + len(bookings),
		})

		out = append(out, SlotAvailability{
			SlotTime:  slot,
			Mode:      result.Mode,
			Capacity:  result.Capacity,
			Remaining: result.Remaining,
			Available: result.Accepts(),
		})
	}

	return out, nil
}
